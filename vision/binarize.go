package vision

import (
	"image"
	"image/color"
)

// Binarize thresholds a grayscale image into an inverted binary mask: pixels
// darker than threshold become foreground (255), everything else background
// (0). Drawn lines are dark on a light page, so the mask isolates ink.
func Binarize(img *image.Gray, threshold uint8) *image.Gray {
	b := img.Bounds()
	mask := image.NewGray(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y < threshold {
				mask.SetGray(x, y, color.Gray{Y: 255})
			} else {
				mask.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}

	return mask
}
