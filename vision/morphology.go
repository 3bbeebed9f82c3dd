package vision

import (
	"image"
	"image/color"
)

// Erode shrinks the foreground of mask by applying a 3x3 erosion the given
// number of times. A pixel survives only if it and all eight neighbours are
// foreground; pixels outside the mask count as background.
func Erode(mask *image.Gray, iterations int) *image.Gray {
	b := mask.Bounds()
	src := mask
	for it := 0; it < iterations; it++ {
		dst := image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if allNeighboursSet(src, x, y) {
					dst.SetGray(x, y, color.Gray{Y: 255})
				}
			}
		}
		src = dst
	}
	if src == mask {
		// Zero iterations: still return a copy so the input stays untouched.
		dst := image.NewGray(b)
		copy(dst.Pix, mask.Pix)
		return dst
	}
	return src
}

func allNeighboursSet(mask *image.Gray, x, y int) bool {
	b := mask.Bounds()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < b.Min.X || ny < b.Min.Y || nx >= b.Max.X || ny >= b.Max.Y {
				return false
			}
			if mask.GrayAt(nx, ny).Y == 0 {
				return false
			}
		}
	}
	return true
}

// Subtract returns a minus b per pixel, clamped at zero. Both masks must
// share the same bounds.
func Subtract(a, b *image.Gray) *image.Gray {
	bounds := a.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			av := a.GrayAt(x, y).Y
			bv := b.GrayAt(x, y).Y
			if av > bv {
				out.SetGray(x, y, color.Gray{Y: av - bv})
			}
		}
	}
	return out
}

// FillHoles fills the interior of closed foreground shapes: background
// pixels not reachable from the mask edge become foreground. The result is
// the filled silhouette of the outermost contour, which the border cleaner
// erodes back down to a hollow ring.
func FillHoles(mask *image.Gray) *image.Gray {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	outside := make([]bool, w*h)

	var queue []image.Point
	seed := func(x, y int) {
		if outside[y*w+x] || mask.GrayAt(b.Min.X+x, b.Min.Y+y).Y != 0 {
			return
		}
		outside[y*w+x] = true
		queue = append(queue, image.Pt(x, y))
	}

	// Flood the background starting from every edge pixel.
	for x := 0; x < w; x++ {
		seed(x, 0)
		seed(x, h-1)
	}
	for y := 0; y < h; y++ {
		seed(0, y)
		seed(w-1, y)
	}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, d := range [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			seed(nx, ny)
		}
	}

	out := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !outside[y*w+x] {
				out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: 255})
			}
		}
	}
	return out
}
