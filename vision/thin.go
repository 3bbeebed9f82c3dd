package vision

import (
	"image"
	"image/color"
)

// Thin reduces the foreground of mask to a one-pixel-wide skeleton using the
// Zhang-Suen thinning algorithm ("A fast parallel algorithm for thinning
// digital patterns", 1984). The skeleton preserves the topology of the
// shape, so a drawn border line collapses to its centerline regardless of
// how thick or uneven the stroke is.
func Thin(mask *image.Gray) *image.Gray {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	grid := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			grid[y*w+x] = mask.GrayAt(b.Min.X+x, b.Min.Y+y).Y != 0
		}
	}

	at := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return grid[y*w+x]
	}

	var deletions []int
	for {
		changed := false

		for pass := 0; pass < 2; pass++ {
			deletions = deletions[:0]
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if !grid[y*w+x] {
						continue
					}

					// Neighbours P2..P9, clockwise from the pixel above.
					p2 := at(x, y-1)
					p3 := at(x+1, y-1)
					p4 := at(x+1, y)
					p5 := at(x+1, y+1)
					p6 := at(x, y+1)
					p7 := at(x-1, y+1)
					p8 := at(x-1, y)
					p9 := at(x-1, y-1)

					neighbours := count(p2) + count(p3) + count(p4) + count(p5) +
						count(p6) + count(p7) + count(p8) + count(p9)
					if neighbours < 2 || neighbours > 6 {
						continue
					}

					transitions := 0
					seq := [9]bool{p2, p3, p4, p5, p6, p7, p8, p9, p2}
					for i := 0; i < 8; i++ {
						if !seq[i] && seq[i+1] {
							transitions++
						}
					}
					if transitions != 1 {
						continue
					}

					if pass == 0 {
						if (p2 && p4 && p6) || (p4 && p6 && p8) {
							continue
						}
					} else {
						if (p2 && p4 && p8) || (p2 && p6 && p8) {
							continue
						}
					}

					deletions = append(deletions, y*w+x)
				}
			}

			for _, idx := range deletions {
				grid[idx] = false
			}
			if len(deletions) > 0 {
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	out := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid[y*w+x] {
				out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

func count(b bool) int {
	if b {
		return 1
	}
	return 0
}
