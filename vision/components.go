package vision

import (
	"image"

	"github.com/inkfold/panelist/model"
)

// ExtractBoundaries returns the bounding box of every 8-connected foreground
// component in mask. It is the contour-extraction primitive of the border
// pipeline: each component boundary collapses to its axis-aligned box.
func ExtractBoundaries(mask *image.Gray) []model.Region {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	visited := make([]bool, w*h)

	var regions []model.Region
	var queue []image.Point

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] || mask.GrayAt(b.Min.X+x, b.Min.Y+y).Y == 0 {
				continue
			}

			// Flood the component, tracking its extent.
			minX, minY, maxX, maxY := x, y, x, y
			visited[y*w+x] = true
			queue = append(queue[:0], image.Pt(x, y))
			for len(queue) > 0 {
				p := queue[len(queue)-1]
				queue = queue[:len(queue)-1]

				if p.X < minX {
					minX = p.X
				}
				if p.X > maxX {
					maxX = p.X
				}
				if p.Y < minY {
					minY = p.Y
				}
				if p.Y > maxY {
					maxY = p.Y
				}

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := p.X+dx, p.Y+dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						if visited[ny*w+nx] || mask.GrayAt(b.Min.X+nx, b.Min.Y+ny).Y == 0 {
							continue
						}
						visited[ny*w+nx] = true
						queue = append(queue, image.Pt(nx, ny))
					}
				}
			}

			regions = append(regions, model.NewRegion(
				b.Min.X+minX, b.Min.Y+minY, maxX-minX+1, maxY-minY+1))
		}
	}

	return regions
}
