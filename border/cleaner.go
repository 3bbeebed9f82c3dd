package border

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/inkfold/panelist/model"
	"github.com/inkfold/panelist/vision"
)

// BoundaryExtractor locates candidate region boundaries in a binary mask.
// It is the contour-extraction black box of the cleaning pipeline.
type BoundaryExtractor interface {
	ExtractBoundaries(mask *image.Gray) []model.Region
}

// Skeletonizer reduces a binary mask to a one-pixel-wide topological
// skeleton.
type Skeletonizer interface {
	Skeletonize(mask *image.Gray) *image.Gray
}

// CleanerConfig holds configuration for border removal.
type CleanerConfig struct {
	// SearchZoneRatio is how far inward from each edge the border search
	// extends, as a fraction of the panel dimension.
	// Default: 0.25
	SearchZoneRatio float64

	// InternalPadding is the number of extra pixels cleared inside the
	// detected border, removing broken fragments of a hand-drawn line.
	// Default: 5
	InternalPadding int

	// PadMargin is the white margin added around the panel before analysis,
	// separating the drawn border from the image edge.
	// Default: 15
	PadMargin int

	// Threshold is the grayscale cutoff for isolating ink from paper.
	// Default: 240
	Threshold uint8

	// RingThickness is the number of erosion steps used to hollow the
	// filled panel silhouette into the ring handed to skeletonization.
	// Default: 5
	RingThickness int

	// MinPanelSize is the smallest panel dimension worth processing;
	// smaller inputs are returned unchanged.
	// Default: 30
	MinPanelSize int

	// MinResultSize is the smallest acceptable crop dimension; a smaller
	// result means detection collapsed and the input is returned unchanged.
	// Default: 10
	MinResultSize int
}

// DefaultCleanerConfig returns sensible default configuration.
func DefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{
		SearchZoneRatio: 0.25,
		InternalPadding: 5,
		PadMargin:       15,
		Threshold:       240,
		RingThickness:   5,
		MinPanelSize:    30,
		MinResultSize:   10,
	}
}

// Cleaner removes the outer border line from panel images.
//
// A Cleaner holds no per-call state and is safe to share across goroutines.
type Cleaner struct {
	config    CleanerConfig
	extractor BoundaryExtractor
	thinner   Skeletonizer
}

// NewCleaner creates a cleaner with default configuration and the vision
// package primitives.
func NewCleaner() *Cleaner {
	return NewCleanerWithConfig(DefaultCleanerConfig())
}

// NewCleanerWithConfig creates a cleaner with custom configuration.
func NewCleanerWithConfig(config CleanerConfig) *Cleaner {
	return &Cleaner{
		config:    config,
		extractor: visionExtractor{},
		thinner:   visionThinner{},
	}
}

// UseBoundaryExtractor replaces the contour-extraction backend.
func (c *Cleaner) UseBoundaryExtractor(e BoundaryExtractor) {
	c.extractor = e
}

// UseSkeletonizer replaces the skeletonization backend.
func (c *Cleaner) UseSkeletonizer(s Skeletonizer) {
	c.thinner = s
}

// Clean returns img with its outer border line removed. If the panel is too
// small, no closed border is found within the search zone, or the detected
// crop collapses, the input image is returned unchanged. The input is never
// modified.
func (c *Cleaner) Clean(img image.Image) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() < c.config.MinPanelSize || b.Dy() < c.config.MinPanelSize {
		return img
	}

	// A white margin separates the drawn border from the image edge so the
	// outermost contour is the panel itself.
	margin := c.config.PadMargin
	canvas := imaging.New(b.Dx()+2*margin, b.Dy()+2*margin, color.White)
	padded := imaging.Paste(canvas, img, image.Pt(margin, margin))

	gray := toGray(imaging.Grayscale(padded))
	mask := vision.Binarize(gray, c.config.Threshold)

	boundaries := c.extractor.ExtractBoundaries(mask)
	if len(boundaries) == 0 {
		return img
	}
	panel := largestRegion(boundaries)

	// Hollow the filled silhouette into a thin ring so skeletonization sees
	// only the frame, not interior art near the edges.
	roi := cropGray(mask, panel.Bounds())
	filled := vision.FillHoles(roi)
	ring := vision.Subtract(filled, vision.Erode(filled, c.config.RingThickness))
	skeleton := c.thinner.Skeletonize(ring)

	w, h := panel.Width, panel.Height
	zoneW := clampZone(int(float64(w)*c.config.SearchZoneRatio), w)
	zoneH := clampZone(int(float64(h)*c.config.SearchZoneRatio), h)

	// Each side is scanned inside-out; the weighting prefers long continuous
	// lines close to the physical edge of the panel.
	top := bestBorderLine(skeleton, scanRows, zoneH, 0)
	bottom := bestBorderLine(skeleton, scanRows, h-1-zoneH, h-1)
	left := bestBorderLine(skeleton, scanCols, zoneW, 0)
	right := bestBorderLine(skeleton, scanCols, w-1-zoneW, w-1)

	pad := c.config.InternalPadding
	x1 := panel.X + left + pad
	y1 := panel.Y + top + pad
	x2 := panel.X + right - pad
	y2 := panel.Y + bottom - pad
	if x2-x1 < c.config.MinResultSize || y2-y1 < c.config.MinResultSize {
		return img
	}

	return imaging.Crop(padded, image.Rect(x1, y1, x2, y2))
}

// Clean removes the border from img using the default configuration.
func Clean(img image.Image) image.Image {
	return NewCleaner().Clean(img)
}

type scanAxis int

const (
	scanRows scanAxis = iota // horizontal lines, for top/bottom borders
	scanCols                 // vertical lines, for left/right borders
)

// bestBorderLine sweeps skeleton rows or columns from start to stop
// (inclusive) and returns the index with the highest score. The score is the
// line's pixel continuity weighted by how far the sweep has progressed, so
// among comparable candidates the one nearest the panel edge wins; ties also
// keep the outermost line.
func bestBorderLine(skeleton *image.Gray, axis scanAxis, start, stop int) int {
	span := abs(stop - start)
	if span == 0 {
		return start
	}

	step := 1
	if stop < start {
		step = -1
	}

	best, bestScore := start, -1.0
	for i := start; ; i += step {
		continuity := countLine(skeleton, axis, i)
		progress := float64(abs(i-start)) / float64(span)
		score := float64(continuity) * (1 + progress)
		if score >= bestScore {
			best, bestScore = i, score
		}
		if i == stop {
			break
		}
	}
	return best
}

// countLine counts the foreground pixels in one skeleton row or column.
func countLine(skeleton *image.Gray, axis scanAxis, index int) int {
	b := skeleton.Bounds()
	n := 0
	if axis == scanRows {
		y := b.Min.Y + index
		for x := b.Min.X; x < b.Max.X; x++ {
			if skeleton.GrayAt(x, y).Y != 0 {
				n++
			}
		}
	} else {
		x := b.Min.X + index
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if skeleton.GrayAt(x, y).Y != 0 {
				n++
			}
		}
	}
	return n
}

// largestRegion returns the region with the greatest area; the panel frame
// is almost always the largest boundary in the mask.
func largestRegion(regions []model.Region) model.Region {
	largest := regions[0]
	for _, r := range regions[1:] {
		if r.Area() > largest.Area() {
			largest = r
		}
	}
	return largest
}

// clampZone keeps a search zone inside the panel.
func clampZone(zone, dim int) int {
	if zone >= dim {
		zone = dim - 1
	}
	if zone < 0 {
		zone = 0
	}
	return zone
}

// toGray converts any image to *image.Gray.
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(b)
	draw.Draw(gray, b, img, b.Min, draw.Src)
	return gray
}

// cropGray copies a sub-rectangle of m into a zero-origin mask.
func cropGray(m *image.Gray, r image.Rectangle) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), m, r.Min, draw.Src)
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// visionExtractor and visionThinner adapt the vision package primitives to
// the cleaner's backend interfaces.
type visionExtractor struct{}

func (visionExtractor) ExtractBoundaries(mask *image.Gray) []model.Region {
	return vision.ExtractBoundaries(mask)
}

type visionThinner struct{}

func (visionThinner) Skeletonize(mask *image.Gray) *image.Gray {
	return vision.Thin(mask)
}
