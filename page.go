package panelist

import (
	"github.com/inkfold/panelist/layout"
	"github.com/inkfold/panelist/model"
)

// Page begins a fluent reading-order computation over a set of panel
// regions. The regions slice is not modified.
//
// Example:
//
//	ordered, err := panelist.Page(regions).RightToLeft().Order()
func Page(regions []model.Region) *PageSort {
	return &PageSort{
		regions: regions,
		config:  layout.DefaultSortConfig(),
	}
}

// PageSort configures and runs reading-order sorting. Each configuration
// method returns a new PageSort instance, so a partially configured chain
// can be stored and reused safely.
type PageSort struct {
	regions []model.Region
	config  layout.SortConfig
}

// clone creates a copy so that chain methods never mutate their receiver.
func (p *PageSort) clone() *PageSort {
	return &PageSort{
		regions: p.regions,
		config:  p.config,
	}
}

// LeftToRight selects Western left-to-right column order (the default).
func (p *PageSort) LeftToRight() *PageSort {
	out := p.clone()
	out.config.Direction = layout.LeftToRight
	return out
}

// RightToLeft selects manga right-to-left column order.
func (p *PageSort) RightToLeft() *PageSort {
	out := p.clone()
	out.config.Direction = layout.RightToLeft
	return out
}

// SpanningRatio sets the minimum fraction of the page span a panel must
// cover to be treated as spanning.
func (p *PageSort) SpanningRatio(ratio float64) *PageSort {
	out := p.clone()
	out.config.Columns.SpanningWidthRatio = ratio
	return out
}

// GapFactor sets the factor applied to the median panel width when deriving
// the column gap tolerance.
func (p *PageSort) GapFactor(factor float64) *PageSort {
	out := p.clone()
	out.config.Columns.GapToleranceFactor = factor
	return out
}

// RowOverlap sets the minimum vertical overlap fraction for two panels to be
// read as part of the same row band.
func (p *PageSort) RowOverlap(ratio float64) *PageSort {
	out := p.clone()
	out.config.RowOverlapRatio = ratio
	return out
}

// Order returns the regions in reading order. The result is always a
// permutation of the input; the only failure mode is a region with
// non-positive width or height, reported as a *model.InvalidRegionError.
func (p *PageSort) Order() ([]model.Region, error) {
	return layout.NewSorterWithConfig(p.config).Sort(p.regions)
}

// OrderIndices returns the reading-order permutation as indices into the
// input slice, for callers that carry panel data alongside the boxes.
func (p *PageSort) OrderIndices() ([]int, error) {
	return layout.NewSorterWithConfig(p.config).SortIndices(p.regions)
}
