package layout

import (
	"sort"

	"github.com/inkfold/panelist/model"
)

// Direction indicates the horizontal reading direction of a page.
type Direction int

const (
	// LeftToRight is the default for Western comics.
	LeftToRight Direction = iota
	// RightToLeft is used for manga.
	RightToLeft
)

// String returns a string representation of the reading direction.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// SortConfig holds configuration for reading-order sorting.
type SortConfig struct {
	// Direction is the horizontal reading direction.
	Direction Direction

	// RowOverlapRatio is the minimum fraction of the smaller region height
	// two regions must overlap vertically to be read as part of the same row
	// band. The tolerance absorbs minor misalignment in hand-drawn layouts.
	// Default: 0.5
	RowOverlapRatio float64

	// Columns is the configuration for column partitioning.
	Columns ColumnConfig
}

// DefaultSortConfig returns sensible default configuration.
func DefaultSortConfig() SortConfig {
	return SortConfig{
		Direction:       LeftToRight,
		RowOverlapRatio: 0.5,
		Columns:         DefaultColumnConfig(),
	}
}

// Sorter orders panel regions into reading order: top to bottom, then by
// column in the configured direction, with spanning panels inserted at their
// natural vertical position.
//
// A Sorter is stateless and safe to share across goroutines.
type Sorter struct {
	config SortConfig
}

// NewSorter creates a new sorter with default configuration.
func NewSorter() *Sorter {
	return &Sorter{
		config: DefaultSortConfig(),
	}
}

// NewSorterWithConfig creates a sorter with custom configuration.
func NewSorterWithConfig(config SortConfig) *Sorter {
	return &Sorter{
		config: config,
	}
}

// Sort returns the regions reordered into reading order. The result is a
// permutation of the input: same length, same multiset of regions. An empty
// input yields an empty result. The only failure mode is a region with
// non-positive width or height, reported as a *model.InvalidRegionError.
func (s *Sorter) Sort(regions []model.Region) ([]model.Region, error) {
	indices, err := s.SortIndices(regions)
	if err != nil {
		return nil, err
	}
	ordered := make([]model.Region, len(indices))
	for i, idx := range indices {
		ordered[i] = regions[idx]
	}
	return ordered, nil
}

// SortIndices returns the reading-order permutation of the input as indices
// into the regions slice.
func (s *Sorter) SortIndices(regions []model.Region) ([]int, error) {
	if err := model.ValidateRegions(regions); err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return []int{}, nil
	}

	detector := NewColumnDetectorWithConfig(s.config.Columns)
	columns, spanning, _, _ := detector.partition(wrapRegions(regions))

	for _, col := range columns {
		s.sortWithinColumn(col)
	}
	if s.config.Direction == RightToLeft {
		reverseColumns(columns)
	}

	merged := s.mergeColumns(columns)
	final := mergeSpanning(merged, spanning)

	indices := make([]int, len(final))
	for i, p := range final {
		indices[i] = p.index
	}
	return indices, nil
}

// SortPanels orders regions into reading order using the default
// configuration. rtl selects right-to-left column order.
func SortPanels(regions []model.Region, rtl bool) ([]model.Region, error) {
	config := DefaultSortConfig()
	if rtl {
		config.Direction = RightToLeft
	}
	return NewSorterWithConfig(config).Sort(regions)
}

// SortItems orders arbitrary items carrying panel bounding boxes, returning
// the items themselves in reading order. regionOf extracts the bounding box
// of an item.
func SortItems[T any](items []T, regionOf func(T) model.Region, config SortConfig) ([]T, error) {
	regions := make([]model.Region, len(items))
	for i, item := range items {
		regions[i] = regionOf(item)
	}

	indices, err := NewSorterWithConfig(config).SortIndices(regions)
	if err != nil {
		return nil, err
	}

	ordered := make([]T, len(indices))
	for i, idx := range indices {
		ordered[i] = items[idx]
	}
	return ordered, nil
}

// sortWithinColumn orders a column's panels top to bottom. Panels sharing a
// row band are ordered by horizontal position in the reading direction, so
// left/right sub-groups inside a column stay stable.
func (s *Sorter) sortWithinColumn(col []panel) {
	sort.SliceStable(col, func(i, j int) bool {
		a, b := col[i].region, col[j].region
		if s.sameRowBand(a, b) {
			if s.config.Direction == RightToLeft {
				return a.CenterX() > b.CenterX()
			}
			return a.CenterX() < b.CenterX()
		}
		return a.Top() < b.Top()
	})
}

// sameRowBand reports whether two regions are at the same reading height.
func (s *Sorter) sameRowBand(a, b model.Region) bool {
	minHeight := min(a.Height, b.Height)
	if minHeight <= 0 {
		return false
	}
	return float64(a.VerticalOverlap(b)) >= s.config.RowOverlapRatio*float64(minHeight)
}

// reverseColumns flips the column order in place for right-to-left reading.
func reverseColumns(columns [][]panel) {
	for i, j := 0, len(columns)-1; i < j; i, j = i+1, j-1 {
		columns[i], columns[j] = columns[j], columns[i]
	}
}

// mergeColumns interleaves columns by row band: all panels at the same
// reading height are emitted in column order before advancing down the page.
// Columns must already be ordered in the reading direction and sorted
// internally.
func (s *Sorter) mergeColumns(columns [][]panel) []panel {
	if len(columns) == 1 {
		return columns[0]
	}

	heads := make([]int, len(columns))
	remaining := 0
	for _, col := range columns {
		remaining += len(col)
	}

	var merged []panel
	for remaining > 0 {
		// The next row band is anchored by the topmost unread panel.
		ref := -1
		for i, col := range columns {
			if heads[i] >= len(col) {
				continue
			}
			if ref == -1 || col[heads[i]].region.Top() < columns[ref][heads[ref]].region.Top() {
				ref = i
			}
		}
		anchor := columns[ref][heads[ref]].region

		// Emit every panel in the anchor's row band, in column order. The
		// anchor always overlaps itself, so each pass makes progress.
		for i, col := range columns {
			for heads[i] < len(col) && s.sameRowBand(col[heads[i]].region, anchor) {
				merged = append(merged, col[heads[i]])
				heads[i]++
				remaining--
			}
		}
	}
	return merged
}

// mergeSpanning inserts spanning panels into the merged sequence by vertical
// center, so a full-width panel is read at its natural height even though it
// belongs to no column.
func mergeSpanning(merged, spanning []panel) []panel {
	if len(spanning) == 0 {
		return merged
	}

	sort.SliceStable(spanning, func(i, j int) bool {
		return spanning[i].region.CenterY() < spanning[j].region.CenterY()
	})

	out := make([]panel, 0, len(merged)+len(spanning))
	i, j := 0, 0
	for i < len(merged) && j < len(spanning) {
		if spanning[j].region.CenterY() < merged[i].region.CenterY() {
			out = append(out, spanning[j])
			j++
		} else {
			out = append(out, merged[i])
			i++
		}
	}
	out = append(out, merged[i:]...)
	out = append(out, spanning[j:]...)
	return out
}
