package layout

import (
	"sort"

	"github.com/inkfold/panelist/model"
)

// Column represents one vertical band of panels on a page.
type Column struct {
	// BBox is the union of the bounding boxes of the regions in the column.
	BBox model.Region

	// Regions contained in this column, sorted top to bottom.
	Regions []model.Region

	// Index of the column (0-based, leftmost first).
	Index int
}

// CenterX returns the horizontal center of the column's bounding box.
func (c Column) CenterX() float64 {
	return c.BBox.CenterX()
}

// ColumnConfig holds configuration for column partitioning.
type ColumnConfig struct {
	// GapToleranceFactor scales the dynamic gap tolerance. The tolerance is
	// this factor times the median width of the non-spanning regions on the
	// page; a horizontal gap between consecutive region centers larger than
	// the tolerance starts a new column. Deriving the tolerance from the
	// page itself lets one configuration handle both dense and sparse
	// layouts.
	// Default: 0.5
	GapToleranceFactor float64

	// SpanningWidthRatio is the minimum fraction of the page span a region
	// must cover to be treated as a spanning panel (e.g. a full-width bottom
	// panel). Spanning panels are set aside during partitioning and inserted
	// back at their vertical position during the merge.
	// Default: 0.6
	SpanningWidthRatio float64

	// MinColumnRegions is the minimum number of non-spanning regions needed
	// for the spanning split to take effect. With fewer, every region takes
	// part in column partitioning, so a page made entirely of wide panels
	// still sorts top to bottom.
	// Default: 2
	MinColumnRegions int
}

// DefaultColumnConfig returns sensible default configuration.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		GapToleranceFactor: 0.5,
		SpanningWidthRatio: 0.6,
		MinColumnRegions:   2,
	}
}

// ColumnLayout represents the detected column structure of a page.
type ColumnLayout struct {
	// Columns sorted left to right.
	Columns []Column

	// Spanning panels set aside during partitioning, in input order.
	Spanning []model.Region

	// Span is the horizontal extent covered by the input regions.
	Span int

	// Tolerance is the gap tolerance computed for this page.
	Tolerance float64
}

// ColumnCount returns the number of detected columns.
func (l *ColumnLayout) ColumnCount() int {
	if l == nil {
		return 0
	}
	return len(l.Columns)
}

// IsSingleColumn returns true if at most one column was detected.
func (l *ColumnLayout) IsSingleColumn() bool {
	return l.ColumnCount() <= 1
}

// IsMultiColumn returns true if multiple columns were detected.
func (l *ColumnLayout) IsMultiColumn() bool {
	return l.ColumnCount() > 1
}

// GetColumn returns a specific column by index.
func (l *ColumnLayout) GetColumn(index int) *Column {
	if l == nil || index < 0 || index >= len(l.Columns) {
		return nil
	}
	return &l.Columns[index]
}

// ColumnDetector partitions panel regions into columns by analyzing the
// horizontal gaps between their centers.
type ColumnDetector struct {
	config ColumnConfig
}

// NewColumnDetector creates a new column detector with default configuration.
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{
		config: DefaultColumnConfig(),
	}
}

// NewColumnDetectorWithConfig creates a column detector with custom configuration.
func NewColumnDetectorWithConfig(config ColumnConfig) *ColumnDetector {
	return &ColumnDetector{
		config: config,
	}
}

// Detect partitions regions into columns and spanning panels.
func (d *ColumnDetector) Detect(regions []model.Region) *ColumnLayout {
	if len(regions) == 0 {
		return &ColumnLayout{}
	}

	columns, spanning, span, tol := d.partition(wrapRegions(regions))

	layout := &ColumnLayout{
		Span:      span,
		Tolerance: tol,
	}
	for i, col := range columns {
		sortColumnByTop(col)
		c := Column{
			BBox:    columnBBox(col),
			Regions: make([]model.Region, 0, len(col)),
			Index:   i,
		}
		for _, p := range col {
			c.Regions = append(c.Regions, p.region)
		}
		layout.Columns = append(layout.Columns, c)
	}
	for _, p := range spanning {
		layout.Spanning = append(layout.Spanning, p.region)
	}
	return layout
}

// panel pairs a region with its position in the caller's input so sorting can
// report a permutation as well as the reordered regions.
type panel struct {
	region model.Region
	index  int
}

func wrapRegions(regions []model.Region) []panel {
	panels := make([]panel, len(regions))
	for i, r := range regions {
		panels[i] = panel{region: r, index: i}
	}
	return panels
}

// partition splits panels into left-to-right columns and set-aside spanning
// panels. It also reports the page span and the gap tolerance it computed.
func (d *ColumnDetector) partition(panels []panel) (columns [][]panel, spanning []panel, span int, tol float64) {
	if len(panels) == 0 {
		return nil, nil, 0, 0
	}

	minLeft := panels[0].region.Left()
	maxRight := panels[0].region.Right()
	for _, p := range panels[1:] {
		if p.region.Left() < minLeft {
			minLeft = p.region.Left()
		}
		if p.region.Right() > maxRight {
			maxRight = p.region.Right()
		}
	}
	span = maxRight - minLeft

	// Separate spanning panels from the ones that form columns.
	var remaining []panel
	for _, p := range panels {
		if float64(p.region.Width) >= d.config.SpanningWidthRatio*float64(span) {
			spanning = append(spanning, p)
		} else {
			remaining = append(remaining, p)
		}
	}

	// Too few panels left to form columns: treat everything as non-spanning.
	// The second check keeps partitioning total for configurations where
	// every panel classifies as spanning (e.g. a zero spanning ratio).
	if len(remaining) < d.config.MinColumnRegions || len(remaining) == 0 {
		remaining = panels
		spanning = nil
	}

	sorted := make([]panel, len(remaining))
	copy(sorted, remaining)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].region.CenterX() < sorted[j].region.CenterX()
	})

	tol = d.config.GapToleranceFactor * medianWidth(sorted)

	// Each maximal run of centers separated by gaps within tolerance forms
	// one column.
	current := []panel{sorted[0]}
	for _, p := range sorted[1:] {
		gap := p.region.CenterX() - current[len(current)-1].region.CenterX()
		if gap > tol {
			columns = append(columns, current)
			current = nil
		}
		current = append(current, p)
	}
	columns = append(columns, current)

	return columns, spanning, span, tol
}

// medianWidth returns the median bounding box width of the given panels.
func medianWidth(panels []panel) float64 {
	if len(panels) == 0 {
		return 0
	}
	widths := make([]int, len(panels))
	for i, p := range panels {
		widths[i] = p.region.Width
	}
	sort.Ints(widths)

	mid := len(widths) / 2
	if len(widths)%2 == 0 {
		return float64(widths[mid-1]+widths[mid]) / 2
	}
	return float64(widths[mid])
}

// sortColumnByTop orders a column's panels top to bottom without any
// directional tie-breaking.
func sortColumnByTop(col []panel) {
	sort.SliceStable(col, func(i, j int) bool {
		return col[i].region.Top() < col[j].region.Top()
	})
}

// columnBBox calculates the union bounding box of a column.
func columnBBox(col []panel) model.Region {
	if len(col) == 0 {
		return model.Region{}
	}
	bbox := col[0].region
	for _, p := range col[1:] {
		bbox = bbox.Union(p.region)
	}
	return bbox
}
