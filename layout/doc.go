// Package layout orders detected comic and manga panels into human reading
// order.
//
// Given the bounding boxes of the panels on a page, the [Sorter] produces the
// sequence a reader would follow: top to bottom, then left to right for
// Western comics or right to left for manga, honoring column structure and
// full-width spanning panels.
//
// # Sorting
//
//	sorter := layout.NewSorter()
//	ordered, err := sorter.Sort(regions)
//
// For manga (right-to-left) pages:
//
//	config := layout.DefaultSortConfig()
//	config.Direction = layout.RightToLeft
//	ordered, err := layout.NewSorterWithConfig(config).Sort(regions)
//
// # Pipeline
//
// Sorting runs as two independent passes plus a final insertion:
//
//   - [ColumnDetector] partitions regions into columns by horizontal gap
//     analysis, setting full-width spanning panels aside
//   - the [Sorter] merges columns by vertical row band so side-by-side
//     panels at the same height are read across before moving down the page
//   - spanning panels are inserted back at their natural vertical position
//
// The gap tolerance is computed per page from the median panel width, so the
// same configuration works for dense and sparse layouts.
//
// All operations are pure: the output is always a permutation of the input,
// and sorting an already-sorted page yields the same sequence.
package layout
