package layout

import (
	"errors"
	"testing"

	"github.com/inkfold/panelist/model"
)

// assertPermutation verifies that out contains exactly the same multiset of
// regions as in.
func assertPermutation(t *testing.T, in, out []model.Region) {
	t.Helper()
	if len(in) != len(out) {
		t.Fatalf("length changed: %d in, %d out", len(in), len(out))
	}
	counts := make(map[model.Region]int)
	for _, r := range in {
		counts[r]++
	}
	for _, r := range out {
		counts[r]--
	}
	for r, c := range counts {
		if c != 0 {
			t.Errorf("region %+v count off by %d", r, c)
		}
	}
}

func TestSorter_EmptyInput(t *testing.T) {
	ordered, err := NewSorter().Sort(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ordered) != 0 {
		t.Errorf("expected empty output, got %d regions", len(ordered))
	}
}

func TestSorter_InvalidRegion(t *testing.T) {
	regions := []model.Region{
		model.NewRegion(0, 0, 100, 100),
		model.NewRegion(0, 110, 100, 0),
	}

	_, err := NewSorter().Sort(regions)
	if err == nil {
		t.Fatal("expected error for zero-height region")
	}

	var invalid *model.InvalidRegionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *model.InvalidRegionError, got %T", err)
	}
	if invalid.Index != 1 {
		t.Errorf("expected offending index 1, got %d", invalid.Index)
	}
}

// Two columns of small panels plus a full-width bottom panel: the canonical
// page from which both reading directions must be derivable.
func TestSorter_TwoColumnsWithSpanningBottom(t *testing.T) {
	regions := []model.Region{
		model.NewRegion(0, 0, 100, 100),
		model.NewRegion(110, 0, 100, 100),
		model.NewRegion(0, 110, 210, 100),
	}

	ltr, err := SortPanels(regions, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantLTR := []model.Region{regions[0], regions[1], regions[2]}
	for i, r := range wantLTR {
		if ltr[i] != r {
			t.Errorf("ltr position %d: got %+v, want %+v", i, ltr[i], r)
		}
	}

	rtl, err := SortPanels(regions, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantRTL := []model.Region{regions[1], regions[0], regions[2]}
	for i, r := range wantRTL {
		if rtl[i] != r {
			t.Errorf("rtl position %d: got %+v, want %+v", i, rtl[i], r)
		}
	}
}

func TestSorter_DirectionSymmetry(t *testing.T) {
	// 2x2 grid, no spanning panels: right-to-left must reverse the column
	// order but not the row order.
	tl := model.NewRegion(0, 0, 100, 100)
	tr := model.NewRegion(110, 0, 100, 100)
	bl := model.NewRegion(0, 110, 100, 100)
	br := model.NewRegion(110, 110, 100, 100)
	regions := []model.Region{br, tl, tr, bl} // deliberately shuffled

	ltr, err := SortPanels(regions, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rtl, err := SortPanels(regions, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLTR := []model.Region{tl, tr, bl, br}
	wantRTL := []model.Region{tr, tl, br, bl}
	for i := range wantLTR {
		if ltr[i] != wantLTR[i] {
			t.Errorf("ltr position %d: got %+v, want %+v", i, ltr[i], wantLTR[i])
		}
		if rtl[i] != wantRTL[i] {
			t.Errorf("rtl position %d: got %+v, want %+v", i, rtl[i], wantRTL[i])
		}
	}
}

func TestSorter_SingleColumnFallback(t *testing.T) {
	// All regions within horizontal tolerance of each other: pure
	// top-to-bottom sort, direction irrelevant.
	regions := []model.Region{
		model.NewRegion(0, 200, 100, 80),
		model.NewRegion(0, 0, 100, 80),
		model.NewRegion(0, 100, 100, 80),
	}

	for _, rtl := range []bool{false, true} {
		ordered, err := SortPanels(regions, rtl)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(ordered); i++ {
			if ordered[i].Top() < ordered[i-1].Top() {
				t.Errorf("rtl=%v: position %d out of vertical order", rtl, i)
			}
		}
	}
}

func TestSorter_SpanningInsertedAtVerticalPosition(t *testing.T) {
	// A full-width panel between two rows of columns is read after the top
	// row and before the bottom row.
	regions := []model.Region{
		model.NewRegion(0, 220, 100, 100),   // bottom left
		model.NewRegion(0, 110, 210, 100),   // spanning middle
		model.NewRegion(0, 0, 100, 100),     // top left
		model.NewRegion(110, 0, 100, 100),   // top right
		model.NewRegion(110, 220, 100, 100), // bottom right
	}

	ordered, err := SortPanels(regions, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPermutation(t, regions, ordered)

	spanning := regions[1]
	pos := -1
	for i, r := range ordered {
		if r == spanning {
			pos = i
		}
	}
	if pos == -1 {
		t.Fatal("spanning panel missing from output")
	}
	for i, r := range ordered {
		if r == spanning {
			continue
		}
		above := r.CenterY() < spanning.CenterY()
		if above && i > pos {
			t.Errorf("panel %+v above the spanning panel but read after it", r)
		}
		if !above && i < pos {
			t.Errorf("panel %+v below the spanning panel but read before it", r)
		}
	}
}

func TestSorter_AllSpanningDegenerate(t *testing.T) {
	// Every panel full width: order purely by vertical position.
	regions := []model.Region{
		model.NewRegion(0, 220, 400, 100),
		model.NewRegion(0, 0, 400, 100),
		model.NewRegion(0, 110, 400, 100),
	}

	ordered, err := SortPanels(regions, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].CenterY() < ordered[i-1].CenterY() {
			t.Errorf("position %d out of vertical order", i)
		}
	}
}

func TestSorter_OverlappingRegionsDegradeGracefully(t *testing.T) {
	// Malformed input with heavy overlaps still yields a permutation.
	regions := []model.Region{
		model.NewRegion(0, 0, 120, 120),
		model.NewRegion(50, 10, 120, 120),
		model.NewRegion(10, 50, 120, 120),
		model.NewRegion(0, 0, 120, 120), // exact duplicate
	}

	ordered, err := SortPanels(regions, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPermutation(t, regions, ordered)
}

func TestSorter_ZeroValueConfig(t *testing.T) {
	// Sorting must stay total for any config reachable through the exported
	// API: a zero-value SortConfig makes every region spanning, and the
	// output must still be a permutation rather than a panic.
	regions := []model.Region{
		model.NewRegion(0, 0, 100, 100),
		model.NewRegion(110, 0, 100, 100),
		model.NewRegion(0, 110, 210, 100),
	}

	ordered, err := NewSorterWithConfig(SortConfig{}).Sort(regions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertPermutation(t, regions, ordered)

	type boxed struct{ Box model.Region }
	items := []boxed{{regions[0]}, {regions[1]}}
	sorted, err := SortItems(items, func(b boxed) model.Region { return b.Box }, SortConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sorted) != len(items) {
		t.Errorf("expected %d items, got %d", len(items), len(sorted))
	}
}

func TestSorter_Idempotent(t *testing.T) {
	regions := []model.Region{
		model.NewRegion(110, 220, 100, 100),
		model.NewRegion(0, 0, 100, 100),
		model.NewRegion(0, 110, 210, 100),
		model.NewRegion(110, 0, 100, 100),
		model.NewRegion(0, 220, 100, 100),
	}

	for _, rtl := range []bool{false, true} {
		once, err := SortPanels(regions, rtl)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		twice, err := SortPanels(once, rtl)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Errorf("rtl=%v: re-sort changed position %d: %+v -> %+v",
					rtl, i, once[i], twice[i])
			}
		}
	}
}

func TestSorter_RowBandAbsorbsMisalignment(t *testing.T) {
	// Hand-drawn layouts rarely align exactly: panels offset by a few pixels
	// must still merge into the same row band.
	regions := []model.Region{
		model.NewRegion(110, 8, 100, 100), // top right, slightly lower
		model.NewRegion(0, 0, 100, 100),   // top left
		model.NewRegion(110, 115, 100, 100),
		model.NewRegion(0, 112, 100, 100),
	}

	ordered, err := SortPanels(regions, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.Region{regions[1], regions[0], regions[3], regions[2]}
	for i, r := range want {
		if ordered[i] != r {
			t.Errorf("position %d: got %+v, want %+v", i, ordered[i], r)
		}
	}
}

func TestSortIndices_Permutation(t *testing.T) {
	regions := []model.Region{
		model.NewRegion(110, 0, 100, 100),
		model.NewRegion(0, 110, 210, 100),
		model.NewRegion(0, 0, 100, 100),
	}

	indices, err := NewSorter().SortIndices(regions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(indices) != len(regions) {
		t.Fatalf("expected %d indices, got %d", len(regions), len(indices))
	}
	seen := make(map[int]bool)
	for _, idx := range indices {
		if idx < 0 || idx >= len(regions) {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d repeated", idx)
		}
		seen[idx] = true
	}

	want := []int{2, 0, 1}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("position %d: got index %d, want %d", i, indices[i], want[i])
		}
	}
}

func TestSortItems_PreservesElementType(t *testing.T) {
	type detected struct {
		Name string
		Box  model.Region
	}
	items := []detected{
		{"right", model.NewRegion(110, 0, 100, 100)},
		{"bottom", model.NewRegion(0, 110, 210, 100)},
		{"left", model.NewRegion(0, 0, 100, 100)},
	}

	ordered, err := SortItems(items, func(d detected) model.Region { return d.Box }, DefaultSortConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"left", "right", "bottom"}
	for i, name := range want {
		if ordered[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, ordered[i].Name, name)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if LeftToRight.String() != "ltr" {
		t.Errorf("unexpected ltr string: %q", LeftToRight.String())
	}
	if RightToLeft.String() != "rtl" {
		t.Errorf("unexpected rtl string: %q", RightToLeft.String())
	}
}
