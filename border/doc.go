// Package border removes the drawn frame line from an isolated comic or
// manga panel image.
//
// The [Cleaner] locates the innermost border line and crops it away while
// preserving interior content, including speech bubbles that touch or cross
// the frame. The key step is skeletonization: the candidate border mask is
// reduced to a one-pixel-wide centerline before scanning, so detection does
// not depend on how thick or uneven the drawn stroke is.
//
//	cleaner := border.NewCleaner()
//	cleaned := cleaner.Clean(panelImage)
//
// Clean never fails: if no closed border is found within the search zone the
// input image is returned unchanged. The input is never modified.
//
// The contour-extraction and skeletonization primitives are consumed through
// the [BoundaryExtractor] and [Skeletonizer] interfaces and default to the
// vision package implementations; tests substitute fixtures through
// [Cleaner.UseBoundaryExtractor] and [Cleaner.UseSkeletonizer].
package border
