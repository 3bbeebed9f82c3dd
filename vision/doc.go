// Package vision implements the small set of binary image primitives the
// border cleaner is built on: thresholding, connected-component boundary
// extraction, morphological erosion, hole filling, and Zhang-Suen thinning.
//
// All functions operate on *image.Gray masks where any nonzero pixel is
// foreground. Inputs are never modified; every function allocates its result.
//
// The border package consumes boundary extraction and thinning through
// narrow interfaces, so alternative backends (or test fixtures) can be
// substituted without touching the cleaning pipeline.
package vision
