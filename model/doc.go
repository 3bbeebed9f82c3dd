// Package model defines the geometric types shared by the layout and border
// packages.
//
// The central type is [Region], an axis-aligned rectangle in page pixel
// coordinates with Y increasing downward (the image coordinate convention).
// Regions are immutable values: the layout package only reorders them, it
// never modifies them.
package model
