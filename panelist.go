// Package panelist provides a fluent API for preparing comic and manga
// pages: ordering detected panels into human reading order and removing the
// drawn border line from isolated panel images.
//
// Reading order:
//
//	ordered, err := panelist.Page(regions).Order()
//
// For manga pages, read right to left:
//
//	ordered, err := panelist.Page(regions).RightToLeft().Order()
//
// Border removal:
//
//	cleaned := panelist.Panel(img).Clean()
//
// Both pipelines are pure: inputs are never modified and the same input
// always produces the same output. For advanced use the lower-level layout,
// border, model, and vision packages are also available.
package panelist

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	ordered := panelist.Must(panelist.Page(regions).Order())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
