// Package safecall implements the result-or-default combinators behind the
// Safe wrapper types. The never-fails contract of the outward-facing tier is
// enforced here once instead of being repeated per operation.
package safecall

// List invokes f and returns its slice result. Any error, or a nil slice,
// yields an empty non-nil slice instead.
func List[T any](f func() ([]T, error)) []T {
	items, err := f()
	if err != nil || items == nil {
		return []T{}
	}
	return items
}

// Item invokes f and returns its result, substituting nil on any error.
func Item[T any](f func() (*T, error)) *T {
	item, err := f()
	if err != nil {
		return nil
	}
	return item
}
