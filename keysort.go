// Package keysort implements a stable multi-key sort for collections of records.
// Records are sorted ascending by an ordered list of criteria, each either a
// field name or an accessor function, with later criteria breaking ties left by
// earlier ones. Values of mismatched types still compare: the Compare function
// defines a total preorder over arbitrary values and never panics.
package keysort

import "slices"

// SortBy returns a new slice with the records of items ordered ascending by the
// given criteria. The input slice is never mutated and the result is a
// permutation of it. Records equal on every criterion keep their original
// relative order (the underlying sort is stable). Empty criteria returns a copy
// of items in original order.
func SortBy[T any](items []T, criteria ...Criterion[T]) []T {
	return SortByWith(items, nil, criteria...)
}

// SortByWith is SortBy with explicit configuration. config may be nil to use
// the defaults; only Config.Nulls applies to slice sorting.
func SortByWith[T any](items []T, config *Config, criteria ...Criterion[T]) []T {
	config = mergeConfig(config)
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return compareRecords(a, b, criteria, config.Nulls)
	})
	return sorted
}
