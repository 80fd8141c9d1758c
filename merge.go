package keysort

// MergeBy merges two slices that are each already sorted by the given criteria
// into a single sorted slice. Records comparing equal are taken from a first,
// so the merge is stable with respect to argument order. Neither input is
// mutated.
func MergeBy[T any](a, b []T, criteria ...Criterion[T]) []T {
	return MergeByWith(a, b, nil, criteria...)
}

// MergeByWith is MergeBy with explicit configuration. config may be nil to use
// the defaults; only Config.Nulls applies to merging.
func MergeByWith[T any](a, b []T, config *Config, criteria ...Criterion[T]) []T {
	config = mergeConfig(config)
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if compareRecords(a[i], b[j], criteria, config.Nulls) <= 0 {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
