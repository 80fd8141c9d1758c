package keysort

// UniqBy filters a slice that is already sorted by the given criteria, keeping
// the first record of each run that compares equal on every criterion. The
// input is assumed sorted so duplicates appear consecutively; the input slice
// is not mutated.
func UniqBy[T any](items []T, criteria ...Criterion[T]) []T {
	return UniqByWith(items, nil, criteria...)
}

// UniqByWith is UniqBy with explicit configuration. config may be nil to use
// the defaults; only Config.Nulls applies.
func UniqByWith[T any](items []T, config *Config, criteria ...Criterion[T]) []T {
	config = mergeConfig(config)
	out := make([]T, 0, len(items))
	for i, rec := range items {
		if i > 0 && compareRecords(items[i-1], rec, criteria, config.Nulls) == 0 {
			continue
		}
		out = append(out, rec)
	}
	return out
}
