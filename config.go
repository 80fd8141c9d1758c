package keysort

// Config holds configuration settings for keysort
type Config struct {
	Nulls              NullOrder // placement of nil values in the order, NullsLast if unset
	ChunkSize          int       // amount of records sorted by a single worker in the streaming sorter
	NumWorkers         int       // maximum number of workers to use to sort chunks concurrently
	ChanBuffSize       int       // buffer size for passing chunks between pipeline stages
	SortedChanBuffSize int       // buffer size for passing sorted records to output
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Nulls:              NullsLast,
		ChunkSize:          1 << 16,
		NumWorkers:         4,
		ChanBuffSize:       1,
		SortedChanBuffSize: 10,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.ChunkSize <= 1 {
		out.ChunkSize = d.ChunkSize
	}
	if out.NumWorkers < 1 {
		out.NumWorkers = d.NumWorkers
	}
	if out.ChanBuffSize < 0 {
		out.ChanBuffSize = d.ChanBuffSize
	}
	if out.SortedChanBuffSize < 0 {
		out.SortedChanBuffSize = d.SortedChanBuffSize
	}
	return &out
}
