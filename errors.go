package keysort

import "fmt"

// ComparisonError represents a panic raised by a criterion while the streaming
// sorter was comparing records. Slice sorting does not produce it; there a
// criterion panic propagates to the caller unchanged.
type ComparisonError struct {
	// Cause is the original panic value
	Cause any
	// Context names the pipeline stage where the panic surfaced
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
