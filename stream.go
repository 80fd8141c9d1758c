package keysort

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/lanrat/keysort/queue"

	"golang.org/x/sync/errgroup"
)

// indexed pairs a record with its arrival position. The position is the final
// tie-break in every comparison, so records equal on all criteria leave the
// sorter in input order even when they were sorted in different chunks.
type indexed[T any] struct {
	pos uint64
	val T
}

// streamChunk holds one in-memory run of records awaiting sort or merge.
type streamChunk[T any] struct {
	data []indexed[T]
}

// chunkCursor tracks the merge position within one sorted chunk.
type chunkCursor[T any] struct {
	chunk *streamChunk[T]
	next  int
}

// StreamSorter sorts records arriving on a channel by a list of criteria.
// It reads the input into chunks, sorts the chunks on parallel workers, and
// merges the sorted chunks into the output channel. All data stays in memory.
type StreamSorter[T any] struct {
	config       Config
	criteria     []Criterion[T]
	input        <-chan T
	chunkChan    chan *streamChunk[T]
	sortedChunks []*streamChunk[T]
	sortedMutex  sync.Mutex
	outChan      chan T
	errChan      chan error
	buildSortCtx context.Context
}

// Sorted returns a StreamSorter for input along with its output and error
// channels. config may be nil to use the defaults. Call Sort on the returned
// sorter to start; records are then delivered on the output channel in
// ascending criteria order, and the error channel reports cancellation or a
// criterion panic.
func Sorted[T any](input <-chan T, config *Config, criteria ...Criterion[T]) (*StreamSorter[T], <-chan T, <-chan error) {
	config = mergeConfig(config)
	s := &StreamSorter[T]{
		config:    *config,
		criteria:  criteria,
		input:     input,
		chunkChan: make(chan *streamChunk[T], config.ChanBuffSize),
		outChan:   make(chan T, config.SortedChanBuffSize),
		errChan:   make(chan error, 1),
	}
	return s, s.outChan, s.errChan
}

// compare orders two indexed records by the criteria, falling back to arrival
// position so that equal records keep their input order.
func (s *StreamSorter[T]) compare(a, b indexed[T]) int {
	if rel := compareRecords(a.val, b.val, s.criteria, s.config.Nulls); rel != 0 {
		return rel
	}
	return cmp.Compare(a.pos, b.pos)
}

// Sort starts the sorting pipeline. It blocks while the input is read and the
// chunks are sorted, then unblocks while the merge feeds the output channel
// from a background goroutine.
// NOTE: the context passed to Sort must outlive Sort() returning.
// The merge uses the same context and runs in a goroutine after Sort returns.
func (s *StreamSorter[T]) Sort(ctx context.Context) {
	var group *errgroup.Group
	group, s.buildSortCtx = errgroup.WithContext(ctx)

	// start creating chunks
	group.Go(s.buildChunks)

	// sort chunks
	for i := 0; i < s.config.NumWorkers; i++ {
		group.Go(s.sortChunks)
	}

	err := group.Wait()
	if err != nil {
		s.errChan <- err
		close(s.errChan)
		close(s.outChan)
		return
	}

	// if this errors, it is returned in the errorChan
	go s.mergeChunks(ctx)
}

// buildChunks reads data from the input chan into chunks and pushes them to chunkChan
func (s *StreamSorter[T]) buildChunks() error {
	defer close(s.chunkChan) // if this is not called on error, causes a deadlock

	var pos uint64
	for {
		c := &streamChunk[T]{data: make([]indexed[T], 0, s.config.ChunkSize)}
	fill:
		for i := 0; i < s.config.ChunkSize; i++ {
			select {
			case rec, ok := <-s.input:
				if !ok {
					break fill
				}
				c.data = append(c.data, indexed[T]{pos: pos, val: rec})
				pos++
			case <-s.buildSortCtx.Done():
				return s.buildSortCtx.Err()
			}
		}
		if len(c.data) == 0 {
			// the input is drained
			return nil
		}

		select {
		// chunk is now full
		case s.chunkChan <- c:
		case <-s.buildSortCtx.Done():
			return s.buildSortCtx.Err()
		}
	}
}

// sortChunks is a worker that sorts chunks before they are handed to the merge
func (s *StreamSorter[T]) sortChunks() error {
	for {
		select {
		case c, more := <-s.chunkChan:
			if !more {
				return nil
			}
			if err := s.sortChunk(c); err != nil {
				return err
			}
			s.sortedMutex.Lock()
			s.sortedChunks = append(s.sortedChunks, c)
			s.sortedMutex.Unlock()
		case <-s.buildSortCtx.Done():
			return s.buildSortCtx.Err()
		}
	}
}

// sortChunk sorts a single chunk, converting a criterion panic into a
// ComparisonError instead of killing the worker goroutine.
func (s *StreamSorter[T]) sortChunk(c *streamChunk[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ComparisonError{Cause: r, Context: "sortChunks"}
		}
	}()
	// the arrival-position tie-break makes the order total, so an unstable
	// sort of the chunk cannot reorder equal records
	slices.SortFunc(c.data, s.compare)
	return nil
}

// mergeChunks merges the sorted chunks into the output chan using a priority
// queue keyed on each chunk's next record. Runs in the background after Sort.
func (s *StreamSorter[T]) mergeChunks(ctx context.Context) {
	defer close(s.outChan)
	defer close(s.errChan)
	defer func() {
		// single-record chunks skip the sort workers' compare calls, so a
		// criterion panic can first surface here
		if r := recover(); r != nil {
			s.errChan <- &ComparisonError{Cause: r, Context: "mergeChunks"}
		}
	}()

	// single chunk: already fully sorted, stream it out directly
	if len(s.sortedChunks) == 1 {
		for _, rec := range s.sortedChunks[0].data {
			select {
			case s.outChan <- rec.val:
			case <-ctx.Done():
				s.errChan <- ctx.Err()
				return
			}
		}
		return
	}

	pq := queue.NewPriorityQueue(func(a, b *chunkCursor[T]) int {
		return s.compare(a.chunk.data[a.next], b.chunk.data[b.next])
	})
	for _, c := range s.sortedChunks {
		if len(c.data) > 0 {
			pq.Push(&chunkCursor[T]{chunk: c})
		}
	}

	for pq.Len() > 0 {
		cur := pq.Peek()
		rec := cur.chunk.data[cur.next].val
		cur.next++
		if cur.next < len(cur.chunk.data) {
			pq.PeekUpdate()
		} else {
			pq.Pop()
		}
		select {
		case s.outChan <- rec:
		case <-ctx.Done():
			s.errChan <- ctx.Err()
			return
		}
	}
}
