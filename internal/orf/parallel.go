package orf

import (
	"runtime"
	"sync"
)

// WorkItem holds one translated frame ready for segmentation.
type WorkItem struct {
	Seq    int
	Header string
	AA     string
}

// WorkResult holds the spans for a single frame.
type WorkResult struct {
	Seq    int
	Header string
	Spans  []Span
}

// ParallelSegment segments work items using a pool of workers.
// Results are sent to the returned channel in arrival order (not sequence order).
// Use OrderedCollect to consume results in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
func ParallelSegment(items <-chan WorkItem, mode Mode, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- WorkResult{
					Seq:    item.Seq,
					Header: item.Header,
					Spans:  segmentFrame(item.Header, item.AA, mode),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// It buffers out-of-order results in a pending map and emits them
// as soon as the next expected sequence number is available.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

// segmentFrame segments one frame and tags its spans with the contig id.
func segmentFrame(header, aa string, mode Mode) []Span {
	spans := Segment(aa, mode)
	if len(spans) == 0 {
		return nil
	}
	contigID := NormalizeContigID(header)
	for i := range spans {
		spans[i].ContigID = contigID
	}
	return spans
}
