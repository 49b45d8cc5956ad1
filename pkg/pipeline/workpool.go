// Package pipeline implements stages 1 through 5 of the layer-analysis
// core (spec.md §2): Layer Construction, Facet Slicing, Loop Assembly &
// Surface Extraction, Slice Repair, and Empty-Prefix Trim. It also owns
// the worker pool (RunPool) its facet-slicing stage runs on; no other
// package in this module calls it.
package pipeline

import "sync"

// job is one unit of parallel work: run computes a partial result for item
// index i, which the caller's collector merges afterward. Matching
// spec.md §5 ("Work items are indices into read-only data"), run receives
// only the index — the closure that builds it owns whatever read-only
// data it needs.
type job struct {
	index int
	run   func(index int) any
}

// result pairs a job's index with its output, so the collector can merge
// results by index regardless of completion order (spec.md §5: "the
// collector merges them in arrival order ... commutative for that stage").
type result struct {
	index int
	value any
}

// RunPool runs fn(i) for every i in [0, n) across at most workers
// goroutines, then calls collect(i, value) once per item on the caller's
// own goroutine — collect never runs concurrently with itself, so it may
// freely mutate shared state (spec.md §5: "Object-wide layer data is
// written only by the collector"). If n is below threshold, RunPool runs
// everything sequentially on the calling goroutine instead of spinning up
// workers, matching spec.md §4.2's "facets may be processed in parallel
// provided facet count exceeds a small threshold".
func RunPool(n, workers, threshold int, fn func(index int) any, collect func(index int, value any)) {
	if n <= 0 {
		return
	}
	if n < threshold || workers < 2 {
		for i := 0; i < n; i++ {
			collect(i, fn(i))
		}
		return
	}

	jobs := make(chan job, n)
	results := make(chan result, n)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- result{index: j.index, value: j.run(j.index)}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- job{index: i, run: fn}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		collect(r.index, r.value)
	}
}

// DefaultThreshold is the "small threshold" spec.md §4.2 gives as an
// example (500 facets) before parallelism pays for itself.
const DefaultThreshold = 500
