package pixelart

import (
	"runtime"
	"sync"
)

// parallelFor splits [0, n) into contiguous chunks, one per worker, and
// runs fn on each chunk concurrently. Chunks never overlap, so fn may
// write to per-index output slots without synchronization.
func parallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(runtime.NumCPU(), n)
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}
