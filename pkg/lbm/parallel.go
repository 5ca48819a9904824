package lbm

import (
	"runtime"
	"sync"
)

// parallelRange executes fn for each i in [start,end), splitting the range
// across workers goroutines. workers <= 0 falls back to GOMAXPROCS, matching
// Config.Threads == 0 meaning "platform's maximum hardware parallelism".
// A panic inside fn is re-raised on the calling goroutine once every worker
// has finished.
func parallelRange(start, end, workers int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > total {
		workers = total
	}
	var wg sync.WaitGroup
	var panicOnce sync.Once
	var panicVal any
	chunk := (total + workers - 1) / workers
	for wkr := 0; wkr < workers; wkr++ {
		s := start + wkr*chunk
		e := s + chunk
		if e > end {
			e = end
		}
		if s >= end {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { panicVal = r })
				}
			}()
			for i := ss; i < ee; i++ {
				fn(i)
			}
		}(s, e)
	}
	wg.Wait()
	if panicVal != nil {
		panic(panicVal)
	}
}
