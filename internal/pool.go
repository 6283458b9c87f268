package internal

import (
	"context"
	"sync"
	"sync/atomic"
)

// A Task is one unit of parse or decode work handed to RunTasks.
type Task func() error

// RunTasks executes every task on at most workers goroutines, handing out
// work by an atomic index so no queue or dispatcher goroutine is needed.
// The first task error — or the context turning canceled — stops further
// tasks from starting; tasks already running finish. Returns the first
// error observed, or nil when every task succeeded.
//
// Message parsing wants exactly these semantics: one corrupt message
// aborts the batch with its own error, and the remaining workers drain
// instead of burning CPU on a result that will be discarded.
func RunTasks(ctx context.Context, workers int, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	var (
		next     atomic.Int64
		stopped  atomic.Bool
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	next.Store(-1)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			stopped.Store(true)
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if stopped.Load() {
					return
				}
				if err := ctx.Err(); err != nil {
					fail(err)
					return
				}
				i := int(next.Add(1))
				if i >= len(tasks) {
					return
				}
				if err := tasks[i](); err != nil {
					fail(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}
