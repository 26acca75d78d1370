package syncs

import (
	"context"
	"iter"
	"sync"
)

// Ordered runs fn on every input, at most cap(sem) at a time, and yields results in input order.
// Stopping the iteration early waits for started calls to finish.
func Ordered[I, O any](ctx context.Context, sem Semaphore, inputs []I, fn func(context.Context, I) O) iter.Seq2[I, O] {
	return func(yield func(I, O) bool) {
		var wg sync.WaitGroup
		defer wg.Wait()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		results := make([]chan O, len(inputs))

		for i := range inputs {
			results[i] = make(chan O, 1)
		}
		wg.Go(func() {
			for i, input := range inputs {
				if err := sem.AcquireContext(ctx); err != nil {
					return
				}
				wg.Go(func() {
					defer sem.Release()
					results[i] <- fn(ctx, input)
				})
			}
		})

		for i, input := range inputs {
			var out O
			select {
			case out = <-results[i]:
			case <-ctx.Done():
				return
			}
			if !yield(input, out) {
				return
			}
		}
	}
}
