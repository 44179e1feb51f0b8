// Package batch converts many independent inputs concurrently.
package batch

import (
	"context"
	"log/slog"
	"sync"
)

// Result is the outcome of one input.
type Result[T any] struct {
	Input string
	Value T
	Err   error
}

// Options configures Run.
type Options struct {
	// Workers bounds the number of inputs processed at once. Values
	// below 1 mean 1.
	Workers int
	Logger  *slog.Logger
}

// Run calls fn for every input with at most opts.Workers calls in
// flight and returns the results in input order. Once ctx is done no
// new input is started; those inputs report ctx.Err().
func Run[T any](ctx context.Context, inputs []string, opts Options, fn func(context.Context, string) (T, error)) []Result[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := max(opts.Workers, 1)

	logger.Info("processing batch", "count", len(inputs), "concurrency", limit)

	results := make([]Result[T], len(inputs))
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, input := range inputs {
		results[i].Input = input

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		}

		// The semaphore may win a race with a done context.
		if err := ctx.Err(); err != nil {
			<-sem
			results[i].Err = err
			continue
		}

		wg.Add(1)
		go func(r *Result[T]) {
			defer wg.Done()
			defer func() { <-sem }()

			r.Value, r.Err = fn(ctx, r.Input)
			if r.Err != nil {
				logger.Debug("input failed", "input", r.Input, "error", r.Err)
			}
		}(&results[i])
	}

	wg.Wait()
	return results
}
