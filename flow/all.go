package flow

import (
	"context"
	"sync"
)

// All runs the loaders concurrently and waits for every one of them to
// settle. It returns the first error in argument order, or nil when all
// loaders succeeded. This is the screen-load pattern: independent fetches
// are issued together, the loading state clears only once all are done,
// and any failure surfaces as a single error rather than a partially
// rendered screen.
func All(ctx context.Context, loaders ...func(context.Context) error) error {
	errs := make([]error, len(loaders))

	var wg sync.WaitGroup
	for i, loader := range loaders {
		wg.Add(1)
		go func(i int, loader func(context.Context) error) {
			defer wg.Done()
			errs[i] = loader(ctx)
		}(i, loader)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
