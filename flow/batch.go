package flow

import (
	"context"
)

// BatchResult reports the outcome for a single item of a sequential
// batch.
type BatchResult struct {
	// ID is the item the operation was applied to.
	ID int

	// Err is nil when the item was applied successfully.
	Err error
}

// RunSequential applies fn to each id strictly in order, one at a time,
// stopping at the first failure. Items applied before the failure stay
// applied (there is no rollback) and items after it are never attempted.
// The returned results cover exactly the attempted items; the error is
// the first failure, or nil when every item succeeded.
//
// Context cancellation between items stops the batch the same way a
// failing item does.
func RunSequential(ctx context.Context, ids []int, fn func(context.Context, int) error) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(ids))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			results = append(results, BatchResult{ID: id, Err: err})
			return results, err
		}

		err := fn(ctx, id)
		results = append(results, BatchResult{ID: id, Err: err})
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// Applied counts the successful items in a batch result.
func Applied(results []BatchResult) int {
	applied := 0
	for _, r := range results {
		if r.Err == nil {
			applied++
		}
	}
	return applied
}
