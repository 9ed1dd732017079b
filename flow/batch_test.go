package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSequential(t *testing.T) {
	errRejected := errors.New("rejected")

	tests := []struct {
		name        string
		ids         []int
		failOn      map[int]error
		wantCalls   []int
		wantApplied int
		wantErr     error
	}{
		{
			name:        "all succeed",
			ids:         []int{1, 2, 3},
			wantCalls:   []int{1, 2, 3},
			wantApplied: 3,
		},
		{
			name:        "second fails stops batch",
			ids:         []int{1, 2, 3},
			failOn:      map[int]error{2: errRejected},
			wantCalls:   []int{1, 2},
			wantApplied: 1,
			wantErr:     errRejected,
		},
		{
			name:        "first fails applies nothing",
			ids:         []int{1, 2},
			failOn:      map[int]error{1: errRejected},
			wantCalls:   []int{1},
			wantApplied: 0,
			wantErr:     errRejected,
		},
		{
			name:        "empty batch",
			ids:         nil,
			wantCalls:   nil,
			wantApplied: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []int
			results, err := RunSequential(context.Background(), tt.ids, func(_ context.Context, id int) error {
				calls = append(calls, id)
				return tt.failOn[id]
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls)
			assert.Len(t, results, len(tt.wantCalls))
			assert.Equal(t, tt.wantApplied, Applied(results))
		})
	}
}

func TestRunSequentialCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	results, err := RunSequential(ctx, []int{1, 2, 3}, func(_ context.Context, id int) error {
		calls++
		if id == 1 {
			cancel()
		}
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, Applied(results))
}
