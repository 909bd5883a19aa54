package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallel2_BothSucceed(t *testing.T) {
	a, b, err := Parallel2(context.Background(),
		func(context.Context) (int, error) { return 42, nil },
		func(context.Context) (string, error) { return "hello", nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 42, a)
	assert.Equal(t, "hello", b)
}

func TestParallel2_FirstError(t *testing.T) {
	wantErr := errors.New("boom")

	a, b, err := Parallel2(context.Background(),
		func(context.Context) (int, error) { return 0, wantErr },
		func(context.Context) (string, error) { return "hello", nil },
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	assert.Zero(t, a)
	assert.Empty(t, b)
}

func TestParallel2_ErrorCancelsSibling(t *testing.T) {
	wantErr := errors.New("boom")

	_, _, err := Parallel2(context.Background(),
		func(context.Context) (int, error) { return 0, wantErr },
		func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(5 * time.Second):
				return "never", nil
			}
		},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
