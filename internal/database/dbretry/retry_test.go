package dbretry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/brkuhgk/Nestara/internal/database/dbretry"
	"github.com/brkuhgk/Nestara/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("read tcp 10.0.0.1:5432: connection reset by peer")

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "Nil", err: nil, retryable: false},
		{name: "Connection reset", err: errTransient, retryable: true},
		{name: "Wrapped connection reset", err: fmt.Errorf("failed to lock rating row: %w", errTransient), retryable: true},
		{name: "Broken pipe", err: errors.New("write: broken pipe"), retryable: true},
		{name: "Deadline exceeded", err: context.DeadlineExceeded, retryable: true},
		{name: "Rating not found", err: types.ErrRatingNotFound, retryable: false},
		{name: "Topic not found", err: types.ErrTopicNotFound, retryable: false},
		{name: "Plain domain error", err: errors.New("delta out of range"), retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.retryable, dbretry.IsRetryableError(tt.err))
		})
	}
}

func TestOperationRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	attempts := 0

	result, err := dbretry.Operation(t.Context(), func(context.Context) (int, error) {
		attempts++
		if attempts < 3 {
			return 0, errTransient
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, attempts)
}

func TestOperationDoesNotRetryDomainErrors(t *testing.T) {
	t.Parallel()

	attempts := 0

	_, err := dbretry.Operation(t.Context(), func(context.Context) (int, error) {
		attempts++
		return 0, types.ErrRatingNotFound
	})
	require.ErrorIs(t, err, types.ErrRatingNotFound)
	assert.Equal(t, 1, attempts)
}
