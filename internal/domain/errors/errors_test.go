package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails_KeepsSentinelIdentity(t *testing.T) {
	sentinels := []*BaseError{
		ErrInvalidTransition,
		ErrValidationFailed,
		ErrInsufficientStock,
		ErrComputation,
		ErrNotFound,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.ErrorCode(), func(t *testing.T) {
			enriched := sentinel.WithDetails("some context")

			assert.Equal(t, "some context", enriched.Details())
			assert.True(t, errors.Is(enriched, sentinel))
		})
	}
}

func TestBaseError_WithDetails_WrappedStillMatches(t *testing.T) {
	err := errors.Wrap(ErrInvalidTransition.WithDetails("SHIPPED -> CANCELLED"), "failed to cancel order")

	assert.True(t, errors.Is(err, ErrInvalidTransition))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
	assert.Equal(t, "SHIPPED -> CANCELLED", appErr.Details())
}

func TestBaseError_Is_DistinctCodesDoNotMatch(t *testing.T) {
	assert.False(t, errors.Is(ErrValidationFailed, ErrNotFound))
	assert.False(t, errors.Is(ErrInvalidTransition.WithDetails("x"), ErrConflict))
	assert.False(t, errors.Is(ErrNotFound, errors.New("not found")))
}
