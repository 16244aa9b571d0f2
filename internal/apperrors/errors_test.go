package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to insert ledger entry", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
	assert.Equal(t, "failed to insert ledger entry: connection reset", err.Error())
}

func TestAppError_NotFound(t *testing.T) {
	err := fmt.Errorf("lookup: %w", apperrors.NewNotFoundError("account acc-1 not found"))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrInternal)
}

func TestAppError_NilCause(t *testing.T) {
	err := apperrors.NewAppError(400, "bad cursor", nil)
	assert.Equal(t, "bad cursor", err.Error())
	assert.NotErrorIs(t, err, apperrors.ErrInternal)
}
