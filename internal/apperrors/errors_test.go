package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/ledger_saas_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("ingest: %w", apperrors.NewValidationError("line-1", "debit", "must not be negative"))

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))

	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "debit", vErr.Field)
	assert.Contains(t, err.Error(), "line-1 debit: must not be negative")
}

func TestIntegrityWarning_MatchesSentinel(t *testing.T) {
	w := &apperrors.IntegrityWarning{
		Check:      "balance sheet",
		Expected:   decimal.NewFromInt(100),
		Actual:     decimal.NewFromInt(90),
		Difference: decimal.NewFromInt(10),
	}

	assert.True(t, errors.Is(w, apperrors.ErrIntegrity))
	assert.Equal(t, "balance sheet: expected 100, got 90 (difference 10)", w.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	err := apperrors.NewNotFoundError("invoice not found")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, 404, err.Code)

	cause := errors.New("connection reset")
	wrapped := apperrors.NewAppError(500, "failed to query lines", cause)
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, "failed to query lines: connection reset", wrapped.Error())
}
