package transaction

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRejection_Is(t *testing.T) {
	expired := NewTimestampExpired(time.Date(2025, 1, 18, 4, 39, 38, 0, time.UTC))

	assert.ErrorIs(t, expired, ErrTimestampExpired)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", ErrSignatureMismatch), ErrSignatureMismatch)
	assert.NotErrorIs(t, ErrTotalAmountMismatch, ErrInvalidTotalAmount)
	assert.NotErrorIs(t, errors.New("Access Denied!"), ErrAccessDenied)
}

func TestNewTimestampExpired(t *testing.T) {
	now := time.Date(2025, 1, 18, 12, 39, 38, 0, time.FixedZone("MYT", 8*60*60))

	got := NewTimestampExpired(now)

	assert.Equal(t, "Time Expired. Current UTC: 2025-01-18T04:39:38Z", got.Message)
	assert.Equal(t, RejectionKindFreshness, got.Kind)
}

func TestAsRejection(t *testing.T) {
	rejection, ok := AsRejection(fmt.Errorf("validate: %w", ErrItemsRequired))
	assert.True(t, ok)
	assert.Equal(t, "Items are required.", rejection.Message)

	_, ok = AsRejection(errors.New("boom"))
	assert.False(t, ok)
}
