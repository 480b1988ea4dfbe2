package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	detailed := NewError(ErrScheduleConflict.Code, "scheduling conflicts at: 2026-03-11 14:00")

	assert.ErrorIs(t, detailed, ErrScheduleConflict)
	assert.NotErrorIs(t, detailed, ErrBookingNotFound)

	wrapped := fmt.Errorf("create booking: %w", detailed)
	assert.ErrorIs(t, wrapped, ErrScheduleConflict)
}

func TestErrorIsRejectsForeignErrors(t *testing.T) {
	assert.False(t, errors.Is(errors.New("schedule conflict"), ErrScheduleConflict))
}
