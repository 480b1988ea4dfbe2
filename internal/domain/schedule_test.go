package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(hour, min int) time.Time {
	return time.Date(0, 1, 1, hour, min, 0, 0, time.UTC)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, startHour, endHour int) TimeRange {
	t.Helper()
	r, err := NewTimeRange(clock(startHour, 0), clock(endHour, 0))
	assert.NoError(t, err)
	return r
}

func TestNewTimeRange(t *testing.T) {
	_, err := NewTimeRange(clock(15, 0), clock(14, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = NewTimeRange(clock(15, 0), clock(15, 0))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestTimeRangeOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        TimeRange
		b        TimeRange
		expected bool
	}{
		{
			name:     "partial overlap",
			a:        TimeRange{Start: clock(14, 0), End: clock(15, 0)},
			b:        TimeRange{Start: clock(14, 30), End: clock(15, 30)},
			expected: true,
		},
		{
			name:     "contained range",
			a:        TimeRange{Start: clock(14, 0), End: clock(17, 0)},
			b:        TimeRange{Start: clock(15, 0), End: clock(16, 0)},
			expected: true,
		},
		{
			name:     "back to back does not overlap",
			a:        TimeRange{Start: clock(14, 0), End: clock(15, 0)},
			b:        TimeRange{Start: clock(15, 0), End: clock(16, 0)},
			expected: false,
		},
		{
			name:     "disjoint",
			a:        TimeRange{Start: clock(9, 0), End: clock(10, 0)},
			b:        TimeRange{Start: clock(15, 0), End: clock(16, 0)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestScheduleSlotIsFuture(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	slot := ScheduleSlot{
		Date:  date(2026, 3, 11),
		Range: TimeRange{Start: clock(12, 0), End: clock(13, 0)},
	}

	// exactly 24h ahead is allowed
	assert.True(t, slot.IsFuture(now))

	assert.False(t, slot.IsFuture(now.Add(time.Minute)))

	nextWeek := ScheduleSlot{
		Date:  date(2026, 3, 17),
		Range: TimeRange{Start: clock(9, 0), End: clock(10, 0)},
	}
	assert.True(t, nextWeek.IsFuture(now))
}

func TestFindScheduleConflicts(t *testing.T) {
	existing := []ScheduleSlot{
		{Date: date(2026, 3, 11), Range: TimeRange{Start: clock(14, 0), End: clock(15, 0)}},
		{Date: date(2026, 3, 12), Range: TimeRange{Start: clock(10, 0), End: clock(11, 0)}},
	}

	tests := []struct {
		name     string
		newSlots []ScheduleSlot
		expected int
	}{
		{
			name: "same date and time conflicts",
			newSlots: []ScheduleSlot{
				{Date: date(2026, 3, 11), Range: TimeRange{Start: clock(14, 30), End: clock(15, 30)}},
			},
			expected: 1,
		},
		{
			name: "same time other date does not conflict",
			newSlots: []ScheduleSlot{
				{Date: date(2026, 3, 13), Range: TimeRange{Start: clock(14, 0), End: clock(15, 0)}},
			},
			expected: 0,
		},
		{
			name: "back to back slot is free",
			newSlots: []ScheduleSlot{
				{Date: date(2026, 3, 11), Range: TimeRange{Start: clock(15, 0), End: clock(16, 0)}},
			},
			expected: 0,
		},
		{
			name: "each conflicting slot reported once",
			newSlots: []ScheduleSlot{
				{Date: date(2026, 3, 11), Range: TimeRange{Start: clock(13, 30), End: clock(14, 30)}},
				{Date: date(2026, 3, 12), Range: TimeRange{Start: clock(10, 0), End: clock(11, 0)}},
				{Date: date(2026, 3, 12), Range: TimeRange{Start: clock(12, 0), End: clock(13, 0)}},
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := FindScheduleConflicts(existing, tt.newSlots)
			assert.Len(t, conflicts, tt.expected)
		})
	}
}
