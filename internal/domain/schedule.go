package domain

import "time"

// MinBookingLead is the minimum time between booking and the first minute
// of a requested slot.
const MinBookingLead = 24 * time.Hour

// TimeRange is a time-of-day window. Only the clock portion of the
// endpoints is meaningful; the date is supplied by the enclosing slot.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether the two ranges intersect. Ranges are half-open,
// so back-to-back slots (one ends exactly when the other starts) do not
// overlap.
func (t TimeRange) Overlaps(other TimeRange) bool {
	return t.Start.Before(other.End) && other.Start.Before(t.End)
}

func (t TimeRange) DurationMinutes() int {
	return int(t.End.Sub(t.Start).Minutes())
}

// ScheduleSlot is a date plus a time-of-day range. Slots exist only during
// conflict detection and session creation; they are flattened into
// BookingSession rows when persisted.
type ScheduleSlot struct {
	Date  time.Time
	Range TimeRange
}

// Start combines the slot date with the range's start clock.
func (s ScheduleSlot) Start() time.Time {
	return time.Date(
		s.Date.Year(), s.Date.Month(), s.Date.Day(),
		s.Range.Start.Hour(), s.Range.Start.Minute(), 0, 0,
		s.Date.Location(),
	)
}

// IsFuture reports whether the slot starts at least MinBookingLead after
// now.
func (s ScheduleSlot) IsFuture(now time.Time) bool {
	return !s.Start().Before(now.Add(MinBookingLead))
}

// SessionTime renders the slot's start clock in the HH:MM wire format used
// by BookingSession.
func (s ScheduleSlot) SessionTime() string {
	return s.Range.Start.Format("15:04")
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// FindScheduleConflicts returns the subset of newSlots that overlap an
// existing slot on the same calendar date. Each conflicting slot is
// reported once.
func FindScheduleConflicts(existing, newSlots []ScheduleSlot) []ScheduleSlot {
	var conflicts []ScheduleSlot
	for _, ns := range newSlots {
		for _, es := range existing {
			if sameDate(ns.Date, es.Date) && ns.Range.Overlaps(es.Range) {
				conflicts = append(conflicts, ns)
				break
			}
		}
	}
	return conflicts
}
