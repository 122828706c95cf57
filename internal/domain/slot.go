package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecurringSlot is a weekly-repeating occupied interval derived from the
// class schedule. Its natural key is (room, day, start, end, valid_from,
// valid_to); imports upsert idempotently on that key. Slots are written only
// by imports, never by queries.
type RecurringSlot struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Day       DayCode
	Start     TimeOfDay
	End       TimeOfDay
	ValidFrom time.Time
	ValidTo   time.Time
}

// Occupies reports whether the slot covers the given wall-clock time.
// Both endpoints are inclusive, matching the grid containment test.
func (s *RecurringSlot) Occupies(t TimeOfDay) bool {
	return s.Start <= t && t <= s.End
}
