package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a short-lived ad hoc reservation of a room on a single calendar
// date. Cancelled bookings are deactivated, never deleted, preserving history.
type Booking struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	Date        time.Time
	Start       TimeOfDay
	End         TimeOfDay
	RequesterID uuid.UUID
	Active      bool
	CreatedAt   time.Time
}

// NewBooking constructs an active booking. Date is truncated to midnight UTC
// so calendar-date comparisons are exact.
func NewBooking(roomID uuid.UUID, date time.Time, start, end TimeOfDay, requesterID uuid.UUID, createdAt time.Time) *Booking {
	return &Booking{
		ID:          uuid.New(),
		RoomID:      roomID,
		Date:        DateOnly(date),
		Start:       start,
		End:         end,
		RequesterID: requesterID,
		Active:      true,
		CreatedAt:   createdAt.UTC(),
	}
}

// Overlaps applies the closed-interval overlap test: touching endpoints
// count as overlap.
func (b *Booking) Overlaps(start, end TimeOfDay) bool {
	return start <= b.End && end >= b.Start
}

// Contains reports whether the booking's interval covers t, endpoints
// inclusive.
func (b *Booking) Contains(t TimeOfDay) bool {
	return b.Start <= t && t <= b.End
}

// Elapsed reports whether the booking's interval has fully passed at the
// given instant.
func (b *Booking) Elapsed(now time.Time) bool {
	today := DateOnly(now)
	if b.Date.Before(today) {
		return true
	}
	return b.Date.Equal(today) && b.End < TimeOfDayFrom(now)
}

// BookingOverview groups a requester's active bookings relative to an
// instant: Current contains it, Upcoming starts after it, Past has fully
// elapsed without being cancelled.
type BookingOverview struct {
	Current  []*Booking
	Upcoming []*Booking
	Past     []*Booking
}

// DateOnly truncates a timestamp to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
