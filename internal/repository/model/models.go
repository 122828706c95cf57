package model

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	College  string    `gorm:"size:100;not null;uniqueIndex:idx_rooms_identity"`
	Building string    `gorm:"size:100;not null;uniqueIndex:idx_rooms_identity"`
	Name     string    `gorm:"size:20;not null;uniqueIndex:idx_rooms_identity"`
}

type RecurringSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_slots_natural"`
	Day       string    `gorm:"size:2;not null;uniqueIndex:idx_slots_natural;index:idx_slots_day_time"`
	StartTime int16     `gorm:"not null;uniqueIndex:idx_slots_natural;index:idx_slots_day_time"`
	EndTime   int16     `gorm:"not null;uniqueIndex:idx_slots_natural;index:idx_slots_day_time"`
	ValidFrom time.Time `gorm:"not null;uniqueIndex:idx_slots_natural"`
	ValidTo   time.Time `gorm:"not null;uniqueIndex:idx_slots_natural"`
}

// AvailabilityEntry is fully derived state: dropped and rebuilt wholesale on
// every import, never patched in place. College, building, and room name are
// denormalized so the hot lookup needs no joins.
type AvailabilityEntry struct {
	RoomID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Weekday     int16     `gorm:"primaryKey;index:idx_avail_lookup"`
	MinuteBlock int16     `gorm:"primaryKey;index:idx_avail_lookup"`
	IsAvailable bool      `gorm:"not null;index:idx_avail_lookup"`
	RoomName    string    `gorm:"size:20;not null"`
	College     string    `gorm:"size:100;not null;index"`
	Building    string    `gorm:"size:100;not null;index"`
}

type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID      uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_room_date;uniqueIndex:idx_bookings_slot"`
	BookingDate time.Time `gorm:"not null;index:idx_bookings_room_date;uniqueIndex:idx_bookings_slot"`
	StartTime   int16     `gorm:"not null;uniqueIndex:idx_bookings_slot"`
	EndTime     int16     `gorm:"not null"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// ScheduleDump keeps every imported row verbatim for audit and reprocessing.
type ScheduleDump struct {
	ID          uint   `gorm:"primaryKey"`
	CollegeName string `gorm:"size:100;not null"`
	Term        string `gorm:"size:20"`
	Subject     string `gorm:"size:20"`
	CourseCode  string `gorm:"size:20"`
	CourseName  string `gorm:"size:100"`
	Building    string `gorm:"size:100;not null"`
	Room        string `gorm:"size:20;not null"`
	StartDate   string `gorm:"size:10"`
	EndDate     string `gorm:"size:10"`
	Days        string `gorm:"size:20"`
	StartTime   string `gorm:"size:10"`
	EndTime     string `gorm:"size:10"`
	ImportedAt  time.Time
}
