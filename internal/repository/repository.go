package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/opencampus/roomfinder/internal/domain"
)

// RoomFilter narrows room-scoped queries. Empty fields match everything.
type RoomFilter struct {
	College   string
	Buildings []string
}

type RoomRepository interface {
	FindOrCreate(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	List(ctx context.Context, filter RoomFilter) ([]*domain.Room, error)
	Colleges(ctx context.Context) ([]string, error)
	Buildings(ctx context.Context, college string) ([]string, error)
}

type SlotRepository interface {
	// Upsert stores the slot idempotently on its natural key and reports
	// whether a new row was created.
	Upsert(ctx context.Context, slot *domain.RecurringSlot) (bool, error)
	ListAll(ctx context.Context) ([]*domain.RecurringSlot, error)
}

// DumpRepository archives raw imported rows verbatim for audit.
type DumpRepository interface {
	Archive(ctx context.Context, row domain.ScheduleRow) error
}

type AvailabilityRepository interface {
	// ReplaceAll swaps the entire grid in one atomic transaction and returns
	// the number of entries written. Concurrent readers observe either the
	// old grid or the new one, never a mix.
	ReplaceAll(ctx context.Context, entries []domain.AvailabilityEntry) (int, error)
	ListAvailable(ctx context.Context, weekday, block int, filter RoomFilter) ([]domain.AvailabilityEntry, error)
	// NextOccupiedBlock finds the smallest block after afterBlock where the
	// room flips to unavailable on the given weekday. The second result is
	// false when the room stays free until closing.
	NextOccupiedBlock(ctx context.Context, roomID uuid.UUID, weekday, afterBlock int) (int, bool, error)
}

type BookingRepository interface {
	// CreateIfFree performs the overlap check and the insert as one atomic
	// unit, so two concurrent requests cannot both observe "no conflict".
	CreateIfFree(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ActiveForRoomDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*domain.Booking, error)
	ListForRequester(ctx context.Context, requesterID uuid.UUID, from, to *time.Time) ([]*domain.Booking, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
