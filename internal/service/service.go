package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/repository"
)

type ImportInteractor interface {
	ImportRows(ctx context.Context, rows []domain.ScheduleRow) (*domain.ImportReport, error)
	ImportCSV(ctx context.Context, r io.Reader) (*domain.ImportReport, error)
}

type IndexInteractor interface {
	Rebuild(ctx context.Context) (int, error)
}

type AvailabilityInteractor interface {
	AvailableRooms(ctx context.Context, at time.Time, filter repository.RoomFilter) (*domain.AvailabilityResult, error)
}

type BookingInteractor interface {
	Book(ctx context.Context, roomID uuid.UUID, date time.Time, start, end domain.TimeOfDay, requesterID uuid.UUID) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, requesterID uuid.UUID) error
	Overview(ctx context.Context, requesterID uuid.UUID, from, to *time.Time) (*domain.BookingOverview, error)
}

type CatalogInteractor interface {
	Rooms(ctx context.Context, filter repository.RoomFilter) ([]*domain.Room, error)
	Colleges(ctx context.Context) ([]string, error)
	Buildings(ctx context.Context, college string) ([]string, error)
}
