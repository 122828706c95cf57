package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	rooms        *repository.InMemoryRoomRepository
	slots        *repository.InMemorySlotRepository
	dumps        *repository.InMemoryDumpRepository
	availability *repository.InMemoryAvailabilityRepository
	bookings     *repository.InMemoryBookingRepository
	index        *IndexService
}

func newFixture() *fixture {
	rooms := repository.NewInMemoryRoomRepository()
	slots := repository.NewInMemorySlotRepository()
	availability := repository.NewInMemoryAvailabilityRepository()
	return &fixture{
		rooms:        rooms,
		slots:        slots,
		dumps:        repository.NewInMemoryDumpRepository(),
		availability: availability,
		bookings:     repository.NewInMemoryBookingRepository(),
		index:        NewIndexService(rooms, slots, availability, discardLogger()),
	}
}

func (f *fixture) addRoom(t *testing.T, college, building, name string) *domain.Room {
	t.Helper()
	room, err := f.rooms.FindOrCreate(context.Background(), domain.NewRoom(college, building, name))
	require.NoError(t, err)
	return room
}

func (f *fixture) addSlot(t *testing.T, room *domain.Room, day domain.DayCode, start, end domain.TimeOfDay) {
	t.Helper()
	_, err := f.slots.Upsert(context.Background(), &domain.RecurringSlot{
		RoomID:    room.ID,
		Day:       day,
		Start:     start,
		End:       end,
		ValidFrom: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2026, time.December, 18, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func (f *fixture) rebuild(t *testing.T) {
	t.Helper()
	_, err := f.index.Rebuild(context.Background())
	require.NoError(t, err)
}

// monday is a fixed school-day anchor used across the service tests.
func monday(hour, minute int) time.Time {
	return time.Date(2026, time.August, 31, hour, minute, 0, 0, time.UTC)
}
