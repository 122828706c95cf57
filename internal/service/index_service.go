package service

import (
	"context"
	"log/slog"

	"github.com/opencampus/roomfinder/internal/repository"
	"github.com/opencampus/roomfinder/internal/schedule"
	"github.com/opencampus/roomfinder/lib/logger/sl"
)

type IndexService struct {
	rooms        repository.RoomRepository
	slots        repository.SlotRepository
	availability repository.AvailabilityRepository
	log          *slog.Logger
}

func NewIndexService(rooms repository.RoomRepository, slots repository.SlotRepository, availability repository.AvailabilityRepository, log *slog.Logger) *IndexService {
	if log == nil {
		log = slog.Default()
	}
	return &IndexService{
		rooms:        rooms,
		slots:        slots,
		availability: availability,
		log:          log,
	}
}

// Rebuild recomputes the weekly availability grid from the current slot set
// and swaps it in atomically. Queries running concurrently see either the
// old grid or the new one, never a mix.
func (s *IndexService) Rebuild(ctx context.Context) (int, error) {
	const op = "service.index.rebuild"
	log := s.log.With(slog.String("op", op))

	rooms, err := s.rooms.List(ctx, repository.RoomFilter{})
	if err != nil {
		log.Error("failed to load rooms", sl.Err(err))
		return 0, err
	}

	slots, err := s.slots.ListAll(ctx)
	if err != nil {
		log.Error("failed to load slots", sl.Err(err))
		return 0, err
	}

	entries := schedule.BuildGrid(rooms, slots)

	written, err := s.availability.ReplaceAll(ctx, entries)
	if err != nil {
		log.Error("failed to replace grid", sl.Err(err))
		return 0, err
	}

	log.Info("availability grid rebuilt",
		"rooms", len(rooms),
		"slots", len(slots),
		"entries", written,
	)
	return written, nil
}
