package service

import (
	"context"
	"log/slog"

	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/repository"
	"github.com/opencampus/roomfinder/lib/logger/sl"
)

// CatalogService serves read-only room directory lookups.
type CatalogService struct {
	rooms repository.RoomRepository
	log   *slog.Logger
}

func NewCatalogService(rooms repository.RoomRepository, log *slog.Logger) *CatalogService {
	if log == nil {
		log = slog.Default()
	}
	return &CatalogService{rooms: rooms, log: log}
}

func (s *CatalogService) Rooms(ctx context.Context, filter repository.RoomFilter) ([]*domain.Room, error) {
	const op = "service.catalog.rooms"
	log := s.log.With(slog.String("op", op))

	rooms, err := s.rooms.List(ctx, filter)
	if err != nil {
		log.Error("failed to list rooms", sl.Err(err))
		return nil, err
	}
	return rooms, nil
}

func (s *CatalogService) Colleges(ctx context.Context) ([]string, error) {
	const op = "service.catalog.colleges"
	log := s.log.With(slog.String("op", op))

	colleges, err := s.rooms.Colleges(ctx)
	if err != nil {
		log.Error("failed to list colleges", sl.Err(err))
		return nil, err
	}
	return colleges, nil
}

func (s *CatalogService) Buildings(ctx context.Context, college string) ([]string, error) {
	const op = "service.catalog.buildings"
	log := s.log.With(slog.String("op", op), slog.String("college", college))

	buildings, err := s.rooms.Buildings(ctx, college)
	if err != nil {
		log.Error("failed to list buildings", sl.Err(err))
		return nil, err
	}
	return buildings, nil
}
