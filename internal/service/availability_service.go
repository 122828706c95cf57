package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/repository"
	"github.com/opencampus/roomfinder/internal/schedule"
	"github.com/opencampus/roomfinder/lib/logger/sl"
)

type AvailabilityService struct {
	availability repository.AvailabilityRepository
	bookings     repository.BookingRepository
	log          *slog.Logger
}

func NewAvailabilityService(availability repository.AvailabilityRepository, bookings repository.BookingRepository, log *slog.Logger) *AvailabilityService {
	if log == nil {
		log = slog.Default()
	}
	return &AvailabilityService{
		availability: availability,
		bookings:     bookings,
		log:          log,
	}
}

// AvailableRooms answers "which rooms are free at this instant, and until
// when". The instant is always caller-supplied; the service never reads the
// wall clock, so the same question at the same instant gives the same answer.
func (s *AvailabilityService) AvailableRooms(ctx context.Context, at time.Time, filter repository.RoomFilter) (*domain.AvailabilityResult, error) {
	return s.query(ctx, at, filter, true)
}

func (s *AvailabilityService) query(ctx context.Context, at time.Time, filter repository.RoomFilter, overlayBookings bool) (*domain.AvailabilityResult, error) {
	const op = "service.availability.query"
	log := s.log.With(slog.String("op", op), slog.Time("at", at))

	timeOfDay := domain.TimeOfDayFrom(at)
	if !schedule.WithinHours(at.Weekday(), timeOfDay) {
		return &domain.AvailabilityResult{Closed: true}, nil
	}

	dayCode, _ := domain.SchoolDayCode(at.Weekday())
	weekday, _ := dayCode.SchoolWeekday()
	block := schedule.BlockFor(timeOfDay)

	entries, err := s.availability.ListAvailable(ctx, weekday, block, filter)
	if err != nil {
		log.Error("failed to list availability", sl.Err(err))
		return nil, err
	}

	rooms := make([]domain.AvailableRoom, 0, len(entries))
	for _, entry := range entries {
		until := domain.TimeOfDay(0)
		next, occupied, err := s.availability.NextOccupiedBlock(ctx, entry.RoomID, weekday, block)
		if err != nil {
			log.Error("failed to find next occupied block", sl.Err(err))
			return nil, err
		}
		if occupied {
			until = schedule.BlockTime(next)
		} else {
			until = schedule.BlockTime(schedule.LastBlock)
		}

		if overlayBookings {
			keep, adjusted, err := s.applyBookings(ctx, entry, at, timeOfDay, until)
			if err != nil {
				return nil, err
			}
			if !keep {
				continue
			}
			until = adjusted
		}

		rooms = append(rooms, domain.AvailableRoom{
			RoomID:         entry.RoomID,
			Name:           entry.RoomName,
			College:        entry.College,
			Building:       entry.Building,
			AvailableUntil: until,
		})
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].AvailableUntil > rooms[j].AvailableUntil
	})

	return &domain.AvailabilityResult{Rooms: rooms}, nil
}

// applyBookings folds the day's active bookings into a candidate room. A
// booking covering the query instant excludes the room outright; otherwise
// the earliest booking starting before the next class lowers the free-until
// bound to its start.
func (s *AvailabilityService) applyBookings(ctx context.Context, entry domain.AvailabilityEntry, at time.Time, timeOfDay, until domain.TimeOfDay) (bool, domain.TimeOfDay, error) {
	bookings, err := s.bookings.ActiveForRoomDate(ctx, entry.RoomID, at)
	if err != nil {
		return false, 0, err
	}

	for _, booking := range bookings {
		if booking.Contains(timeOfDay) {
			return false, 0, nil
		}
		if booking.Start > timeOfDay && booking.Start < until {
			until = booking.Start
		}
	}
	return true, until, nil
}
