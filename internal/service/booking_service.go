package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/repository"
	"github.com/opencampus/roomfinder/internal/schedule"
	"github.com/opencampus/roomfinder/lib/logger/sl"
)

const (
	// A booking has to start within this many minutes of the request.
	maxStartLead = 10
	// Longest single booking.
	maxDuration = 60
)

type BookingService struct {
	bookings     repository.BookingRepository
	rooms        repository.RoomRepository
	availability repository.AvailabilityRepository
	log          *slog.Logger
	now          func() time.Time
}

func NewBookingService(bookings repository.BookingRepository, rooms repository.RoomRepository, availability repository.AvailabilityRepository, log *slog.Logger) *BookingService {
	if log == nil {
		log = slog.Default()
	}
	return &BookingService{
		bookings:     bookings,
		rooms:        rooms,
		availability: availability,
		log:          log,
		now:          time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// Book validates and stores an ad hoc reservation. Validation rules run in a
// fixed order and the first failure wins; the overlap check against existing
// bookings happens transactionally in the store.
func (s *BookingService) Book(ctx context.Context, roomID uuid.UUID, date time.Time, start, end domain.TimeOfDay, requesterID uuid.UUID) (*domain.Booking, error) {
	const op = "service.booking.book"
	log := s.log.With(
		slog.String("op", op),
		slog.String("room_id", roomID.String()),
		slog.String("requester_id", requesterID.String()),
	)

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.validate(ctx, room.ID, date, start, end, now); err != nil {
		log.Info("booking rejected", sl.Err(err))
		return nil, err
	}

	booking := domain.NewBooking(room.ID, date, start, end, requesterID, now)
	if err := s.bookings.CreateIfFree(ctx, booking); err != nil {
		var conflictErr *domain.ConflictError
		if errors.As(err, &conflictErr) {
			log.Info("booking conflict", "date", booking.Date, "start", booking.Start.String())
			return nil, err
		}
		log.Error("failed to store booking", sl.Err(err))
		return nil, err
	}

	log.Info("booking created",
		"booking_id", booking.ID.String(),
		"date", booking.Date,
		"start", booking.Start.String(),
		"end", booking.End.String(),
	)
	return booking, nil
}

func (s *BookingService) validate(ctx context.Context, roomID uuid.UUID, date time.Time, start, end domain.TimeOfDay, now time.Time) error {
	today := domain.DateOnly(now)
	if !domain.DateOnly(date).Equal(today) {
		return domain.NewValidationError("date", "bookings can only be made for today")
	}

	nowTime := domain.TimeOfDayFrom(now)
	if start < nowTime {
		return domain.NewValidationError("start_in_past", "start time %s has already passed", start)
	}
	if start > nowTime+maxStartLead {
		return domain.NewValidationError("start_window", "start time %s is more than %d minutes away", start, maxStartLead)
	}
	if end-start > maxDuration {
		return domain.NewValidationError("duration", "booking longer than %d minutes", maxDuration)
	}
	if end <= start {
		return domain.NewValidationError("interval", "end time %s is not after start time %s", end, start)
	}

	dayCode, schoolDay := domain.SchoolDayCode(date.Weekday())
	if !schoolDay {
		return nil
	}
	weekday, _ := dayCode.SchoolWeekday()

	next, occupied, err := s.availability.NextOccupiedBlock(ctx, roomID, weekday, schedule.BlockFor(start))
	if err != nil {
		return err
	}
	if occupied && end > schedule.BlockTime(next) {
		return domain.NewValidationError("class_conflict",
			"booking runs past the next class starting at %s", schedule.BlockTime(next))
	}
	return nil
}

// Cancel deactivates the requester's own booking. A foreign or unknown
// booking looks identical to the caller, a fully elapsed one is rejected,
// and cancelling twice is a no-op success.
func (s *BookingService) Cancel(ctx context.Context, bookingID, requesterID uuid.UUID) error {
	const op = "service.booking.cancel"
	log := s.log.With(
		slog.String("op", op),
		slog.String("booking_id", bookingID.String()),
	)

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.RequesterID != requesterID {
		return domain.NewNotFoundError("booking not found")
	}
	if booking.Elapsed(s.now()) {
		return domain.NewValidationError("elapsed", "booking has already ended")
	}
	if !booking.Active {
		return nil
	}

	if err := s.bookings.Deactivate(ctx, bookingID); err != nil {
		log.Error("failed to deactivate booking", sl.Err(err))
		return err
	}
	log.Info("booking cancelled")
	return nil
}

// Overview lists the requester's active bookings in the optional date range,
// grouped by where they fall relative to the current instant.
func (s *BookingService) Overview(ctx context.Context, requesterID uuid.UUID, from, to *time.Time) (*domain.BookingOverview, error) {
	bookings, err := s.bookings.ListForRequester(ctx, requesterID, from, to)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.DateOnly(now)
	nowTime := domain.TimeOfDayFrom(now)

	overview := &domain.BookingOverview{
		Current:  make([]*domain.Booking, 0),
		Upcoming: make([]*domain.Booking, 0),
		Past:     make([]*domain.Booking, 0),
	}
	for _, booking := range bookings {
		switch {
		case booking.Elapsed(now):
			overview.Past = append(overview.Past, booking)
		case booking.Date.Equal(today) && booking.Contains(nowTime):
			overview.Current = append(overview.Current, booking)
		default:
			overview.Upcoming = append(overview.Upcoming, booking)
		}
	}
	return overview, nil
}
