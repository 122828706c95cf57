package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/repository/model"
)

type PostgresBookingRepository struct {
	db *gorm.DB
}

func NewPostgresBookingRepository(db *gorm.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{db: db}
}

func (r *PostgresBookingRepository) CreateIfFree(ctx context.Context, booking *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if booking == nil {
		return errors.New("booking is nil")
	}

	bookingModel := toModelBooking(booking)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Closed-interval overlap test: touching endpoints conflict.
		var count int64
		err := tx.Model(&model.Booking{}).
			Where("room_id = ? AND booking_date = ? AND active = ?",
				bookingModel.RoomID, bookingModel.BookingDate, true).
			Where("start_time <= ? AND end_time >= ?", bookingModel.EndTime, bookingModel.StartTime).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.NewConflictError("room is already booked for the selected time")
		}
		return tx.Create(bookingModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Unique (room, date, start) backstop caught a concurrent insert.
			return domain.NewConflictError("room is already booked for the selected time")
		}
		return err
	}
	return nil
}

func (r *PostgresBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var booking model.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking not found")
		}
		return nil, err
	}
	return toDomainBooking(&booking), nil
}

func (r *PostgresBookingRepository) ActiveForRoomDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND booking_date = ? AND active = ?", roomID, domain.DateOnly(date), true).
		Order("start_time").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, toDomainBooking(&bookings[i]))
	}
	return result, nil
}

func (r *PostgresBookingRepository) ListForRequester(ctx context.Context, requesterID uuid.UUID, from, to *time.Time) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("requester_id = ? AND active = ?", requesterID, true)
	if from != nil {
		query = query.Where("booking_date >= ?", domain.DateOnly(*from))
	}
	if to != nil {
		query = query.Where("booking_date <= ?", domain.DateOnly(*to))
	}

	var bookings []model.Booking
	if err := query.Order("booking_date, start_time").Find(&bookings).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, toDomainBooking(&bookings[i]))
	}
	return result, nil
}

func (r *PostgresBookingRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("booking not found")
	}
	return nil
}

func toModelBooking(booking *domain.Booking) *model.Booking {
	return &model.Booking{
		ID:          booking.ID,
		RoomID:      booking.RoomID,
		BookingDate: domain.DateOnly(booking.Date),
		StartTime:   int16(booking.Start),
		EndTime:     int16(booking.End),
		RequesterID: booking.RequesterID,
		Active:      booking.Active,
		CreatedAt:   booking.CreatedAt.UTC(),
	}
}

func toDomainBooking(booking *model.Booking) *domain.Booking {
	return &domain.Booking{
		ID:          booking.ID,
		RoomID:      booking.RoomID,
		Date:        booking.BookingDate,
		Start:       domain.TimeOfDay(booking.StartTime),
		End:         domain.TimeOfDay(booking.EndTime),
		RequesterID: booking.RequesterID,
		Active:      booking.Active,
		CreatedAt:   booking.CreatedAt,
	}
}
