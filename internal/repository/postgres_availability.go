package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/repository/model"
)

const replaceBatchSize = 1000

type PostgresAvailabilityRepository struct {
	db *gorm.DB
}

func NewPostgresAvailabilityRepository(db *gorm.DB) *PostgresAvailabilityRepository {
	return &PostgresAvailabilityRepository{db: db}
}

func (r *PostgresAvailabilityRepository) ReplaceAll(ctx context.Context, entries []domain.AvailabilityEntry) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	models := make([]model.AvailabilityEntry, 0, len(entries))
	for _, entry := range entries {
		models = append(models, toModelAvailability(entry))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.AvailabilityEntry{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.CreateInBatches(&models, replaceBatchSize).Error
	})
	if err != nil {
		return 0, err
	}
	return len(models), nil
}

func (r *PostgresAvailabilityRepository) ListAvailable(ctx context.Context, weekday, block int, filter RoomFilter) ([]domain.AvailabilityEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&model.AvailabilityEntry{}).
		Where("weekday = ? AND minute_block = ? AND is_available = ?", weekday, block, true)
	if filter.College != "" {
		query = query.Where("college = ?", filter.College)
	}
	if len(filter.Buildings) > 0 {
		query = query.Where("building IN ?", filter.Buildings)
	}

	var rows []model.AvailabilityEntry
	if err := query.Order("college, building, room_name").Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]domain.AvailabilityEntry, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainAvailability(&rows[i]))
	}
	return result, nil
}

func (r *PostgresAvailabilityRepository) NextOccupiedBlock(ctx context.Context, roomID uuid.UUID, weekday, afterBlock int) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	var row model.AvailabilityEntry
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND weekday = ? AND minute_block > ? AND is_available = ?",
			roomID, weekday, afterBlock, false).
		Order("minute_block").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return int(row.MinuteBlock), true, nil
}

func toModelAvailability(entry domain.AvailabilityEntry) model.AvailabilityEntry {
	return model.AvailabilityEntry{
		RoomID:      entry.RoomID,
		Weekday:     int16(entry.Weekday),
		MinuteBlock: int16(entry.MinuteBlock),
		IsAvailable: entry.Available,
		RoomName:    entry.RoomName,
		College:     entry.College,
		Building:    entry.Building,
	}
}

func toDomainAvailability(entry *model.AvailabilityEntry) domain.AvailabilityEntry {
	return domain.AvailabilityEntry{
		RoomID:      entry.RoomID,
		RoomName:    entry.RoomName,
		College:     entry.College,
		Building:    entry.Building,
		Weekday:     int(entry.Weekday),
		MinuteBlock: int(entry.MinuteBlock),
		Available:   entry.IsAvailable,
	}
}
