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

type PostgresRoomRepository struct {
	db *gorm.DB
}

func NewPostgresRoomRepository(db *gorm.DB) *PostgresRoomRepository {
	return &PostgresRoomRepository{db: db}
}

func (r *PostgresRoomRepository) FindOrCreate(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errors.New("room is nil")
	}

	var found model.Room
	err := r.db.WithContext(ctx).
		Where("college = ? AND building = ? AND name = ?", room.College, room.Building, room.Name).
		First(&found).Error
	if err == nil {
		return toDomainRoom(&found), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	roomModel := toModelRoom(room)
	if err := r.db.WithContext(ctx).Create(roomModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race against a concurrent import of the same room.
			err = r.db.WithContext(ctx).
				Where("college = ? AND building = ? AND name = ?", room.College, room.Building, room.Name).
				First(&found).Error
			if err != nil {
				return nil, err
			}
			return toDomainRoom(&found), nil
		}
		return nil, err
	}
	return toDomainRoom(roomModel), nil
}

func (r *PostgresRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var room model.Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("room not found")
		}
		return nil, err
	}

	return toDomainRoom(&room), nil
}

func (r *PostgresRoomRepository) List(ctx context.Context, filter RoomFilter) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&model.Room{})
	if filter.College != "" {
		query = query.Where("college = ?", filter.College)
	}
	if len(filter.Buildings) > 0 {
		query = query.Where("building IN ?", filter.Buildings)
	}

	var rooms []model.Room
	if err := query.Order("college, building, name").Find(&rooms).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, toDomainRoom(&rooms[i]))
	}
	return result, nil
}

func (r *PostgresRoomRepository) Colleges(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var colleges []string
	err := r.db.WithContext(ctx).Model(&model.Room{}).
		Distinct("college").Order("college").Pluck("college", &colleges).Error
	if err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *PostgresRoomRepository) Buildings(ctx context.Context, college string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&model.Room{})
	if college != "" {
		query = query.Where("college = ?", college)
	}

	var buildings []string
	if err := query.Distinct("building").Order("building").Pluck("building", &buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

type PostgresSlotRepository struct {
	db *gorm.DB
}

func NewPostgresSlotRepository(db *gorm.DB) *PostgresSlotRepository {
	return &PostgresSlotRepository{db: db}
}

func (r *PostgresSlotRepository) Upsert(ctx context.Context, slot *domain.RecurringSlot) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if slot == nil {
		return false, errors.New("slot is nil")
	}

	slotModel := toModelSlot(slot)

	var existing model.RecurringSlot
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND day = ? AND start_time = ? AND end_time = ? AND valid_from = ? AND valid_to = ?",
			slotModel.RoomID, slotModel.Day, slotModel.StartTime, slotModel.EndTime,
			slotModel.ValidFrom, slotModel.ValidTo).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := r.db.WithContext(ctx).Create(slotModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent import already wrote the same natural key.
			return false, domain.NewIntegrityError("slot already exists for room %s on %s at %s", slot.RoomID, slot.Day, slot.Start)
		}
		return false, err
	}
	return true, nil
}

func (r *PostgresSlotRepository) ListAll(ctx context.Context) ([]*domain.RecurringSlot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var slots []model.RecurringSlot
	if err := r.db.WithContext(ctx).Find(&slots).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.RecurringSlot, 0, len(slots))
	for i := range slots {
		result = append(result, toDomainSlot(&slots[i]))
	}
	return result, nil
}

type PostgresDumpRepository struct {
	db *gorm.DB
}

func NewPostgresDumpRepository(db *gorm.DB) *PostgresDumpRepository {
	return &PostgresDumpRepository{db: db}
}

func (r *PostgresDumpRepository) Archive(ctx context.Context, row domain.ScheduleRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dump := model.ScheduleDump{
		CollegeName: row.CollegeName,
		Term:        row.Term,
		Subject:     row.Subject,
		CourseCode:  row.CourseCode,
		CourseName:  row.CourseName,
		Building:    row.Building,
		Room:        row.Room,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
		Days:        row.Days,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		ImportedAt:  time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dump).Error
}

func toModelRoom(room *domain.Room) *model.Room {
	return &model.Room{
		ID:       room.ID,
		College:  room.College,
		Building: room.Building,
		Name:     room.Name,
	}
}

func toDomainRoom(room *model.Room) *domain.Room {
	return &domain.Room{
		ID:       room.ID,
		College:  room.College,
		Building: room.Building,
		Name:     room.Name,
	}
}

func toModelSlot(slot *domain.RecurringSlot) *model.RecurringSlot {
	id := slot.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &model.RecurringSlot{
		ID:        id,
		RoomID:    slot.RoomID,
		Day:       string(slot.Day),
		StartTime: int16(slot.Start),
		EndTime:   int16(slot.End),
		ValidFrom: domain.DateOnly(slot.ValidFrom),
		ValidTo:   domain.DateOnly(slot.ValidTo),
	}
}

func toDomainSlot(slot *model.RecurringSlot) *domain.RecurringSlot {
	return &domain.RecurringSlot{
		ID:        slot.ID,
		RoomID:    slot.RoomID,
		Day:       domain.DayCode(slot.Day),
		Start:     domain.TimeOfDay(slot.StartTime),
		End:       domain.TimeOfDay(slot.EndTime),
		ValidFrom: slot.ValidFrom,
		ValidTo:   slot.ValidTo,
	}
}
