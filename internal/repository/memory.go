package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opencampus/roomfinder/internal/domain"
)

// In-memory repository implementations. They mirror the postgres behaviour,
// including ordering and error mapping, so services can be exercised without
// a live store.

type InMemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]*domain.Room
}

func NewInMemoryRoomRepository() *InMemoryRoomRepository {
	return &InMemoryRoomRepository{rooms: make(map[uuid.UUID]*domain.Room)}
}

func (r *InMemoryRoomRepository) FindOrCreate(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errors.New("room is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rooms {
		if existing.College == room.College && existing.Building == room.Building && existing.Name == room.Name {
			return existing, nil
		}
	}

	stored := *room
	r.rooms[stored.ID] = &stored
	return &stored, nil
}

func (r *InMemoryRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.NewNotFoundError("room not found")
	}
	return room, nil
}

func (r *InMemoryRoomRepository) List(ctx context.Context, filter RoomFilter) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if matchesFilter(room.College, room.Building, filter) {
			result = append(result, room)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].College != result[j].College {
			return result[i].College < result[j].College
		}
		if result[i].Building != result[j].Building {
			return result[i].Building < result[j].Building
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *InMemoryRoomRepository) Colleges(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	colleges := make([]string, 0)
	for _, room := range r.rooms {
		if _, ok := seen[room.College]; ok {
			continue
		}
		seen[room.College] = struct{}{}
		colleges = append(colleges, room.College)
	}
	sort.Strings(colleges)
	return colleges, nil
}

func (r *InMemoryRoomRepository) Buildings(ctx context.Context, college string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	buildings := make([]string, 0)
	for _, room := range r.rooms {
		if college != "" && room.College != college {
			continue
		}
		if _, ok := seen[room.Building]; ok {
			continue
		}
		seen[room.Building] = struct{}{}
		buildings = append(buildings, room.Building)
	}
	sort.Strings(buildings)
	return buildings, nil
}

type InMemorySlotRepository struct {
	mu    sync.RWMutex
	slots []*domain.RecurringSlot
}

func NewInMemorySlotRepository() *InMemorySlotRepository {
	return &InMemorySlotRepository{}
}

func (r *InMemorySlotRepository) Upsert(ctx context.Context, slot *domain.RecurringSlot) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if slot == nil {
		return false, errors.New("slot is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.slots {
		if existing.RoomID == slot.RoomID &&
			existing.Day == slot.Day &&
			existing.Start == slot.Start &&
			existing.End == slot.End &&
			existing.ValidFrom.Equal(domain.DateOnly(slot.ValidFrom)) &&
			existing.ValidTo.Equal(domain.DateOnly(slot.ValidTo)) {
			return false, nil
		}
	}

	stored := *slot
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.ValidFrom = domain.DateOnly(stored.ValidFrom)
	stored.ValidTo = domain.DateOnly(stored.ValidTo)
	r.slots = append(r.slots, &stored)
	return true, nil
}

func (r *InMemorySlotRepository) ListAll(ctx context.Context) ([]*domain.RecurringSlot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RecurringSlot, len(r.slots))
	copy(result, r.slots)
	return result, nil
}

type InMemoryDumpRepository struct {
	mu   sync.Mutex
	rows []domain.ScheduleRow
}

func NewInMemoryDumpRepository() *InMemoryDumpRepository {
	return &InMemoryDumpRepository{}
}

func (r *InMemoryDumpRepository) Archive(ctx context.Context, row domain.ScheduleRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
	return nil
}

// Rows returns archived rows for test assertions.
func (r *InMemoryDumpRepository) Rows() []domain.ScheduleRow {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := make([]domain.ScheduleRow, len(r.rows))
	copy(rows, r.rows)
	return rows
}

type InMemoryAvailabilityRepository struct {
	mu      sync.RWMutex
	entries []domain.AvailabilityEntry
}

func NewInMemoryAvailabilityRepository() *InMemoryAvailabilityRepository {
	return &InMemoryAvailabilityRepository{}
}

func (r *InMemoryAvailabilityRepository) ReplaceAll(ctx context.Context, entries []domain.AvailabilityEntry) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	replacement := make([]domain.AvailabilityEntry, len(entries))
	copy(replacement, entries)

	r.mu.Lock()
	r.entries = replacement
	r.mu.Unlock()
	return len(replacement), nil
}

func (r *InMemoryAvailabilityRepository) ListAvailable(ctx context.Context, weekday, block int, filter RoomFilter) ([]domain.AvailabilityEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.AvailabilityEntry, 0)
	for _, entry := range r.entries {
		if entry.Weekday != weekday || entry.MinuteBlock != block || !entry.Available {
			continue
		}
		if !matchesFilter(entry.College, entry.Building, filter) {
			continue
		}
		result = append(result, entry)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].College != result[j].College {
			return result[i].College < result[j].College
		}
		if result[i].Building != result[j].Building {
			return result[i].Building < result[j].Building
		}
		return result[i].RoomName < result[j].RoomName
	})
	return result, nil
}

func (r *InMemoryAvailabilityRepository) NextOccupiedBlock(ctx context.Context, roomID uuid.UUID, weekday, afterBlock int) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	next := -1
	for _, entry := range r.entries {
		if entry.RoomID != roomID || entry.Weekday != weekday || entry.Available {
			continue
		}
		if entry.MinuteBlock <= afterBlock {
			continue
		}
		if next == -1 || entry.MinuteBlock < next {
			next = entry.MinuteBlock
		}
	}
	if next == -1 {
		return 0, false, nil
	}
	return next, true, nil
}

// Entries returns a copy of the current grid for test assertions.
func (r *InMemoryAvailabilityRepository) Entries() []domain.AvailabilityEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]domain.AvailabilityEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

type InMemoryBookingRepository struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*domain.Booking
}

func NewInMemoryBookingRepository() *InMemoryBookingRepository {
	return &InMemoryBookingRepository{bookings: make(map[uuid.UUID]*domain.Booking)}
}

func (r *InMemoryBookingRepository) CreateIfFree(ctx context.Context, booking *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if booking == nil {
		return errors.New("booking is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	date := domain.DateOnly(booking.Date)
	for _, existing := range r.bookings {
		if existing.RoomID != booking.RoomID || !existing.Date.Equal(date) {
			continue
		}
		if existing.Active && existing.Overlaps(booking.Start, booking.End) {
			return domain.NewConflictError("room is already booked for the selected time")
		}
		if existing.Date.Equal(date) && existing.Start == booking.Start && existing.RoomID == booking.RoomID {
			return domain.NewConflictError("room is already booked for the selected time")
		}
	}

	stored := *booking
	stored.Date = date
	r.bookings[stored.ID] = &stored
	return nil
}

func (r *InMemoryBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("booking not found")
	}
	copied := *booking
	return &copied, nil
}

func (r *InMemoryBookingRepository) ActiveForRoomDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	day := domain.DateOnly(date)
	result := make([]*domain.Booking, 0)
	for _, booking := range r.bookings {
		if booking.RoomID != roomID || !booking.Date.Equal(day) || !booking.Active {
			continue
		}
		copied := *booking
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start < result[j].Start })
	return result, nil
}

func (r *InMemoryBookingRepository) ListForRequester(ctx context.Context, requesterID uuid.UUID, from, to *time.Time) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, booking := range r.bookings {
		if booking.RequesterID != requesterID || !booking.Active {
			continue
		}
		if from != nil && booking.Date.Before(domain.DateOnly(*from)) {
			continue
		}
		if to != nil && booking.Date.After(domain.DateOnly(*to)) {
			continue
		}
		copied := *booking
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Start < result[j].Start
	})
	return result, nil
}

func (r *InMemoryBookingRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return domain.NewNotFoundError("booking not found")
	}
	booking.Active = false
	return nil
}

func matchesFilter(college, building string, filter RoomFilter) bool {
	if filter.College != "" && college != filter.College {
		return false
	}
	if len(filter.Buildings) > 0 {
		found := false
		for _, b := range filter.Buildings {
			if b == building {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
