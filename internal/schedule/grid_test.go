package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/roomfinder/internal/domain"
)

func TestBuildGridCoverage(t *testing.T) {
	rooms := []*domain.Room{
		domain.NewRoom("Engineering", "Main Hall", "101"),
		domain.NewRoom("Engineering", "Main Hall", "102"),
	}

	entries := BuildGrid(rooms, nil)

	blocksPerDay := LastBlock/BlockInterval + 1
	assert.Len(t, entries, len(rooms)*SchoolDays*blocksPerDay)
	for _, entry := range entries {
		assert.True(t, entry.Available)
	}
}

func TestBuildGridInclusiveEndpoints(t *testing.T) {
	room := domain.NewRoom("Engineering", "Main Hall", "101")
	slot := &domain.RecurringSlot{
		ID:     uuid.New(),
		RoomID: room.ID,
		Day:    domain.DayMonday,
		Start:  domain.MinutesOfDay(9, 0),
		End:    domain.MinutesOfDay(9, 50),
	}

	entries := BuildGrid([]*domain.Room{room}, []*domain.RecurringSlot{slot})

	byBlock := make(map[int]bool)
	for _, entry := range entries {
		if entry.Weekday == 0 {
			byBlock[entry.MinuteBlock] = entry.Available
		}
	}

	require.NotEmpty(t, byBlock)
	// 09:00 is block 60, 09:50 is block 110; both endpoints are occupied.
	assert.True(t, byBlock[55], "08:55 should be free")
	assert.False(t, byBlock[60], "09:00 should be occupied")
	assert.False(t, byBlock[85], "09:25 should be occupied")
	assert.False(t, byBlock[110], "09:50 should be occupied")
	assert.True(t, byBlock[115], "09:55 should be free")

	// Other weekdays stay untouched.
	for _, entry := range entries {
		if entry.Weekday != 0 {
			assert.True(t, entry.Available)
		}
	}
}

func TestBuildGridDeterministic(t *testing.T) {
	room := domain.NewRoom("Engineering", "Main Hall", "101")
	slots := []*domain.RecurringSlot{
		{
			ID:        uuid.New(),
			RoomID:    room.ID,
			Day:       domain.DayWednesday,
			Start:     domain.MinutesOfDay(14, 0),
			End:       domain.MinutesOfDay(15, 15),
			ValidFrom: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
			ValidTo:   time.Date(2026, time.December, 18, 0, 0, 0, 0, time.UTC),
		},
	}

	first := BuildGrid([]*domain.Room{room}, slots)
	second := BuildGrid([]*domain.Room{room}, slots)

	assert.Equal(t, first, second)
}

func TestBuildGridIgnoresWeekendSlots(t *testing.T) {
	room := domain.NewRoom("Engineering", "Main Hall", "101")
	slot := &domain.RecurringSlot{
		ID:     uuid.New(),
		RoomID: room.ID,
		Day:    domain.DaySaturday,
		Start:  domain.MinutesOfDay(9, 0),
		End:    domain.MinutesOfDay(10, 0),
	}

	entries := BuildGrid([]*domain.Room{room}, []*domain.RecurringSlot{slot})
	for _, entry := range entries {
		assert.True(t, entry.Available)
	}
}

func TestWithinHours(t *testing.T) {
	tests := []struct {
		name    string
		weekday time.Weekday
		at      domain.TimeOfDay
		want    bool
	}{
		{"monday mid-morning", time.Monday, domain.MinutesOfDay(9, 30), true},
		{"friday opening minute", time.Friday, domain.MinutesOfDay(8, 0), true},
		{"last open minute", time.Tuesday, domain.MinutesOfDay(19, 59), true},
		{"closing minute", time.Tuesday, domain.MinutesOfDay(20, 0), false},
		{"before opening", time.Monday, domain.MinutesOfDay(7, 59), false},
		{"saturday", time.Saturday, domain.MinutesOfDay(10, 0), false},
		{"sunday", time.Sunday, domain.MinutesOfDay(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinHours(tt.weekday, tt.at))
		})
	}
}

func TestBlockFor(t *testing.T) {
	assert.Equal(t, 0, BlockFor(domain.MinutesOfDay(8, 0)))
	assert.Equal(t, 0, BlockFor(domain.MinutesOfDay(8, 4)))
	assert.Equal(t, 5, BlockFor(domain.MinutesOfDay(8, 5)))
	assert.Equal(t, 90, BlockFor(domain.MinutesOfDay(9, 30)))
	assert.Equal(t, LastBlock, BlockFor(domain.MinutesOfDay(19, 59)))
}
