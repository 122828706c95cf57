package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/opencampus/roomfinder/internal/domain"
)

// Campus opening hours: Monday through Friday, 08:00 to 20:00, indexed in
// 5-minute blocks counted from opening.
const (
	OpeningMinute = 8 * 60
	ClosingMinute = 20 * 60
	BlockInterval = 5
	LastBlock     = ClosingMinute - OpeningMinute - BlockInterval // 715, i.e. 19:55
	SchoolDays    = 5
)

// BlockFor returns the grid block containing the given wall-clock time,
// floored to the block boundary. The caller is responsible for checking
// opening hours first.
func BlockFor(t domain.TimeOfDay) int {
	offset := int(t) - OpeningMinute
	return offset / BlockInterval * BlockInterval
}

// BlockTime converts a grid block back to its wall-clock time.
func BlockTime(block int) domain.TimeOfDay {
	return domain.TimeOfDay(OpeningMinute + block)
}

// WithinHours reports whether the instant falls inside campus opening hours:
// a school weekday with time-of-day in [08:00, 20:00).
func WithinHours(weekday time.Weekday, t domain.TimeOfDay) bool {
	if _, ok := domain.SchoolDayCode(weekday); !ok {
		return false
	}
	return t >= OpeningMinute && t < ClosingMinute
}

// BuildGrid expands recurring slots into the full availability grid: one
// entry per (room, weekday, block), no gaps. For every (weekday, block) the
// occupied-room set is computed in a single pass over that weekday's slots,
// so the work is bounded by 5 days x 144 blocks regardless of room count.
// A room is occupied at a block when any slot's [start, end] interval
// contains the block time, endpoints inclusive. The output is a pure
// function of the input: identical slots produce an identical grid.
func BuildGrid(rooms []*domain.Room, slots []*domain.RecurringSlot) []domain.AvailabilityEntry {
	byWeekday := make(map[int][]*domain.RecurringSlot)
	for _, slot := range slots {
		if weekday, ok := slot.Day.SchoolWeekday(); ok {
			byWeekday[weekday] = append(byWeekday[weekday], slot)
		}
	}

	entries := make([]domain.AvailabilityEntry, 0, len(rooms)*SchoolDays*(LastBlock/BlockInterval+1))
	for weekday := 0; weekday < SchoolDays; weekday++ {
		daySlots := byWeekday[weekday]
		for block := 0; block <= LastBlock; block += BlockInterval {
			at := BlockTime(block)

			occupied := make(map[uuid.UUID]struct{})
			for _, slot := range daySlots {
				if slot.Occupies(at) {
					occupied[slot.RoomID] = struct{}{}
				}
			}

			for _, room := range rooms {
				_, busy := occupied[room.ID]
				entries = append(entries, domain.AvailabilityEntry{
					RoomID:      room.ID,
					RoomName:    room.Name,
					College:     room.College,
					Building:    room.Building,
					Weekday:     weekday,
					MinuteBlock: block,
					Available:   !busy,
				})
			}
		}
	}
	return entries
}
