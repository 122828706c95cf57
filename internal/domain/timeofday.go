package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

func MinutesOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// TimeOfDayFrom truncates a timestamp to its minute-of-day component.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return MinutesOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// DayCode is the canonical two-letter weekday abbreviation.
type DayCode string

const (
	DayMonday    DayCode = "Mo"
	DayTuesday   DayCode = "Tu"
	DayWednesday DayCode = "We"
	DayThursday  DayCode = "Th"
	DayFriday    DayCode = "Fr"
	DaySaturday  DayCode = "Sa"
	DaySunday    DayCode = "Su"
)

// DayOrder lists codes in canonical order Mo<Tu<We<Th<Fr<Sa<Su.
var DayOrder = []DayCode{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// OrderIndex returns the code's position in DayOrder, or -1 for an unknown code.
func (d DayCode) OrderIndex() int {
	for i, code := range DayOrder {
		if code == d {
			return i
		}
	}
	return -1
}

// SchoolWeekday maps Mo..Fr to the index 0..4 used by the availability grid.
// The second result is false for weekend codes.
func (d DayCode) SchoolWeekday() (int, bool) {
	idx := d.OrderIndex()
	if idx < 0 || idx > 4 {
		return 0, false
	}
	return idx, true
}

// SchoolDayCode converts a time.Weekday into a grid day code. The second
// result is false on weekends.
func SchoolDayCode(wd time.Weekday) (DayCode, bool) {
	switch wd {
	case time.Monday:
		return DayMonday, true
	case time.Tuesday:
		return DayTuesday, true
	case time.Wednesday:
		return DayWednesday, true
	case time.Thursday:
		return DayThursday, true
	case time.Friday:
		return DayFriday, true
	default:
		return "", false
	}
}
