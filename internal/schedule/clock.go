package schedule

import (
	"regexp"
	"strings"
	"time"

	"github.com/opencampus/roomfinder/internal/domain"
)

var meridiemGlued = regexp.MustCompile(`(?i)(\d)(AM|PM)`)

// ParseClockTime parses a free-form 12-hour clock string such as "09:00 AM"
// or "9:00AM". A missing space between the digits and the meridiem is
// inserted before parsing; any other malformation fails with a FormatError.
func ParseClockTime(value string) (domain.TimeOfDay, error) {
	trimmed := strings.TrimSpace(value)
	normalized := strings.ToUpper(meridiemGlued.ReplaceAllString(trimmed, "$1 $2"))

	parsed, err := time.Parse("3:04 PM", normalized)
	if err != nil {
		return 0, domain.NewFormatError("invalid time format: %q, expected HH:MM AM/PM", value)
	}
	return domain.MinutesOfDay(parsed.Hour(), parsed.Minute()), nil
}

// ParseDate parses a strict MM/DD/YYYY date string and fails with a
// FormatError on any mismatch.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("01/02/2006", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, domain.NewFormatError("invalid date format: %q, expected MM/DD/YYYY", value)
	}
	return parsed, nil
}
