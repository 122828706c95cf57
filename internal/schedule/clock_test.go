package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/roomfinder/internal/domain"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.TimeOfDay
	}{
		{name: "spaced meridiem", input: "09:00 AM", want: domain.MinutesOfDay(9, 0)},
		{name: "glued meridiem", input: "9:00AM", want: domain.MinutesOfDay(9, 0)},
		{name: "noon", input: "12:00 PM", want: domain.MinutesOfDay(12, 0)},
		{name: "midnight", input: "12:00 AM", want: domain.MinutesOfDay(0, 0)},
		{name: "lowercase", input: "1:05 pm", want: domain.MinutesOfDay(13, 5)},
		{name: "surrounding whitespace", input: "  2:30 PM  ", want: domain.MinutesOfDay(14, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClockTimeMalformed(t *testing.T) {
	for _, input := range []string{"", "25:00 AM", "09:00", "half past nine", "TBA"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClockTime(input)
			var formatErr *domain.FormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("08/26/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC), got)

	for _, input := range []string{"", "2026-08-26", "26/08/2026", "13/40/2026"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			var formatErr *domain.FormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}
