package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencampus/roomfinder/internal/domain"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  domain.TimeOfDay
	}{
		{"08:00", domain.MinutesOfDay(8, 0)},
		{"19:55", domain.MinutesOfDay(19, 55)},
		{"00:00", domain.MinutesOfDay(0, 0)},
		{" 9:05 ", domain.MinutesOfDay(9, 5)},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, input := range []string{"", "9", "24:00", "09:60", "nine"} {
		_, err := parseClock(input)
		assert.Error(t, err, input)
	}
}
