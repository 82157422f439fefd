package duration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhour/lexhour/internal/duration"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		text    string
		hours   int
		minutes int
		total   int
	}{
		{"00:00", 0, 0, 0},
		{"01:30", 1, 30, 90},
		{"0:05", 0, 5, 5},
		{"12:59", 12, 59, 779},
		{"100:00", 100, 0, 6000},
	}
	for _, tt := range tests {
		d, err := duration.Parse(tt.text)
		require.NoError(t, err, "Parse(%q)", tt.text)
		assert.Equal(t, tt.hours, d.Hours, "Parse(%q) hours", tt.text)
		assert.Equal(t, tt.minutes, d.Minutes, "Parse(%q) minutes", tt.text)
		assert.Equal(t, tt.total, d.TotalMinutes(), "Parse(%q) total", tt.text)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, text := range []string{"abc", "1:70", "1", "-1:00", "1:2:3", "1:-5", "one:30", ""} {
		_, err := duration.Parse(text)
		require.Error(t, err, "Parse(%q)", text)
		assert.ErrorIs(t, err, duration.ErrFormat, "Parse(%q)", text)
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"01:30", "01:30"},
		{"1:30", "01:30"},
		{"0:05", "00:05"},
		{"123:07", "123:07"},
	}
	for _, tt := range tests {
		d, err := duration.Parse(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.String(), "Parse(%q).String()", tt.text)
	}
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, "00:00", duration.FromMinutes(0).String())
	assert.Equal(t, "01:00", duration.FromMinutes(60).String())
	assert.Equal(t, "02:15", duration.FromMinutes(135).String())
	assert.Equal(t, "00:00", duration.FromMinutes(-10).String())
}

func TestSumMinutes(t *testing.T) {
	assert.Equal(t, 0, duration.SumMinutes(nil))

	a, err := duration.Parse("01:30")
	require.NoError(t, err)
	b, err := duration.Parse("00:45")
	require.NoError(t, err)
	assert.Equal(t, 135, duration.SumMinutes([]duration.Duration{a, b}))
}

func TestHours(t *testing.T) {
	assert.InDelta(t, 0.0, duration.Hours(0), 1e-9)
	assert.InDelta(t, 1.5, duration.Hours(90), 1e-9)
	assert.InDelta(t, 0.5, duration.Hours(30), 1e-9)
}
