package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"17:30", 1050, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"abc", 0, true},
		{"12", 0, true},
	}
	for _, tt := range tests {
		got, err := MinutesOfDay(tt.value)
		if tt.wantErr {
			assert.Error(t, err, tt.value)
			continue
		}
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.want, got, tt.value)
	}
}

func TestValidTimeRange(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  bool
	}{
		{"08:00", "17:00", true},
		{"17:00", "08:00", false},
		{"09:00", "09:00", false},
		{"09:00", "09:01", true},
		{"", "17:00", true}, // empty defers to required-field checks
		{"08:00", "", true},
		{"", "", true},
		{"nonsense", "17:00", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidTimeRange(tt.start, tt.end), "%s-%s", tt.start, tt.end)
	}
}

func TestSlotOffset(t *testing.T) {
	assert.Equal(t, 0, SlotOffset(8))
	assert.Equal(t, 47, SlotOffset(9))
	assert.Equal(t, 94, SlotOffset(10))
	assert.Equal(t, 517, SlotOffset(19))

	// out-of-window hours clamp to the grid edges
	assert.Equal(t, 0, SlotOffset(6))
	assert.Equal(t, 517, SlotOffset(22))
}

func TestBlockGeometry(t *testing.T) {
	top, height := BlockGeometry(9, 11)
	assert.Equal(t, 47, top)
	assert.Equal(t, 94, height)

	// a zero-length block still renders one row tall
	top, height = BlockGeometry(10, 10)
	assert.Equal(t, 94, top)
	assert.Equal(t, 47, height)

	top, height = BlockGeometry(8, 19)
	assert.Equal(t, 0, top)
	assert.Equal(t, 517, height)
}

func TestSlotOccupied(t *testing.T) {
	loc := time.Local
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	ranges := []TimeRange{
		{
			Start: time.Date(2024, 3, 15, 10, 0, 0, 0, loc),
			End:   time.Date(2024, 3, 15, 11, 0, 0, 0, loc),
		},
	}

	assert.True(t, SlotOccupied(ranges, day, 10))
	assert.False(t, SlotOccupied(ranges, day, 11), "end is exclusive")
	assert.False(t, SlotOccupied(ranges, day, 9))

	otherDay := time.Date(2024, 3, 16, 0, 0, 0, 0, loc)
	assert.False(t, SlotOccupied(ranges, otherDay, 10))

	assert.False(t, SlotOccupied(nil, day, 10))
}
