package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "09:00", valid: true},
		{input: "00:00", valid: true},
		{input: "23:59", valid: true},
		{input: "24:00", valid: false},
		{input: "9:00", valid: false},
		{input: "09:60", valid: false},
		{input: "0900", valid: false},
		{input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.input, ts.String())
			} else {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			}
		})
	}
}

func TestHourMinute(t *testing.T) {
	ts, err := NewTimeStringFromString("15:30")
	require.NoError(t, err)

	hour, err := ts.Hour()
	require.NoError(t, err)
	assert.Equal(t, 15, hour)

	minute, err := ts.Minute()
	require.NoError(t, err)
	assert.Equal(t, 30, minute)
}

func TestComparisons(t *testing.T) {
	morning := TimeString("09:00")
	afternoon := TimeString("15:00")

	assert.True(t, morning.IsBefore(afternoon))
	assert.False(t, afternoon.IsBefore(morning))
	assert.True(t, afternoon.IsAfter(morning))
	assert.False(t, morning.IsAfter(morning))
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	shifted, err := ts.AddMinutes(180)
	require.NoError(t, err)
	assert.Equal(t, "12:00", shifted.String())

	// Переход через полночь запрещен
	_, err = TimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
