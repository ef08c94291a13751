package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(DateFormat, value)
	require.NoError(t, err)
	return date
}

func bookedAt(t *testing.T, day string, startHour, endHour int) *Reservation {
	t.Helper()
	date := mustDate(t, day)
	return &Reservation{
		BookingUID: "res-" + day,
		YachtID:    1,
		StartAt:    date.Add(time.Duration(startHour) * time.Hour),
		EndAt:      date.Add(time.Duration(endHour) * time.Hour),
		Status:     StatusBooked,
	}
}

func TestComputeDay_EmptyDayYieldsMaximalSets(t *testing.T) {
	p := DefaultPolicy()
	date := mustDate(t, "2026-09-10")

	day := ComputeDay(p, date, time.UTC, nil)

	assert.Equal(t, []int{6, 7, 8, 9, 10, 15}, day.ValidStartsByDuration[3])
	assert.Equal(t, []int{6, 7, 8, 9}, day.ValidStartsByDuration[4])
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11, 12, 13}, day.ValidStartsByDuration[5])
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11, 12}, day.ValidStartsByDuration[6])
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11}, day.ValidStartsByDuration[7])
	assert.Equal(t, []int{6, 7, 8, 9, 10}, day.ValidStartsByDuration[8])

	// A 5-hour trip starting at 13:00 runs to 18:00, so the whole
	// operating window is reachable.
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}, day.OpenHours)
	assert.True(t, day.HasAnyStart())
}

func TestComputeDay_BufferExpandedBlocking(t *testing.T) {
	p := DefaultPolicy()
	date := mustDate(t, "2026-09-10")

	// Booking 09:00-13:00 with a 2h buffer blocks [07:00, 15:00).
	reservations := []*Reservation{bookedAt(t, "2026-09-10", 9, 13)}

	day := ComputeDay(p, date, time.UTC, reservations)

	// A new 3-hour trip at 15:00 stays legal; 06:00 would end inside
	// the blocked interval.
	assert.Equal(t, []int{15}, day.ValidStartsByDuration[3])

	// Everything longer cannot fit around the block.
	for d := 4; d <= 8; d++ {
		assert.Empty(t, day.ValidStartsByDuration[d], "duration %d", d)
	}

	assert.Equal(t, []int{15, 16, 17}, day.OpenHours)
}

func TestComputeDay_FullyConsumedDay(t *testing.T) {
	p := DefaultPolicy()
	date := mustDate(t, "2026-09-10")

	// Legacy import materialized a full-day charter as 06:00-18:00;
	// with the buffer it consumes the whole operating window.
	legacy := bookedAt(t, "2026-09-10", 6, 18)
	legacy.Source = SourceLegacy

	day := ComputeDay(p, date, time.UTC, []*Reservation{legacy})

	for d := p.MinDurationHours; d <= p.MaxDurationHours; d++ {
		assert.Empty(t, day.ValidStartsByDuration[d], "duration %d", d)
	}
	assert.Empty(t, day.OpenHours)
	assert.False(t, day.HasAnyStart())
}

func TestComputeDay_LegacyHalfDayBlocksFullInterval(t *testing.T) {
	p := DefaultPolicy()
	date := mustDate(t, "2026-09-10")

	// Legacy AM booking occupies 06:00-13:00, not just a half-day
	// label; buffered it blocks [04:00, 15:00).
	legacyAM := bookedAt(t, "2026-09-10", 6, 13)
	legacyAM.Source = SourceLegacy

	day := ComputeDay(p, date, time.UTC, []*Reservation{legacyAM})

	assert.Equal(t, []int{15}, day.ValidStartsByDuration[3])
	for d := 4; d <= 8; d++ {
		assert.Empty(t, day.ValidStartsByDuration[d], "duration %d", d)
	}
}

func TestComputeDay_CancelledReservationsIgnored(t *testing.T) {
	p := DefaultPolicy()
	date := mustDate(t, "2026-09-10")

	cancelled := bookedAt(t, "2026-09-10", 9, 13)
	cancelled.Status = StatusCancelled

	day := ComputeDay(p, date, time.UTC, []*Reservation{cancelled})

	assert.Equal(t, []int{6, 7, 8, 9, 10, 15}, day.ValidStartsByDuration[3])
}

func TestComputeDay_AdjacentDateDoesNotBlock(t *testing.T) {
	p := DefaultPolicy()
	date := mustDate(t, "2026-09-10")

	// With a 2h buffer and an 06:00-18:00 operating window, bookings
	// on neighbouring dates cannot spill into this one.
	reservations := []*Reservation{
		bookedAt(t, "2026-09-09", 15, 18),
		bookedAt(t, "2026-09-11", 6, 10),
	}

	day := ComputeDay(p, date, time.UTC, reservations)

	assert.Equal(t, []int{6, 7, 8, 9, 10, 15}, day.ValidStartsByDuration[3])
	assert.Equal(t, []int{6, 7, 8, 9, 10}, day.ValidStartsByDuration[8])
}

func TestHourIntervalIntersects(t *testing.T) {
	base := HourInterval{Start: 7, End: 15}

	assert.True(t, base.Intersects(HourInterval{Start: 14, End: 17}))
	assert.True(t, base.Intersects(HourInterval{Start: 6, End: 8}))
	// Touching boundaries are not an overlap.
	assert.False(t, base.Intersects(HourInterval{Start: 15, End: 18}))
	assert.False(t, base.Intersects(HourInterval{Start: 4, End: 7}))
}
