package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, "IST", d.Location().String())

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-40")
	assert.Error(t, err)
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))
}

func TestNights(t *testing.T) {
	ci, _ := ParseDate("2024-01-01")
	co, _ := ParseDate("2024-01-03")
	assert.Equal(t, 2, Nights(ci, co))

	// same day and inverted ranges collapse to zero
	assert.Equal(t, 0, Nights(ci, ci))
	assert.Equal(t, 0, Nights(co, ci))
}

func TestNightsIsPure(t *testing.T) {
	ci, _ := ParseDate("2024-06-10")
	co, _ := ParseDate("2024-06-12")
	before := ci
	Nights(ci, co)
	assert.True(t, ci.Equal(before))
}

func TestNextDay(t *testing.T) {
	d, _ := ParseDate("2024-01-31")
	assert.Equal(t, "2024-02-01", FormatDate(NextDay(d)))

	d, _ = ParseDate("2024-12-31")
	assert.Equal(t, "2025-01-01", FormatDate(NextDay(d)))
}

func TestDateRange(t *testing.T) {
	start, _ := ParseDate("2024-01-30")
	end, _ := ParseDate("2024-02-02")
	assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01"}, DateRange(start, end))

	// end is exclusive; empty range when start >= end
	assert.Empty(t, DateRange(start, start))
	assert.Empty(t, DateRange(end, start))
}
