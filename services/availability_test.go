package services

import (
	"testing"
	"time"

	"hostel-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestOverlaps(t *testing.T) {
	a1, a2 := day(t, "2024-01-01"), day(t, "2024-01-05")

	// back-to-back stays share a turnover day but do not overlap
	assert.False(t, Overlaps(a1, a2, day(t, "2024-01-05"), day(t, "2024-01-08")))
	assert.False(t, Overlaps(day(t, "2024-01-05"), day(t, "2024-01-08"), a1, a2))

	assert.True(t, Overlaps(a1, a2, day(t, "2024-01-04"), day(t, "2024-01-06")))
	assert.True(t, Overlaps(a1, a2, day(t, "2024-01-02"), day(t, "2024-01-03")))
	assert.True(t, Overlaps(day(t, "2024-01-02"), day(t, "2024-01-03"), a1, a2))
}

func TestCountFreeBeds(t *testing.T) {
	beds := []uint{10, 11, 12}
	held := []BedInterval{
		{BedID: 10, BookingID: 5, CheckIn: day(t, "2024-01-01"), CheckOut: day(t, "2024-01-05")},
		{BedID: 11, BookingID: 6, CheckIn: day(t, "2024-01-03"), CheckOut: day(t, "2024-01-04")},
	}

	free := CountFreeBeds(beds, held, day(t, "2024-01-02"), day(t, "2024-01-04"), nil)
	assert.Equal(t, 1, free)

	// range after every hold ends
	free = CountFreeBeds(beds, held, day(t, "2024-01-05"), day(t, "2024-01-07"), nil)
	assert.Equal(t, 3, free)
}

func TestCountFreeBedsExcludesOwnBooking(t *testing.T) {
	beds := []uint{10, 11}
	held := []BedInterval{
		{BedID: 10, BookingID: 5, CheckIn: day(t, "2024-01-01"), CheckOut: day(t, "2024-01-05")},
		{BedID: 11, BookingID: 5, CheckIn: day(t, "2024-01-01"), CheckOut: day(t, "2024-01-05")},
	}

	from, to := day(t, "2024-01-02"), day(t, "2024-01-04")

	// a new booking sees the room as full
	assert.Equal(t, 0, CountFreeBeds(beds, held, from, to, nil))

	// booking 5 editing itself sees its own beds as free
	exclude := uint(5)
	assert.Equal(t, 2, CountFreeBeds(beds, held, from, to, &exclude))

	other := uint(9)
	assert.Equal(t, 0, CountFreeBeds(beds, held, from, to, &other))
}

func TestAvailabilityCacheCommitAndGet(t *testing.T) {
	cache := NewAvailabilityCache()

	req := cache.Issue(1, day(t, "2024-01-01"), day(t, "2024-01-03"))
	assert.True(t, cache.Commit(req, 4))

	n, ok := cache.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	assert.Equal(t, map[string]int{"1": 4}, cache.Snapshot())
}

func TestAvailabilityCacheDiscardsStaleResponse(t *testing.T) {
	cache := NewAvailabilityCache()

	stale := cache.Issue(1, day(t, "2024-01-01"), day(t, "2024-01-03"))
	fresh := cache.Issue(1, day(t, "2024-02-01"), day(t, "2024-02-03"))

	// a late answer for the superseded range must not land
	assert.False(t, cache.Commit(stale, 9))
	_, ok := cache.Get(1)
	assert.False(t, ok)

	assert.True(t, cache.Commit(fresh, 2))
	n, _ := cache.Get(1)
	assert.Equal(t, 2, n)
}

func TestAvailabilityCacheIssueInvalidatesCommitted(t *testing.T) {
	cache := NewAvailabilityCache()

	req := cache.Issue(3, day(t, "2024-01-01"), day(t, "2024-01-02"))
	require.True(t, cache.Commit(req, 1))

	cache.Issue(3, day(t, "2024-01-10"), day(t, "2024-01-12"))
	_, ok := cache.Get(3)
	assert.False(t, ok)
}
