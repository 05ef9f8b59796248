package services

import (
	"testing"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func mustDate(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func bookingFixture(t *testing.T) models.Booking {
	t.Helper()
	return models.Booking{
		CheckIn:        mustDate(t, "2024-05-01"),
		CheckOut:       mustDate(t, "2024-05-04"),
		NumberOfAdults: 2,
		GuestsPerRoom:  datatypes.JSON(`{"1":2}`),
	}
}

func TestNeedsReassignmentCosmeticEdit(t *testing.T) {
	original := bookingFixture(t)
	proposed := BookingChange{
		CheckIn:        "2024-05-01",
		CheckOut:       "2024-05-04",
		NumberOfAdults: 2,
		GuestsPerRoom:  map[string]int{"1": 2},
	}
	// contact number / notes / money edits do not appear in BookingChange,
	// so an identical capacity slice keeps the existing beds
	assert.False(t, NeedsReassignment(original, proposed))
}

func TestNeedsReassignmentCheckOutMoved(t *testing.T) {
	original := bookingFixture(t)
	proposed := BookingChange{
		CheckIn:        "2024-05-01",
		CheckOut:       "2024-05-05",
		NumberOfAdults: 2,
		GuestsPerRoom:  map[string]int{"1": 2},
	}
	assert.True(t, NeedsReassignment(original, proposed))
}

func TestNeedsReassignmentAdultCountMoved(t *testing.T) {
	original := bookingFixture(t)
	proposed := BookingChange{
		CheckIn:        "2024-05-01",
		CheckOut:       "2024-05-04",
		NumberOfAdults: 3,
		GuestsPerRoom:  map[string]int{"1": 3},
	}
	assert.True(t, NeedsReassignment(original, proposed))
}

func TestNeedsReassignmentDistributionMoved(t *testing.T) {
	original := bookingFixture(t)
	proposed := BookingChange{
		CheckIn:        "2024-05-01",
		CheckOut:       "2024-05-04",
		NumberOfAdults: 2,
		GuestsPerRoom:  map[string]int{"1": 1, "2": 1},
	}
	assert.True(t, NeedsReassignment(original, proposed))
}

func TestBookingDistributionFallsBackToRooms(t *testing.T) {
	// no guests_per_room column: derive the distribution from resolved beds
	original := models.Booking{
		CheckIn:        mustDate(t, "2024-05-01"),
		CheckOut:       mustDate(t, "2024-05-04"),
		NumberOfAdults: 2,
		Rooms: []models.BookingRoom{
			{
				RoomID: 1,
				Beds:   []models.BookingBed{{BedID: 10}, {BedID: 11}},
			},
		},
	}

	d := BookingDistribution(original)
	assert.Equal(t, map[string]int{"1": 2}, d.Counts())
	assert.Equal(t, 2, d.Total())

	proposed := BookingChange{
		CheckIn:        "2024-05-01",
		CheckOut:       "2024-05-04",
		NumberOfAdults: 2,
		GuestsPerRoom:  map[string]int{"1": 2},
	}
	assert.False(t, NeedsReassignment(original, proposed))
}

func TestDistributionFromJSONMalformed(t *testing.T) {
	d := DistributionFromJSON(datatypes.JSON(`not-json`))
	assert.Empty(t, d.Counts())
	assert.Equal(t, 0, d.Total())
}

func TestDistributionEqualsIgnoresZeroCounts(t *testing.T) {
	a := DistributionFromCounts(map[string]int{"1": 2, "2": 0})
	b := DistributionFromCounts(map[string]int{"1": 2})
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(DistributionFromCounts(map[string]int{"1": 3})))
}
