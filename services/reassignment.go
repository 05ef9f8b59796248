package services

import (
	"encoding/json"
	"fmt"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/datatypes"
)

// GuestDistribution is the canonical form of "who sleeps where": room id →
// adult count. A booking can carry the distribution either as the proposed
// guests_per_room mapping or as resolved room/bed assignments; both collapse
// to this one shape so comparisons never duplicate fallback logic.
type GuestDistribution struct {
	counts map[string]int
}

func DistributionFromCounts(counts map[string]int) GuestDistribution {
	out := make(map[string]int, len(counts))
	for roomID, n := range counts {
		if n > 0 {
			out[roomID] = n
		}
	}
	return GuestDistribution{counts: out}
}

// DistributionFromJSON parses a guests_per_room JSON column. Malformed or
// empty payloads yield an empty distribution.
func DistributionFromJSON(raw datatypes.JSON) GuestDistribution {
	if len(raw) == 0 {
		return GuestDistribution{counts: map[string]int{}}
	}
	var counts map[string]int
	if err := json.Unmarshal(raw, &counts); err != nil {
		return GuestDistribution{counts: map[string]int{}}
	}
	return DistributionFromCounts(counts)
}

// DistributionFromRooms tallies resolved bed assignments per room.
func DistributionFromRooms(rooms []models.BookingRoom) GuestDistribution {
	counts := make(map[string]int)
	for _, br := range rooms {
		if len(br.Beds) > 0 {
			counts[fmt.Sprintf("%d", br.RoomID)] += len(br.Beds)
		}
	}
	return GuestDistribution{counts: counts}
}

// BookingDistribution picks the booking's distribution: the proposed
// guests_per_room mapping when present, otherwise the resolved assignments.
func BookingDistribution(b models.Booking) GuestDistribution {
	d := DistributionFromJSON(b.GuestsPerRoom)
	if len(d.counts) > 0 {
		return d
	}
	return DistributionFromRooms(b.Rooms)
}

func (d GuestDistribution) Counts() map[string]int {
	out := make(map[string]int, len(d.counts))
	for k, v := range d.counts {
		out[k] = v
	}
	return out
}

func (d GuestDistribution) Total() int {
	total := 0
	for _, n := range d.counts {
		total += n
	}
	return total
}

// Equals compares two distributions as unordered mappings.
func (d GuestDistribution) Equals(other GuestDistribution) bool {
	if len(d.counts) != len(other.counts) {
		return false
	}
	for roomID, n := range d.counts {
		if other.counts[roomID] != n {
			return false
		}
	}
	return true
}

// BookingChange is the capacity-relevant slice of a proposed booking update.
type BookingChange struct {
	CheckIn        string
	CheckOut       string
	NumberOfAdults int
	GuestsPerRoom  map[string]int
}

// NeedsReassignment decides whether an update requires the bed-level
// allocation to be recomputed: true when dates, adult count, or the room
// distribution move; false for cosmetic edits (contact number, notes, money
// fields), which keep the existing bed bindings and avoid needless bed churn.
func NeedsReassignment(original models.Booking, proposed BookingChange) bool {
	origCheckIn := ""
	if original.CheckIn != nil {
		origCheckIn = utils.FormatDate(*original.CheckIn)
	}
	origCheckOut := ""
	if original.CheckOut != nil {
		origCheckOut = utils.FormatDate(*original.CheckOut)
	}

	if proposed.CheckIn != origCheckIn {
		return true
	}
	if proposed.CheckOut != origCheckOut {
		return true
	}
	if proposed.NumberOfAdults != original.NumberOfAdults {
		return true
	}

	return !BookingDistribution(original).Equals(DistributionFromCounts(proposed.GuestsPerRoom))
}
