package services

import (
	"fmt"
	"sync"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// BedInterval is one bed-level hold: which bed, by which booking, for which
// half-open [check_in, check_out) range.
type BedInterval struct {
	BedID     uint
	BookingID uint
	CheckIn   time.Time
	CheckOut  time.Time
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CountFreeBeds counts beds with no overlapping hold in [from, to), ignoring
// holds that belong to excludeBookingID (so a booking being edited sees its
// own beds as free).
func CountFreeBeds(bedIDs []uint, held []BedInterval, from, to time.Time, excludeBookingID *uint) int {
	busy := make(map[uint]bool)
	for _, h := range held {
		if excludeBookingID != nil && h.BookingID == *excludeBookingID {
			continue
		}
		if Overlaps(h.CheckIn, h.CheckOut, from, to) {
			busy[h.BedID] = true
		}
	}

	free := 0
	for _, id := range bedIDs {
		if !busy[id] {
			free++
		}
	}
	return free
}

type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// AvailableBeds returns how many beds in the room are free for the whole
// [checkIn, checkOut) range, excluding holds of excludeBookingID (nil for new
// bookings).
func (s *AvailabilityService) AvailableBeds(roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (int, error) {
	var bedIDs []uint
	if err := s.DB.Model(&models.Bed{}).
		Where("room_id = ?", roomID).
		Pluck("id", &bedIDs).Error; err != nil {
		return 0, fmt.Errorf("failed to load beds for room %d: %w", roomID, err)
	}
	if len(bedIDs) == 0 {
		return 0, nil
	}

	held, err := s.heldIntervals(bedIDs, checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	return CountFreeBeds(bedIDs, held, checkIn, checkOut, excludeBookingID), nil
}

// FreeBedIDs lists the concrete free beds of a room for the range, in bed id
// order. Used by the allocator when resolving adult counts to beds.
func (s *AvailabilityService) FreeBedIDs(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) ([]uint, error) {
	var bedIDs []uint
	if err := tx.Model(&models.Bed{}).
		Where("room_id = ?", roomID).
		Order("id ASC").
		Pluck("id", &bedIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load beds for room %d: %w", roomID, err)
	}

	held, err := s.heldIntervalsTx(tx, bedIDs, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	busy := make(map[uint]bool)
	for _, h := range held {
		if excludeBookingID != nil && h.BookingID == *excludeBookingID {
			continue
		}
		if Overlaps(h.CheckIn, h.CheckOut, checkIn, checkOut) {
			busy[h.BedID] = true
		}
	}

	free := make([]uint, 0, len(bedIDs))
	for _, id := range bedIDs {
		if !busy[id] {
			free = append(free, id)
		}
	}
	return free, nil
}

func (s *AvailabilityService) heldIntervals(bedIDs []uint, checkIn, checkOut time.Time) ([]BedInterval, error) {
	return s.heldIntervalsTx(s.DB, bedIDs, checkIn, checkOut)
}

func (s *AvailabilityService) heldIntervalsTx(tx *gorm.DB, bedIDs []uint, checkIn, checkOut time.Time) ([]BedInterval, error) {
	if len(bedIDs) == 0 {
		return nil, nil
	}

	var held []BedInterval
	err := tx.Raw(`
SELECT bb.bed_id AS bed_id, br.booking_id AS booking_id, bb.check_in AS check_in, bb.check_out AS check_out
FROM booking_beds bb
JOIN booking_rooms br ON br.id = bb.booking_room_id AND br.deleted_at IS NULL
WHERE bb.bed_id IN ?
  AND bb.deleted_at IS NULL
  AND bb.check_in < ?
  AND bb.check_out > ?`,
		bedIDs, checkOut, checkIn).Scan(&held).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bed holds: %w", err)
	}
	return held, nil
}

// ----------------------------------------------------
// Per-cycle availability cache with explicit stale-response discarding.
// Requests are issued per room; a response is committed only when it still
// matches the latest issued parameters for that room, so an answer for an
// outdated date range can never clobber a newer one.
// ----------------------------------------------------

type AvailabilityRequest struct {
	RoomID   uint
	CheckIn  time.Time
	CheckOut time.Time
	IssuedAt time.Time
}

type AvailabilityCache struct {
	mu     sync.Mutex
	latest map[uint]AvailabilityRequest
	counts map[uint]int
}

func NewAvailabilityCache() *AvailabilityCache {
	return &AvailabilityCache{
		latest: make(map[uint]AvailabilityRequest),
		counts: make(map[uint]int),
	}
}

// Issue records the parameters of a new request for roomID and invalidates any
// not-yet-committed older request for the same room.
func (c *AvailabilityCache) Issue(roomID uint, checkIn, checkOut time.Time) AvailabilityRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	req := AvailabilityRequest{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		IssuedAt: time.Now(),
	}
	c.latest[roomID] = req
	delete(c.counts, roomID)
	return req
}

// Commit stores a response only if req is still the latest issued request for
// its room. Returns false when the response is stale and was discarded.
func (c *AvailabilityCache) Commit(req AvailabilityRequest, count int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.latest[req.RoomID]
	if !ok || !cur.CheckIn.Equal(req.CheckIn) || !cur.CheckOut.Equal(req.CheckOut) || !cur.IssuedAt.Equal(req.IssuedAt) {
		return false
	}
	c.counts[req.RoomID] = count
	return true
}

// Get returns the committed count for a room, if any.
func (c *AvailabilityCache) Get(roomID uint) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.counts[roomID]
	return n, ok
}

// Snapshot copies all committed counts keyed by room id string, the shape the
// assignment validator consumes.
func (c *AvailabilityCache) Snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]int, len(c.counts))
	for id, n := range c.counts {
		out[fmt.Sprintf("%d", id)] = n
	}
	return out
}
