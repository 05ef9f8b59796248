// services/booking_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB with the booking lifecycle: validation,
// bed-level allocation, updates with the reassignment decision, and the
// occupancy calendar.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		DB:           db,
		Availability: NewAvailabilityService(db),
	}
}

// ---------------------------
// Inputs
// ---------------------------

type CreateBookingInput struct {
	BookingName     string
	OTAName         string
	NumberOfAdults  int
	ContactNumber   string
	CheckIn         string
	CheckOut        string
	BaseAmount      float64
	PaymentReceived float64
	Bank            string
	OtherInfo       string
	GuestsPerRoom   map[string]int
}

type UpdateBookingInput struct {
	CreateBookingInput

	// Client-supplied decision; when nil the server computes it itself.
	RequiresReassignment *bool
}

// validateBookingInput collects every violation, mirroring the booking form's
// behavior of showing all problems at once.
func validateBookingInput(in CreateBookingInput) []string {
	var violations []string

	if strings.TrimSpace(in.BookingName) == "" {
		violations = append(violations, "Booking name is required.")
	}
	if in.OTAName != "" && !models.IsValidOTA(in.OTAName) {
		violations = append(violations, fmt.Sprintf("Unknown OTA %q.", in.OTAName))
	}
	if in.NumberOfAdults < 1 {
		violations = append(violations, "At least one adult must be added.")
	}

	ci, ciErr := utils.ParseDate(in.CheckIn)
	if ciErr != nil {
		violations = append(violations, "Check-in date is required.")
	}
	co, coErr := utils.ParseDate(in.CheckOut)
	if coErr != nil {
		violations = append(violations, "Check-out date is required.")
	}
	if ciErr == nil && coErr == nil && !co.After(ci) {
		violations = append(violations, "Check-out must be after check-in.")
	}

	if in.BaseAmount <= 0 {
		violations = append(violations, "Base amount must be greater than 0.")
	}
	if in.PaymentReceived < 0 {
		violations = append(violations, "Paid amount can not be less than 0.")
	}

	total := 0
	for roomID, n := range in.GuestsPerRoom {
		if _, err := strconv.ParseUint(roomID, 10, 64); err != nil {
			violations = append(violations, fmt.Sprintf("Invalid room id %q.", roomID))
		}
		if n < 0 {
			violations = append(violations, fmt.Sprintf("Negative guest count for room %s.", roomID))
		}
		total += n
	}
	if total != in.NumberOfAdults {
		violations = append(violations, "All adults must be assigned a room.")
	}

	return violations
}

// checkCapacity verifies every requested room has enough free beds for the
// range, resolving availability per room through a per-call cache so a room
// queried twice is only hit once and stale answers are discarded.
func (s *BookingService) checkCapacity(counts map[string]int, checkIn, checkOut time.Time, excludeBookingID *uint) error {
	cache := NewAvailabilityCache()

	for roomIDStr, need := range counts {
		if need == 0 {
			continue
		}
		roomID64, _ := strconv.ParseUint(roomIDStr, 10, 64)
		roomID := uint(roomID64)

		if _, ok := cache.Get(roomID); !ok {
			req := cache.Issue(roomID, checkIn, checkOut)
			count, err := s.Availability.AvailableBeds(roomID, checkIn, checkOut, excludeBookingID)
			if err != nil {
				return err
			}
			cache.Commit(req, count)
		}

		free, _ := cache.Get(roomID)
		if need > free {
			return fmt.Errorf("room_full: room %s has %d beds free, %d requested", roomIDStr, free, need)
		}
	}
	return nil
}

// allocateBeds resolves guests_per_room counts to concrete beds inside tx,
// creating booking_rooms and booking_beds for the full stay range.
func (s *BookingService) allocateBeds(tx *gorm.DB, bookingID uint, counts map[string]int, checkIn, checkOut time.Time, excludeBookingID *uint) error {
	for roomIDStr, need := range counts {
		if need == 0 {
			continue
		}
		roomID64, err := strconv.ParseUint(roomIDStr, 10, 64)
		if err != nil {
			return fmt.Errorf("validation: invalid room id %q", roomIDStr)
		}
		roomID := uint(roomID64)

		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("validation: room %d not found", roomID)
			}
			return fmt.Errorf("db error checking room %d: %w", roomID, err)
		}

		freeBeds, err := s.Availability.FreeBedIDs(tx, roomID, checkIn, checkOut, excludeBookingID)
		if err != nil {
			return err
		}
		if len(freeBeds) < need {
			return fmt.Errorf("room_full: room %s has %d beds free, %d requested", roomIDStr, len(freeBeds), need)
		}

		br := models.BookingRoom{
			BookingID: bookingID,
			RoomID:    roomID,
		}
		if err := tx.Create(&br).Error; err != nil {
			return fmt.Errorf("failed to create booking_room for room %d: %w", roomID, err)
		}

		ci := checkIn
		co := checkOut
		for _, bedID := range freeBeds[:need] {
			bb := models.BookingBed{
				BookingRoomID: br.ID,
				BedID:         bedID,
				CheckIn:       &ci,
				CheckOut:      &co,
			}
			if err := tx.Create(&bb).Error; err != nil {
				return fmt.Errorf("failed to create booking_bed for bed %d: %w", bedID, err)
			}

			if err := tx.Model(&models.Bed{}).
				Where("id = ?", bedID).
				Update("status", models.BedStatusOccupied).Error; err != nil {
				return fmt.Errorf("failed to update bed %d status: %w", bedID, err)
			}
		}
	}
	return nil
}

// releaseBeds drops a booking's current bed assignments inside tx and frees
// the informational bed status.
func (s *BookingService) releaseBeds(tx *gorm.DB, bookingID uint) error {
	var bookingRooms []models.BookingRoom
	if err := tx.Preload("Beds").Where("booking_id = ?", bookingID).Find(&bookingRooms).Error; err != nil {
		return fmt.Errorf("failed to load booking rooms: %w", err)
	}

	for _, br := range bookingRooms {
		for _, bb := range br.Beds {
			if err := tx.Model(&models.Bed{}).
				Where("id = ?", bb.BedID).
				Update("status", models.BedStatusAvailable).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("booking_room_id = ?", br.ID).Delete(&models.BookingBed{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("booking_id = ?", bookingID).Delete(&models.BookingRoom{}).Error; err != nil {
		return err
	}
	return nil
}

// ---------------------------
// Create
// ---------------------------

func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if violations := validateBookingInput(in); len(violations) > 0 {
		return nil, fmt.Errorf("validation: %s", strings.Join(violations, " "))
	}

	checkIn, _ := utils.ParseDate(in.CheckIn)
	checkOut, _ := utils.ParseDate(in.CheckOut)

	if err := s.checkCapacity(in.GuestsPerRoom, checkIn, checkOut, nil); err != nil {
		return nil, err
	}

	guestsJSON, _ := json.Marshal(in.GuestsPerRoom)

	booking := models.Booking{
		BookingName:     strings.TrimSpace(in.BookingName),
		OTAName:         in.OTAName,
		NumberOfAdults:  in.NumberOfAdults,
		ContactNumber:   strings.TrimSpace(in.ContactNumber),
		CheckIn:         &checkIn,
		CheckOut:        &checkOut,
		NumberOfNights:  utils.Nights(checkIn, checkOut),
		BaseAmount:      in.BaseAmount,
		PaymentReceived: in.PaymentReceived,
		Bank:            strings.TrimSpace(in.Bank),
		OtherInfo:       in.OtherInfo,
		GuestsPerRoom:   datatypes.JSON(guestsJSON),
	}
	ApplyPricing(&booking)

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return s.allocateBeds(tx, booking.ID, in.GuestsPerRoom, checkIn, checkOut, nil)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetDetails(booking.ID)
}

// ---------------------------
// Update
// ---------------------------

func (s *BookingService) UpdateBooking(bookingID uint, in UpdateBookingInput) (*models.Booking, error) {
	original, err := s.GetDetails(bookingID)
	if err != nil {
		return nil, err
	}

	if violations := validateBookingInput(in.CreateBookingInput); len(violations) > 0 {
		return nil, fmt.Errorf("validation: %s", strings.Join(violations, " "))
	}

	checkIn, _ := utils.ParseDate(in.CheckIn)
	checkOut, _ := utils.ParseDate(in.CheckOut)

	change := BookingChange{
		CheckIn:        in.CheckIn,
		CheckOut:       in.CheckOut,
		NumberOfAdults: in.NumberOfAdults,
		GuestsPerRoom:  in.GuestsPerRoom,
	}

	reassign := NeedsReassignment(*original, change)
	if in.RequiresReassignment != nil {
		reassign = *in.RequiresReassignment
	}

	if reassign {
		// The booking's own beds count as free for its new range.
		exclude := bookingID
		if err := s.checkCapacity(in.GuestsPerRoom, checkIn, checkOut, &exclude); err != nil {
			return nil, err
		}
	}

	guestsJSON, _ := json.Marshal(in.GuestsPerRoom)

	updated := models.Booking{
		OTAName:         in.OTAName,
		BaseAmount:      in.BaseAmount,
		PaymentReceived: in.PaymentReceived,
	}
	ApplyPricing(&updated)

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", bookingID).Updates(map[string]interface{}{
			"booking_name":            strings.TrimSpace(in.BookingName),
			"ota_name":                in.OTAName,
			"number_of_adults":        in.NumberOfAdults,
			"contact_number":          strings.TrimSpace(in.ContactNumber),
			"check_in":                checkIn,
			"check_out":               checkOut,
			"number_of_nights":        utils.Nights(checkIn, checkOut),
			"base_amount":             in.BaseAmount,
			"commission":              updated.Commission,
			"gst":                     updated.GST,
			"payment_received":        in.PaymentReceived,
			"pending_amount":          updated.PendingAmount,
			"payment_status":          updated.PaymentStatus,
			"profit_after_commission": updated.ProfitAfterComm,
			"bank":                    strings.TrimSpace(in.Bank),
			"other_info":              in.OtherInfo,
			"guests_per_room":         datatypes.JSON(guestsJSON),
		}).Error; err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		if !reassign {
			// Cosmetic edit — existing bed bindings stay untouched.
			return nil
		}

		if err := s.releaseBeds(tx, bookingID); err != nil {
			return err
		}
		exclude := bookingID
		return s.allocateBeds(tx, bookingID, in.GuestsPerRoom, checkIn, checkOut, &exclude)
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Printf("booking %d updated (reassigned=%v)", bookingID, reassign)
	return s.GetDetails(bookingID)
}

// ---------------------------
// Read
// ---------------------------

// GetAllWithRelations lists bookings in the dashboard order: check-in date,
// then OTA, then booking name. checkInFilter narrows to bookings checking in
// on that exact date ("" for all).
func (s *BookingService) GetAllWithRelations(checkInFilter string) ([]models.Booking, error) {
	query := s.DB.
		Preload("Rooms").
		Preload("Rooms.Room").
		Preload("Rooms.Beds").
		Preload("Rooms.Beds.Bed").
		Order("check_in ASC, ota_name ASC, booking_name ASC")

	if checkInFilter != "" {
		day, err := utils.ParseDate(checkInFilter)
		if err != nil {
			return nil, fmt.Errorf("validation: invalid check_in filter: %w", err)
		}
		query = query.Where("check_in >= ? AND check_in < ?", day, utils.NextDay(day))
	}

	var list []models.Booking
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	for i := range list {
		if list[i].Rooms == nil {
			list[i].Rooms = []models.BookingRoom{}
		}
		fillBooking(&list[i])
	}
	return list, nil
}

func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	fillBooking(&bk)
	return &bk, nil
}

// GetDetails loads a booking with its resolved rooms and beds.
func (s *BookingService) GetDetails(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	err := s.DB.
		Preload("Rooms").
		Preload("Rooms.Room").
		Preload("Rooms.Beds").
		Preload("Rooms.Beds.Bed").
		First(&bk, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}

	if bk.Rooms == nil {
		bk.Rooms = []models.BookingRoom{}
	}
	fillBooking(&bk)
	return &bk, nil
}

// ---------------------------
// Delete
// ---------------------------

func (s *BookingService) DeleteBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var bk models.Booking
		if err := tx.First(&bk, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if err := s.releaseBeds(tx, bookingID); err != nil {
			return err
		}

		if err := tx.Delete(&models.Booking{}, bookingID).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
}

// ---------------------------
// Calendar
// ---------------------------

type CalendarEntry struct {
	BookingID   uint   `json:"booking_id"`
	BookingName string `json:"booking_name"`
}

// BedCalendar builds the occupancy grid for [startDate, endDate): bed id →
// day string → occupying booking. Each bed assignment contributes only its
// own sub-range, so mid-stay bed swaps render correctly.
func (s *BookingService) BedCalendar(startDate, endDate string) (map[uint]map[string]CalendarEntry, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("validation: invalid startDate: %w", err)
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("validation: invalid endDate: %w", err)
	}
	if !end.After(start) {
		return nil, errors.New("validation: endDate must be after startDate")
	}

	type calendarRow struct {
		BedID       uint
		BookingID   uint
		BookingName string
		CheckIn     time.Time
		CheckOut    time.Time
	}

	var rows []calendarRow
	err = s.DB.Raw(`
SELECT bb.bed_id AS bed_id, b.id AS booking_id, b.booking_name AS booking_name,
       bb.check_in AS check_in, bb.check_out AS check_out
FROM booking_beds bb
JOIN booking_rooms br ON br.id = bb.booking_room_id AND br.deleted_at IS NULL
JOIN bookings b ON b.id = br.booking_id AND b.deleted_at IS NULL
WHERE bb.deleted_at IS NULL
  AND bb.check_in < ?
  AND bb.check_out > ?`,
		end, start).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar bookings: %w", err)
	}

	calendar := make(map[uint]map[string]CalendarEntry)
	for _, row := range rows {
		from := row.CheckIn
		if from.Before(start) {
			from = start
		}
		to := row.CheckOut
		if to.After(end) {
			to = end
		}

		for _, day := range utils.DateRange(from, to) {
			if calendar[row.BedID] == nil {
				calendar[row.BedID] = make(map[string]CalendarEntry)
			}
			calendar[row.BedID][day] = CalendarEntry{
				BookingID:   row.BookingID,
				BookingName: row.BookingName,
			}
		}
	}
	return calendar, nil
}

// ---------------------------
// Response shaping
// ---------------------------

// fillBooking projects times into the YYYY-MM-DD wire fields and copies room
// and bed display names out of the preloaded relations.
func fillBooking(b *models.Booking) {
	if b.CheckIn != nil {
		b.CheckInStr = utils.FormatDate(*b.CheckIn)
	}
	if b.CheckOut != nil {
		b.CheckOutStr = utils.FormatDate(*b.CheckOut)
	}

	for i := range b.Rooms {
		br := &b.Rooms[i]
		if br.Room.ID != 0 {
			br.RoomName = br.Room.RoomName
		}
		for j := range br.Beds {
			bb := &br.Beds[j]
			if bb.Bed.ID != 0 {
				bb.BedName = bb.Bed.BedName
			}
			if bb.CheckIn != nil {
				bb.CheckInStr = utils.FormatDate(*bb.CheckIn)
			}
			if bb.CheckOut != nil {
				bb.CheckOutStr = utils.FormatDate(*bb.CheckOut)
			}
		}
	}
}
