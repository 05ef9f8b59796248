// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hostel-backend/services"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type BookingPayload struct {
	BookingName     string         `json:"booking_name"`
	OTAName         string         `json:"ota_name"`
	NumberOfAdults  int            `json:"number_of_adults"`
	ContactNumber   string         `json:"contact_number"`
	CheckIn         string         `json:"check_in"`
	CheckOut        string         `json:"check_out"`
	BaseAmount      float64        `json:"base_amount"`
	PaymentReceived float64        `json:"payment_received"`
	Bank            string         `json:"bank"`
	OtherInfo       string         `json:"other_info"`
	GuestsPerRoom   map[string]int `json:"guests_per_room"`
}

type UpdateBookingPayload struct {
	BookingPayload

	// Sent by the booking form on edit; when omitted the server decides.
	RequiresReassignment *bool `json:"requiresReassignment,omitempty"`
}

func (p BookingPayload) toInput() services.CreateBookingInput {
	return services.CreateBookingInput{
		BookingName:     p.BookingName,
		OTAName:         p.OTAName,
		NumberOfAdults:  p.NumberOfAdults,
		ContactNumber:   p.ContactNumber,
		CheckIn:         p.CheckIn,
		CheckOut:        p.CheckOut,
		BaseAmount:      p.BaseAmount,
		PaymentReceived: p.PaymentReceived,
		Bank:            p.Bank,
		OtherInfo:       p.OtherInfo,
		GuestsPerRoom:   p.GuestsPerRoom,
	}
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseBookingID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "error.invalidBookingId",
				"message": "booking id must be a positive number",
			},
		})
		return 0, false
	}
	return uint(id), true
}

// respondBookingError maps service error sentinels onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case strings.Contains(err.Error(), "booking_not_found"):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found."}})

	case strings.Contains(err.Error(), "validation"):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.validation", "message": err.Error()}})

	case strings.Contains(err.Error(), "room_full"):
		c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.roomFull", "message": err.Error()}})

	case isForeignKeyError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.foreignKey", "message": err.Error()}})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": err.Error()}})
	}
}

// ---------------------------
// CRUD: Bookings
// ---------------------------

// GetBookings — GET /bookings, optionally filtered with ?check_in=YYYY-MM-DD.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	checkIn := strings.TrimSpace(c.Query("check_in"))

	bookings, err := ctrl.BookingSvc.GetAllWithRelations(checkIn)
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("CreateBooking bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(payload.toInput())
	if err != nil {
		log.Printf("Service error creating booking: %v", err)
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "data": booking})
}

func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookingDetails — GET /bookings/details?booking_id=N with resolved
// rooms[].beds[].
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	idStr := c.Query("booking_id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "error.missingBookingId",
				"message": "booking_id query parameter is required",
			},
		})
		return
	}

	booking, svcErr := ctrl.BookingSvc.GetDetails(uint(id))
	if svcErr != nil {
		respondBookingError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	var payload UpdateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("UpdateBooking bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := ctrl.BookingSvc.UpdateBooking(id, services.UpdateBookingInput{
		CreateBookingInput:   payload.toInput(),
		RequiresReassignment: payload.RequiresReassignment,
	})
	if err != nil {
		log.Printf("UpdateBooking error (id=%d): %v", id, err)
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully", "data": booking})
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.DeleteBooking(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || strings.Contains(err.Error(), "booking_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found."}})
			return
		}
		log.Printf("DeleteBooking error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.deleteBookingFailed", "message": "Failed to delete booking."}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Booking deleted successfully"})
}

// ---------------------------
// Calendar
// ---------------------------

// GetCalendar — GET /bookings/calendar?startDate=&endDate= → bed id → day →
// {booking_id, booking_name}.
func (ctrl *BookingController) GetCalendar(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "error.missingDateRange",
				"message": "startDate and endDate query parameters are required",
			},
		})
		return
	}

	calendar, err := ctrl.BookingSvc.BedCalendar(startDate, endDate)
	if err != nil {
		log.Printf("GetCalendar error: %v", err)
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, calendar)
}

// ---------------------------
// Helper: detect MySQL FK error
// ---------------------------
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key") || strings.Contains(lower, "1452")
}
