package controllers

import (
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{
		GuestSvc: svc,
	}
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ----------------------------------------------------------------------
// --- CreateGuest (POST /api/guests) ---
// One check-in form submission. The declarations must both be ticked
// before the record is accepted.
// ----------------------------------------------------------------------
func (c *GuestController) CreateGuest(ctx *gin.Context) {
	var guest models.Guest
	if err := ctx.ShouldBindJSON(&guest); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	log.Printf("➡️ CreateGuest payload: %s %s (booking=%v)", guest.FirstName, guest.LastName, guest.BookingID)

	var problems []string
	if strings.TrimSpace(guest.FirstName) == "" {
		problems = append(problems, "first_name is required")
	}
	if strings.TrimSpace(guest.LastName) == "" {
		problems = append(problems, "last_name is required")
	}
	if guest.Email != "" && !isValidEmail(guest.Email) {
		problems = append(problems, "email is not valid")
	}
	if guest.Birthday != "" {
		if _, err := utils.ParseDate(guest.Birthday); err != nil {
			problems = append(problems, "birthday must be a YYYY-MM-DD date")
		}
	}
	if !guest.AgreeTnc {
		problems = append(problems, "terms and conditions must be accepted")
	}
	if !guest.AgreeCheckout {
		problems = append(problems, "check-out policy must be accepted")
	}

	if len(problems) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": strings.Join(problems, "; "),
		})
		return
	}

	if err := c.GuestSvc.Create(&guest); err != nil {
		log.Println("❌ CreateGuest failed:", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   guest,
	})
}

// ----------------------------------------------------------------------
// GET /api/guests
// ----------------------------------------------------------------------
func (c *GuestController) GetAllGuests(ctx *gin.Context) {
	guests, err := c.GuestSvc.GetAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	if guests == nil {
		guests = []models.Guest{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   guests,
	})
}

func (c *GuestController) GetGuestByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid guest ID"})
		return
	}

	guest, err := c.GuestSvc.GetByID(uint(id))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Guest not found"})
		return
	}

	ctx.JSON(http.StatusOK, guest)
}

// ----------------------------------------------------------------------
// GET /api/bookings/:id/guests
// ----------------------------------------------------------------------
func (c *GuestController) GetGuestsByBookingID(ctx *gin.Context) {
	idStr := strings.TrimSpace(ctx.Param("id"))
	bookingID64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || bookingID64 == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "booking id must be a positive number",
		})
		return
	}

	guests, err := c.GuestSvc.GetByBookingID(uint(bookingID64))
	if err != nil {
		log.Printf("❌ GetGuestsByBookingID booking_id=%d err=%v", bookingID64, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch guests",
		})
		return
	}
	if guests == nil {
		guests = []models.Guest{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   guests,
	})
}
