package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var roomService services.RoomService

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms)
// ----------------------------------------------------

func GetRooms(c *gin.Context) {
	rooms, err := roomService.GetAll()
	if err != nil {
		log.Printf("❌ GetRooms error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load rooms.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func CreateRoom(c *gin.Context) {
	var room models.Room

	if err := c.ShouldBindJSON(&room); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	room.RoomName = strings.TrimSpace(room.RoomName)
	if room.RoomName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Room Name is required.",
		})
		return
	}

	if err := roomService.Create(&room); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			log.Printf("❌ Duplicate Room Name: %s", room.RoomName)
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room '%s' already exists.", room.RoomName),
			})
			return
		}

		log.Printf("❌ DB ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Get Room by ID (GET /api/rooms/:id)
// ----------------------------------------------------

func GetRoomByID(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	room, err := roomService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room with ID %d not found.", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 4. Update Room (PUT /api/rooms/:id)
// ----------------------------------------------------

func UpdateRoom(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	var payload struct {
		RoomName string `json:"room_name"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	payload.RoomName = strings.TrimSpace(payload.RoomName)
	if payload.RoomName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "room_name is required."})
		return
	}

	if err := roomService.Update(id, payload.RoomName); err != nil {
		log.Printf("❌ Update Error for Room %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room updated successfully",
	})
}

// ----------------------------------------------------
// 5. Delete Room (DELETE /api/rooms/:id)
// Deletes the room together with all of its beds.
// ----------------------------------------------------

func DeleteRoom(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	if err := roomService.Delete(id); err != nil {
		if strings.Contains(err.Error(), "room_not_found") {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room with ID %d not found.", id),
			})
			return
		}
		log.Printf("❌ DB Error during room deletion (ID: %d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete room.",
		})
		return
	}

	log.Printf("✅ Room ID %d deleted.", id)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room deleted successfully",
	})
}

// ----------------------------------------------------
// 6. Update Capacity (PUT /api/rooms/:id/update-capacity)
// Recounts beds after bed changes; capacity is always derived.
// ----------------------------------------------------

func UpdateRoomCapacity(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	room, err := roomService.UpdateCapacity(id)
	if err != nil {
		if strings.Contains(err.Error(), "room_not_found") {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room with ID %d not found.", id),
			})
			return
		}
		log.Printf("❌ UpdateRoomCapacity error (ID: %d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update capacity."})
		return
	}

	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 7. Room availability (GET /api/rooms/:id/availability)
// ?check_in=YYYY-MM-DD&check_out=YYYY-MM-DD[&exclude_booking_id=N]
// ----------------------------------------------------

func GetRoomAvailability(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_in must be a YYYY-MM-DD date")
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be a YYYY-MM-DD date")
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be after check_in")
		return
	}

	var excludeBookingID *uint
	if raw := c.Query("exclude_booking_id"); raw != "" {
		parsed, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			utils.JSONError(c, http.StatusBadRequest, "exclude_booking_id must be a number")
			return
		}
		v := uint(parsed)
		excludeBookingID = &v
	}

	svc := services.NewAvailabilityService(config.DB)
	count, err := svc.AvailableBeds(id, checkIn, checkOut, excludeBookingID)
	if err != nil {
		log.Printf("❌ GetRoomAvailability error (room=%d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve availability.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room_id":        id,
		"check_in":       utils.FormatDate(checkIn),
		"check_out":      utils.FormatDate(checkOut),
		"available_beds": count,
	})
}

func parseRoomID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "room id must be a positive number",
		})
		return 0, false
	}
	return uint(id), true
}
