package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hostel-backend/models"
	"hostel-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var bedService services.BedService

// ----------------------------------------------------
// 1. Get Beds (GET /api/beds)
// ----------------------------------------------------

func GetBeds(c *gin.Context) {
	beds, err := bedService.GetAll()
	if err != nil {
		log.Printf("❌ GetBeds error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load beds.",
		})
		return
	}
	if beds == nil {
		beds = []models.Bed{}
	}
	c.JSON(http.StatusOK, gin.H{"beds": beds})
}

// ----------------------------------------------------
// 2. Create Bed (POST /api/beds)
// ----------------------------------------------------

func CreateBed(c *gin.Context) {
	var bed models.Bed

	if err := c.ShouldBindJSON(&bed); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := bedService.Create(&bed); err != nil {
		switch {
		case strings.Contains(err.Error(), "room_not_found"):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room with ID %d not found.", bed.RoomID),
			})
		case strings.Contains(err.Error(), "validation:"):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": strings.TrimSpace(strings.TrimPrefix(err.Error(), "validation:")),
			})
		default:
			log.Printf("❌ DB ERROR: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Database error",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, bed)
}

// ----------------------------------------------------
// 3. Get Bed by ID (GET /api/beds/:id)
// ----------------------------------------------------

func GetBedByID(c *gin.Context) {
	id, ok := parseBedID(c)
	if !ok {
		return
	}

	bed, err := bedService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Bed with ID %d not found.", id),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, bed)
}

// ----------------------------------------------------
// 4. Update Bed (PUT /api/beds/:id)
// ----------------------------------------------------

func UpdateBed(c *gin.Context) {
	id, ok := parseBedID(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := bedService.Update(id, updates); err != nil {
		log.Printf("❌ Update Error for Bed %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Update failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Bed updated successfully",
	})
}

// ----------------------------------------------------
// 5. Delete Bed (DELETE /api/beds/:id)
// ----------------------------------------------------

func DeleteBed(c *gin.Context) {
	id, ok := parseBedID(c)
	if !ok {
		return
	}

	if err := bedService.Delete(id); err != nil {
		if strings.Contains(err.Error(), "bed_not_found") {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Bed with ID %d not found.", id),
			})
			return
		}
		log.Printf("❌ DB Error during bed deletion (ID: %d): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete bed.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Bed deleted successfully",
	})
}

func parseBedID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "bed id must be a positive number",
		})
		return 0, false
	}
	return uint(id), true
}
