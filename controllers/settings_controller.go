package controllers

import (
	"errors"
	"net/http"

	"hostel-backend/config"
	"hostel-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type hostelSettingsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
}

func GetHostelSettings(c *gin.Context) {
	var hostel models.HostelSetting
	if err := config.DB.First(&hostel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"hostel": models.HostelSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hostel": hostel})
}

func UpdateHostelSettings(c *gin.Context) {
	var payload hostelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var hostel models.HostelSetting
	err := config.DB.First(&hostel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hostel = models.HostelSetting{
				Name:    payload.Name,
				Address: payload.Address,
				Phone:   payload.Phone,
				Email:   payload.Email,
				Website: payload.Website,
				Logo:    payload.Logo,
			}
			if err := config.DB.Create(&hostel).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"hostel": hostel})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	hostel.Name = payload.Name
	hostel.Address = payload.Address
	hostel.Phone = payload.Phone
	hostel.Email = payload.Email
	hostel.Website = payload.Website
	hostel.Logo = payload.Logo

	if err := config.DB.Save(&hostel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hostel": hostel})
}
