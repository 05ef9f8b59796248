package services

import (
	"errors"
	"strings"

	"hostel-backend/config"
	"hostel-backend/models"

	"gorm.io/gorm"
)

type BedService struct{}

func (s BedService) Create(bed *models.Bed) error {
	if strings.TrimSpace(bed.BedName) == "" {
		return errors.New("validation: bed_name is required")
	}
	if bed.Status == "" {
		bed.Status = models.BedStatusAvailable
	}

	var room models.Room
	if err := config.DB.First(&room, bed.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("room_not_found")
		}
		return err
	}

	return config.DB.Create(bed).Error
}

func (s BedService) GetAll() ([]models.Bed, error) {
	var beds []models.Bed
	err := config.DB.Order("room_id ASC, id ASC").Find(&beds).Error
	return beds, err
}

func (s BedService) GetByID(id uint) (models.Bed, error) {
	var bed models.Bed
	err := config.DB.First(&bed, id).Error
	return bed, err
}

func (s BedService) Update(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")
	return config.DB.Model(&models.Bed{}).Where("id = ?", id).Updates(updates).Error
}

func (s BedService) Delete(id uint) error {
	result := config.DB.Delete(&models.Bed{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("bed_not_found")
	}
	return nil
}
