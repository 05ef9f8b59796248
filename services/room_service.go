package services

import (
	"errors"
	"fmt"

	"hostel-backend/config"
	"hostel-backend/models"

	"gorm.io/gorm"
)

type RoomService struct{}

func (s RoomService) Create(room *models.Room) error {
	return config.DB.Create(room).Error
}

func (s RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := config.DB.Preload("Beds").Order("id ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].Beds == nil {
			rooms[i].Beds = []models.Bed{}
		}
	}
	return rooms, err
}

func (s RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := config.DB.Preload("Beds").First(&room, id).Error
	if room.Beds == nil {
		room.Beds = []models.Bed{}
	}
	return room, err
}

func (s RoomService) Update(id uint, roomName string) error {
	return config.DB.Model(&models.Room{}).Where("id = ?", id).Update("room_name", roomName).Error
}

// Delete removes the room and every bed in it.
func (s RoomService) Delete(id uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("room_not_found")
			}
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Bed{}).Error; err != nil {
			return fmt.Errorf("failed to delete beds of room %d: %w", id, err)
		}
		return tx.Delete(&models.Room{}, id).Error
	})
}

// UpdateCapacity recounts the room's beds and stores the result, returning the
// refreshed room. Called after beds are added or removed.
func (s RoomService) UpdateCapacity(id uint) (models.Room, error) {
	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, errors.New("room_not_found")
		}
		return room, err
	}

	var count int64
	if err := config.DB.Model(&models.Bed{}).Where("room_id = ?", id).Count(&count).Error; err != nil {
		return room, fmt.Errorf("failed to count beds of room %d: %w", id, err)
	}

	if err := config.DB.Model(&room).Update("capacity", int(count)).Error; err != nil {
		return room, fmt.Errorf("failed to update capacity of room %d: %w", id, err)
	}

	return s.GetByID(id)
}
