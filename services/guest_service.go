package services

import (
	"log"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// ----------------------------------------------------
// CREATE — takes a pointer so the generated ID lands back on the caller's value
// ----------------------------------------------------
func (s *GuestService) Create(guest *models.Guest) error {
	log.Printf("➡️ GuestService.Create incoming: %s %s", guest.FirstName, guest.LastName)

	err := s.DB.Create(guest).Error

	log.Printf("⬅️ GuestService.Create id=%d (err: %v)", guest.ID, err)
	return err
}

// ----------------------------------------------------
// GetAll — admin view, newest first
// ----------------------------------------------------
func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest

	err := s.DB.
		Order("id DESC").
		Find(&guests).Error
	if err != nil {
		log.Printf("⬅️ GuestService.GetAll error: %v", err)
		return nil, err
	}

	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// GetByBookingID lists the check-in submissions attached to one booking.
func (s *GuestService) GetByBookingID(bookingID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.
		Where("booking_id = ?", bookingID).
		Order("id ASC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}
