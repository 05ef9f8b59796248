package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BedStatusAvailable = "available"
	BedStatusOccupied  = "occupied"
)

type Bed struct {
	ID uint `gorm:"primaryKey" json:"bed_id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID  uint   `gorm:"index;column:room_id" json:"room_id"`
	BedName string `json:"bed_name" gorm:"column:bed_name;type:varchar(100)"`

	// Informational only — real occupancy is always derived from booking_beds
	// date ranges, never from this flag.
	Status string `json:"status" gorm:"column:status;size:32;default:available"`
}
