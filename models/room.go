package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"room_id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomName string `json:"room_name" gorm:"column:room_name;uniqueIndex;type:varchar(100)"`

	// Capacity is derived from the bed count; kept denormalized so the
	// dashboard can show it without loading beds. PUT /rooms/:id/update-capacity
	// recounts it after bed changes.
	Capacity int `json:"capacity" gorm:"column:capacity;default:0"`

	Beds []Bed `gorm:"foreignKey:RoomID" json:"beds"`
}
