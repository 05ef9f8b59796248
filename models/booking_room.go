package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingRoom is the resolved join between a booking and a room it occupies.
type BookingRoom struct {
	ID uint `gorm:"primaryKey" json:"booking_room_id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`
	RoomID    uint `gorm:"index;column:room_id" json:"room_id"`

	RoomName string `gorm:"-" json:"room_name"`

	Room Room         `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	Beds []BookingBed `gorm:"foreignKey:BookingRoomID" json:"beds"`
}

// BookingBed pins one physical bed for a booking. Each assignment carries its
// own sub-range so a bed can be swapped mid-stay without touching the others.
type BookingBed struct {
	ID uint `gorm:"primaryKey" json:"booking_bed_id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingRoomID uint `gorm:"index;column:booking_room_id" json:"booking_room_id"`
	BedID         uint `gorm:"index;column:bed_id" json:"bed_id"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"-"`
	CheckOut *time.Time `gorm:"column:check_out" json:"-"`

	CheckInStr  string `gorm:"-" json:"check_in"`
	CheckOutStr string `gorm:"-" json:"check_out"`

	BedName string `gorm:"-" json:"bed_name"`

	Bed Bed `gorm:"foreignKey:BedID;references:ID" json:"-"`
}
