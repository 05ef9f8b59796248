package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OTA source channels a booking can come from.
var OTAOptions = []string{"Direct", "Website", "Booking.com", "Hostelworld", "Makemytrip", "Extension"}

func IsValidOTA(name string) bool {
	for _, o := range OTAOptions {
		if o == name {
			return true
		}
	}
	return false
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"booking_id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingName    string `gorm:"column:booking_name;size:255" json:"booking_name"`
	OTAName        string `gorm:"column:ota_name;size:64" json:"ota_name"`
	NumberOfAdults int    `gorm:"column:number_of_adults;default:1" json:"number_of_adults"`
	ContactNumber  string `gorm:"column:contact_number;size:32" json:"contact_number"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"-"`
	CheckOut *time.Time `gorm:"column:check_out" json:"-"`

	// Wire format for dates is plain YYYY-MM-DD; filled from CheckIn/CheckOut
	// before responses are written.
	CheckInStr  string `gorm:"-" json:"check_in"`
	CheckOutStr string `gorm:"-" json:"check_out"`

	NumberOfNights int `gorm:"column:number_of_nights" json:"number_of_nights"`

	BaseAmount      float64 `gorm:"column:base_amount" json:"base_amount"`
	Commission      float64 `gorm:"column:commission" json:"commission"`
	GST             float64 `gorm:"column:gst" json:"gst"`
	PaymentReceived float64 `gorm:"column:payment_received;default:0" json:"payment_received"`
	PendingAmount   float64 `gorm:"column:pending_amount" json:"pending_amount"`
	PaymentStatus   string  `gorm:"column:payment_status;size:32" json:"payment_status"`
	ProfitAfterComm float64 `gorm:"column:profit_after_commission" json:"profit_after_commission"`

	Bank      string `gorm:"column:bank;size:128" json:"bank"`
	OtherInfo string `gorm:"column:other_info;type:text" json:"other_info"`

	// Proposed adult distribution, room id -> assigned adult count. The client
	// only ever proposes counts; the server resolves counts to concrete beds
	// in booking_rooms / booking_beds.
	GuestsPerRoom datatypes.JSON `gorm:"column:guests_per_room" json:"guests_per_room,omitempty"`

	Rooms []BookingRoom `gorm:"foreignKey:BookingID" json:"rooms,omitempty"`
}
