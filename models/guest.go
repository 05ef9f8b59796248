package models

import (
	"time"
)

// Guest is one check-in form submission.
type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	BookingID *uint `gorm:"index;column:booking_id" json:"booking_id"`

	FirstName string `gorm:"column:first_name;size:100" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:100" json:"last_name"`
	Birthday  string `gorm:"column:birthday;size:10" json:"birthday"`
	Email     string `gorm:"column:email;size:150" json:"email"`
	Phone     string `gorm:"column:phone;size:32" json:"phone"`
	City      string `gorm:"column:city;size:100" json:"city"`
	Country   string `gorm:"column:country;size:100" json:"country"`
	Gender    string `gorm:"column:gender;size:32" json:"gender"`

	PurposeOfVisit  string `gorm:"column:purpose_of_visit;size:128" json:"purpose_of_visit"`
	HowHeardAboutUs string `gorm:"column:how_heard_about_us;size:128" json:"how_heard_about_us"`
	StayedBefore    bool   `gorm:"column:stayed_before" json:"stayed_before"`

	IDType   string `gorm:"column:id_type;size:64" json:"id_type"`
	IDNumber string `gorm:"column:id_number;size:64" json:"id_number"`

	// URLs only — the files themselves live in external storage.
	IDFront   string `gorm:"column:id_front;size:255" json:"id_front"`
	IDBack    string `gorm:"column:id_back;size:255" json:"id_back"`
	Signature string `gorm:"column:signature;size:255" json:"signature"`

	AgreeTnc      bool `gorm:"column:agree_tnc" json:"agree_tnc"`
	AgreeCheckout bool `gorm:"column:agree_checkout" json:"agree_checkout"`
}
