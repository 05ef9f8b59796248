package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		BookingName:     "Asha Verma",
		OTAName:         "Booking.com",
		NumberOfAdults:  2,
		CheckIn:         "2024-05-01",
		CheckOut:        "2024-05-03",
		BaseAmount:      1200,
		PaymentReceived: 0,
		GuestsPerRoom:   map[string]int{"1": 2},
	}
}

func TestValidateBookingInputOK(t *testing.T) {
	assert.Empty(t, validateBookingInput(validInput()))
}

func TestValidateBookingInputMissingName(t *testing.T) {
	in := validInput()
	in.BookingName = "   "
	violations := validateBookingInput(in)
	assert.Contains(t, violations, "Booking name is required.")
}

func TestValidateBookingInputBadDates(t *testing.T) {
	in := validInput()
	in.CheckIn = ""
	in.CheckOut = "not-a-date"
	violations := validateBookingInput(in)
	assert.Contains(t, violations, "Check-in date is required.")
	assert.Contains(t, violations, "Check-out date is required.")

	in = validInput()
	in.CheckOut = in.CheckIn
	violations = validateBookingInput(in)
	assert.Contains(t, violations, "Check-out must be after check-in.")
}

func TestValidateBookingInputMoneyRules(t *testing.T) {
	in := validInput()
	in.BaseAmount = 0
	in.PaymentReceived = -5
	violations := validateBookingInput(in)
	assert.Contains(t, violations, "Base amount must be greater than 0.")
	assert.Contains(t, violations, "Paid amount can not be less than 0.")
}

func TestValidateBookingInputAssignmentMismatch(t *testing.T) {
	in := validInput()
	in.GuestsPerRoom = map[string]int{"1": 1}
	violations := validateBookingInput(in)
	assert.Contains(t, violations, "All adults must be assigned a room.")
}

func TestValidateBookingInputUnknownOTA(t *testing.T) {
	in := validInput()
	in.OTAName = "Expedia"
	violations := validateBookingInput(in)
	assert.True(t, len(violations) == 1 && strings.Contains(violations[0], "Unknown OTA"))
}

func TestValidateBookingInputCollectsEverything(t *testing.T) {
	in := CreateBookingInput{}
	violations := validateBookingInput(in)
	// name, adults, both dates, base amount
	assert.Len(t, violations, 5)
}
