package services

import (
	"math"

	"hostel-backend/models"
)

const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPartial = "Partial"
	PaymentStatusUnpaid  = "Unpaid"
)

// Commission rate charged by each channel on the base amount.
var otaCommissionRates = map[string]float64{
	"Direct":      0,
	"Website":     0.05,
	"Booking.com": 0.15,
	"Hostelworld": 0.15,
	"Makemytrip":  0.20,
	"Extension":   0,
}

const gstRateOnCommission = 0.18

// ApplyPricing fills every server-computed money field from base amount,
// OTA channel and payment received. Amounts are whole rupees.
func ApplyPricing(b *models.Booking) {
	rate := otaCommissionRates[b.OTAName]

	b.Commission = math.Round(b.BaseAmount * rate)
	b.GST = math.Round(b.Commission * gstRateOnCommission)
	b.ProfitAfterComm = b.BaseAmount - b.Commission - b.GST

	pending := b.BaseAmount - b.PaymentReceived
	if pending < 0 {
		pending = 0
	}
	b.PendingAmount = pending

	switch {
	case b.PaymentReceived >= b.BaseAmount:
		b.PaymentStatus = PaymentStatusPaid
	case b.PaymentReceived > 0:
		b.PaymentStatus = PaymentStatusPartial
	default:
		b.PaymentStatus = PaymentStatusUnpaid
	}
}
