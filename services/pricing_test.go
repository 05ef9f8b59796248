package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyPricingBookingCom(t *testing.T) {
	b := models.Booking{OTAName: "Booking.com", BaseAmount: 1000, PaymentReceived: 400}
	ApplyPricing(&b)

	assert.Equal(t, float64(150), b.Commission)
	assert.Equal(t, float64(27), b.GST)
	assert.Equal(t, float64(823), b.ProfitAfterComm)
	assert.Equal(t, float64(600), b.PendingAmount)
	assert.Equal(t, PaymentStatusPartial, b.PaymentStatus)
}

func TestApplyPricingDirectNoCommission(t *testing.T) {
	b := models.Booking{OTAName: "Direct", BaseAmount: 1500, PaymentReceived: 1500}
	ApplyPricing(&b)

	assert.Zero(t, b.Commission)
	assert.Zero(t, b.GST)
	assert.Equal(t, float64(1500), b.ProfitAfterComm)
	assert.Zero(t, b.PendingAmount)
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
}

func TestApplyPricingUnpaid(t *testing.T) {
	b := models.Booking{OTAName: "Makemytrip", BaseAmount: 2000}
	ApplyPricing(&b)

	assert.Equal(t, float64(400), b.Commission)
	assert.Equal(t, float64(72), b.GST)
	assert.Equal(t, float64(1528), b.ProfitAfterComm)
	assert.Equal(t, float64(2000), b.PendingAmount)
	assert.Equal(t, PaymentStatusUnpaid, b.PaymentStatus)
}

func TestApplyPricingOverpaymentClampsPending(t *testing.T) {
	b := models.Booking{OTAName: "Website", BaseAmount: 1000, PaymentReceived: 1200}
	ApplyPricing(&b)

	assert.Zero(t, b.PendingAmount)
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
}

func TestApplyPricingRoundsToWholeRupees(t *testing.T) {
	b := models.Booking{OTAName: "Hostelworld", BaseAmount: 999}
	ApplyPricing(&b)

	// 999 * 0.15 = 149.85 → 150; 150 * 0.18 = 27
	assert.Equal(t, float64(150), b.Commission)
	assert.Equal(t, float64(27), b.GST)
	assert.Equal(t, float64(822), b.ProfitAfterComm)
}
