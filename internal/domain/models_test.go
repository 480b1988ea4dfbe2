package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from     BookingStatus
		to       BookingStatus
		expected bool
	}{
		{BookingPending, BookingApproved, true},
		{BookingPending, BookingRejected, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingApproved, BookingInProgress, true},
		{BookingApproved, BookingCompleted, true},
		{BookingApproved, BookingCancelled, true},
		{BookingApproved, BookingPending, false},
		{BookingInProgress, BookingCompleted, true},
		{BookingInProgress, BookingCancelled, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingCancelled, BookingPending, false},
		{BookingRejected, BookingApproved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestPaymentFromGross(t *testing.T) {
	payment, err := PaymentFromGross(1, Money(200000), 0.05)
	assert.NoError(t, err)
	assert.Equal(t, Money(200000), payment.Amount)
	assert.Equal(t, Money(10000), payment.FeeAmount)
	assert.Equal(t, Money(190000), payment.NetAmount)
	assert.Equal(t, PaymentPending, payment.Status)

	// truncated fee leaves the remainder in net
	payment, err = PaymentFromGross(2, Money(33333), 0.05)
	assert.NoError(t, err)
	assert.Equal(t, Money(1666), payment.FeeAmount)
	assert.Equal(t, Money(31667), payment.NetAmount)
}

func TestSettlementMarkAsPaid(t *testing.T) {
	s := &Settlement{ID: 1, NetAmount: 368000}
	paidAt := time.Date(2026, 4, 5, 10, 0, 0, 0, time.UTC)

	s.MarkAsPaid(paidAt)

	assert.True(t, s.IsPaid)
	assert.Equal(t, paidAt, *s.PaidAt)
}
