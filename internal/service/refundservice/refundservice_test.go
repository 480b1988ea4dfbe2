package refundservice

import (
	"context"
	"testing"
	"time"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockBookingRepo, *MockPaymentRepo, *MockTutorRepo) {
	ctrl := gomock.NewController(t)
	bookingRepo := NewMockBookingRepo(ctrl)
	paymentRepo := NewMockPaymentRepo(ctrl)
	tutorRepo := NewMockTutorRepo(ctrl)
	service := New(bookingRepo, paymentRepo, tutorRepo)
	service.now = func() time.Time { return testNow }
	defer ctrl.Finish()
	return service, bookingRepo, paymentRepo, tutorRepo
}

func sessionWithStatus(id int, status domain.SessionStatus) domain.BookingSession {
	return domain.BookingSession{ID: id, BookingID: 1, Status: status}
}

func paidPayment(amount domain.Money) *domain.Payment {
	return &domain.Payment{ID: 1, BookingID: 1, Amount: amount, FeeRate: 0.05, Status: domain.PaymentPaid}
}

func TestCalculateRefundGuards(t *testing.T) {
	service, bookingRepo, paymentRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "booking not found",
			prepareMock: func() {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrBookingNotFound,
		},
		{
			name: "payment not found",
			prepareMock: func() {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.Booking{ID: 1, TutorID: 10, TotalSessions: 4}, nil)
				paymentRepo.EXPECT().FindByBookingID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrPaymentNotFound,
		},
		{
			name: "payment pending",
			prepareMock: func() {
				bookingRepo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.Booking{ID: 1, TutorID: 10, TotalSessions: 4}, nil)
				paymentRepo.EXPECT().FindByBookingID(gomock.Any(), 1).
					Return(&domain.Payment{ID: 1, Status: domain.PaymentPending}, nil)
			},
			expectedError: domain.ErrPaymentNotPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.CalculateRefund(context.Background(), 1)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestCalculateRefundFullDeduction(t *testing.T) {
	service, bookingRepo, paymentRepo, tutorRepo := NewMock(t)

	// 200,000 won for 4 sessions: 1 completed, 1 no-show, 2 remaining.
	bookingRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.Booking{ID: 1, StudentID: 1, TutorID: 10, TotalSessions: 4, CompletedSessions: 1}, nil)
	paymentRepo.EXPECT().FindByBookingID(gomock.Any(), 1).Return(paidPayment(200000), nil)
	bookingRepo.EXPECT().ListSessions(gomock.Any(), 1).Return([]domain.BookingSession{
		sessionWithStatus(1, domain.SessionCompleted),
		sessionWithStatus(2, domain.SessionNoShow),
		sessionWithStatus(3, domain.SessionScheduled),
		sessionWithStatus(4, domain.SessionScheduled),
	}, nil)
	tutorRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Tutor{ID: 10, NoShowPolicy: domain.PolicyFullDeduction, IsApproved: true}, nil)

	b, err := service.CalculateRefund(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.Money(50000), b.SessionRate)
	assert.Equal(t, 1, b.BillableNoShowCount)
	assert.Equal(t, 2, b.RefundableSessions)
	assert.Equal(t, domain.Money(100000), b.RefundAmount)
	assert.Equal(t, domain.Money(5000), b.PlatformFeeRefund)
	assert.Equal(t, domain.Money(0), b.PGFee)
	assert.Equal(t, domain.Money(100000), b.FinalRefund)
	assert.NotEmpty(t, b.Items)
	assert.True(t, b.Items[len(b.Items)-1].IsTotal)
}

func TestCalculateRefundOneFreePolicy(t *testing.T) {
	service, bookingRepo, paymentRepo, tutorRepo := NewMock(t)

	// 2 no-shows under ONE_FREE with the month's first no-show in this
	// booking: one is forgiven and refundable, one is billed.
	bookingRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.Booking{ID: 1, StudentID: 1, TutorID: 10, TotalSessions: 4, CompletedSessions: 0}, nil)
	paymentRepo.EXPECT().FindByBookingID(gomock.Any(), 1).Return(paidPayment(200000), nil)
	bookingRepo.EXPECT().ListSessions(gomock.Any(), 1).Return([]domain.BookingSession{
		sessionWithStatus(1, domain.SessionNoShow),
		sessionWithStatus(2, domain.SessionNoShow),
		sessionWithStatus(3, domain.SessionScheduled),
		sessionWithStatus(4, domain.SessionScheduled),
	}, nil)
	tutorRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Tutor{ID: 10, NoShowPolicy: domain.PolicyOneFree, IsApproved: true}, nil)
	bookingRepo.EXPECT().CountNoShowsInMonth(gomock.Any(), 10, 1, "2026-03").Return(1, nil)

	b, err := service.CalculateRefund(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, b.NoShowCount)
	assert.Equal(t, 1, b.BillableNoShowCount)
	assert.Equal(t, 3, b.RefundableSessions)
	assert.Equal(t, domain.Money(150000), b.RefundAmount)
	assert.Equal(t, domain.Money(150000), b.FinalRefund)
}

func TestCalculateRefundNonePolicy(t *testing.T) {
	service, bookingRepo, paymentRepo, tutorRepo := NewMock(t)

	bookingRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.Booking{ID: 1, StudentID: 1, TutorID: 10, TotalSessions: 4, CompletedSessions: 2}, nil)
	paymentRepo.EXPECT().FindByBookingID(gomock.Any(), 1).Return(paidPayment(200000), nil)
	bookingRepo.EXPECT().ListSessions(gomock.Any(), 1).Return([]domain.BookingSession{
		sessionWithStatus(1, domain.SessionCompleted),
		sessionWithStatus(2, domain.SessionCompleted),
		sessionWithStatus(3, domain.SessionNoShow),
		sessionWithStatus(4, domain.SessionScheduled),
	}, nil)
	tutorRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Tutor{ID: 10, NoShowPolicy: domain.PolicyNone, IsApproved: true}, nil)

	b, err := service.CalculateRefund(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 0, b.BillableNoShowCount)
	assert.Equal(t, 2, b.RefundableSessions)
	assert.Equal(t, domain.Money(100000), b.FinalRefund)
}

func TestBuildBreakdownRoundsDown(t *testing.T) {
	b := buildBreakdown(breakdownInput{
		bookingID:     1,
		totalPaid:     100000,
		feeRate:       0.05,
		totalSessions: 3,
		policy:        domain.PolicyFullDeduction,
	})

	// 100,000 / 3 truncates; the remainder stays with the platform.
	assert.Equal(t, domain.Money(33333), b.SessionRate)
	assert.Equal(t, 3, b.RefundableSessions)
	assert.Equal(t, domain.Money(99999), b.RefundAmount)
}
