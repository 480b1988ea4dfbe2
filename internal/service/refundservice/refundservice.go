package refundservice

import (
	"context"
	"fmt"
	"time"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"go.uber.org/zap"
)

type BookingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	ListSessions(ctx context.Context, bookingID int) ([]domain.BookingSession, error)
	CountNoShowsInMonth(ctx context.Context, tutorID, studentID int, yearMonth string) (int, error)
}

type PaymentRepo interface {
	FindByBookingID(ctx context.Context, bookingID int) (*domain.Payment, error)
}

type TutorRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Tutor, error)
}

type Service struct {
	bookingRepo BookingRepo
	paymentRepo PaymentRepo
	tutorRepo   TutorRepo
	now         func() time.Time
}

func New(bookingRepo BookingRepo, paymentRepo PaymentRepo, tutorRepo TutorRepo) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		tutorRepo:   tutorRepo,
		now:         time.Now,
	}
}

// CalculateRefund computes the refund breakdown for a paid booking.
//
// The per-session rate is total paid divided by total sessions with the
// remainder absorbed, an intentional round-down in the platform's favor.
// Free no-shows under the tutor's policy count as refundable sessions.
// Platform fee is refunded proportionally; the PG fee never is.
func (s *Service) CalculateRefund(ctx context.Context, bookingID int) (*domain.RefundBreakdown, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}

	payment, err := s.paymentRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrPaymentNotFound
	}
	if payment.Status != domain.PaymentPaid {
		return nil, domain.NewError(
			domain.ErrPaymentNotPaid.Code,
			fmt.Sprintf("payment not paid, current status: %s", payment.Status),
		)
	}

	sessions, err := s.bookingRepo.ListSessions(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	tutor, err := s.tutorRepo.FindByID(ctx, booking.TutorID)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, domain.ErrTutorNotFound
	}

	noShowCount := 0
	cancelledCount := 0
	for _, sess := range sessions {
		switch sess.Status {
		case domain.SessionNoShow:
			noShowCount++
		case domain.SessionCancelled:
			cancelledCount++
		}
	}

	billable, err := s.billableNoShows(ctx, booking, tutor.NoShowPolicy, noShowCount)
	if err != nil {
		return nil, err
	}

	b := buildBreakdown(breakdownInput{
		bookingID:         bookingID,
		totalPaid:         payment.Amount,
		feeRate:           payment.FeeRate,
		totalSessions:     booking.TotalSessions,
		completedSessions: booking.CompletedSessions,
		noShowCount:       noShowCount,
		billableNoShows:   billable,
		cancelledCount:    cancelledCount,
		policy:            tutor.NoShowPolicy,
	})

	zap.L().Info("refund calculated",
		zap.Int("booking_id", bookingID),
		zap.Int64("refund", int64(b.FinalRefund)),
		zap.Int("refundable_sessions", b.RefundableSessions),
	)
	return b, nil
}

// billableNoShows applies the monthly policy to the booking's accumulated
// no-show history.
func (s *Service) billableNoShows(ctx context.Context, booking *domain.Booking, policy domain.NoShowPolicy, noShowCount int) (int, error) {
	switch policy {
	case domain.PolicyFullDeduction:
		return noShowCount, nil
	case domain.PolicyNone:
		return 0, nil
	case domain.PolicyOneFree:
		yearMonth := s.now().Format("2006-01")
		monthlyCount, err := s.bookingRepo.CountNoShowsInMonth(ctx, booking.TutorID, booking.StudentID, yearMonth)
		if err != nil {
			return 0, err
		}
		// The free pass belongs to this booking only when the month's
		// first no-show happened here.
		if monthlyCount <= 1 {
			if noShowCount > 0 {
				return noShowCount - 1, nil
			}
			return 0, nil
		}
		return noShowCount, nil
	}
	return noShowCount, nil
}

type breakdownInput struct {
	bookingID         int
	totalPaid         domain.Money
	feeRate           float64
	totalSessions     int
	completedSessions int
	noShowCount       int
	billableNoShows   int
	cancelledCount    int
	policy            domain.NoShowPolicy
}

func buildBreakdown(in breakdownInput) *domain.RefundBreakdown {
	var sessionRate domain.Money
	if in.totalSessions > 0 {
		sessionRate = in.totalPaid / domain.Money(in.totalSessions)
	}

	completedCost := sessionRate * domain.Money(in.completedSessions)
	noShowCost := sessionRate * domain.Money(in.billableNoShows)

	remaining := in.totalSessions - in.completedSessions - in.noShowCount - in.cancelledCount
	refundable := remaining + (in.noShowCount - in.billableNoShows)
	refundAmount := sessionRate * domain.Money(refundable)
	platformFeeRefund := refundAmount.CalculateFee(in.feeRate)

	b := &domain.RefundBreakdown{
		BookingID:            in.bookingID,
		TotalPaid:            in.totalPaid,
		TotalSessions:        in.totalSessions,
		CompletedSessions:    in.completedSessions,
		NoShowCount:          in.noShowCount,
		BillableNoShowCount:  in.billableNoShows,
		CancelledCount:       in.cancelledCount,
		RemainingSessions:    remaining,
		SessionRate:          sessionRate,
		CompletedSessionCost: completedCost,
		NoShowCost:           noShowCost,
		RefundableSessions:   refundable,
		RefundAmount:         refundAmount,
		PlatformFeeRefund:    platformFeeRefund,
		PGFee:                0,
		FinalRefund:          refundAmount,
		PolicyDescription:    policyDescription(in.policy, in.billableNoShows, in.noShowCount),
	}
	b.Items = buildItems(b)
	return b
}

func buildItems(b *domain.RefundBreakdown) []domain.BreakdownItem {
	items := []domain.BreakdownItem{
		{
			Label:       "총 결제 금액",
			Value:       b.TotalPaid.String(),
			Description: fmt.Sprintf("%d회 수업 예약", b.TotalSessions),
		},
	}

	if b.CompletedSessions > 0 {
		items = append(items, domain.BreakdownItem{
			Label:       "완료된 수업",
			Value:       "-" + b.CompletedSessionCost.String(),
			Description: fmt.Sprintf("%d회 × %s", b.CompletedSessions, b.SessionRate),
		})
	}

	if b.BillableNoShowCount > 0 {
		desc := fmt.Sprintf("%d회 × %s", b.BillableNoShowCount, b.SessionRate)
		if free := b.NoShowCount - b.BillableNoShowCount; free > 0 {
			desc += fmt.Sprintf(" (무결석 적용: %d회 무료)", free)
		}
		items = append(items, domain.BreakdownItem{
			Label:       "결석 차감",
			Value:       "-" + b.NoShowCost.String(),
			Description: desc,
		})
	}

	if b.RefundableSessions > 0 {
		items = append(items, domain.BreakdownItem{
			Label:       "환불 가능 수업",
			Value:       fmt.Sprintf("%d회", b.RefundableSessions),
			Description: fmt.Sprintf("%d회 × %s = %s", b.RefundableSessions, b.SessionRate, b.RefundAmount),
		})
	}

	items = append(items, domain.BreakdownItem{
		Label:       "예상 환불액",
		Value:       b.FinalRefund.String(),
		Description: "환불 처리까지 영업일 3-5일 소요",
		IsTotal:     true,
	})
	return items
}

func policyDescription(policy domain.NoShowPolicy, billableCount, totalCount int) string {
	switch policy {
	case domain.PolicyFullDeduction:
		return "무단 결석 시 수업료 전액 차감"
	case domain.PolicyOneFree:
		if totalCount > 0 {
			freeUsed := 0
			if billableCount < totalCount {
				freeUsed = 1
			}
			return fmt.Sprintf("월 1회 무결석 (이번 달: %d/1 사용)", freeUsed)
		}
		return "월 1회 무결석 허용"
	case domain.PolicyNone:
		return "결석 시 별도 협의 (수업료 차감 없음)"
	}
	return ""
}
