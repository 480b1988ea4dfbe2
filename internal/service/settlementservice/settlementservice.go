package settlementservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	PlatformFeeRate = 0.05
	PGFeeRate       = 0.03

	disburseWorkers = 4
)

// TutorRevenue is one tutor's completed-session revenue for a month.
type TutorRevenue struct {
	TutorID       int
	TotalSessions int
	TotalAmount   domain.Money
}

type Repo interface {
	FindByTutorAndMonth(ctx context.Context, tutorID int, yearMonth string) (*domain.Settlement, error)
	CreateSettlement(ctx context.Context, settlement *domain.Settlement) error
	MarkAsPaid(ctx context.Context, settlementID int, paidAt time.Time) (*domain.Settlement, error)
	ListPending(ctx context.Context, yearMonth string) ([]domain.Settlement, error)
	GetTutorRevenueForMonth(ctx context.Context, monthStart, monthEnd time.Time) ([]TutorRevenue, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// BatchResult accumulates per-item outcomes of a settlement batch. One
// tutor's failure never aborts the run.
type BatchResult struct {
	Processed int
	Failed    int
	Errors    []string
}

// MonthRange returns the inclusive first and last day of a "YYYY-MM"
// month.
func MonthRange(yearMonth string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateFormat
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// CalculateMonthlySettlements creates one settlement per tutor with
// completed sessions in the month. Revenue is hourly rate times session
// count; sessions are assumed to be one hour, so varying durations would
// need explicit tracking before this model could bill them. An existing
// (tutor, month) settlement is recorded as a failure and never
// overwritten.
func (s *Service) CalculateMonthlySettlements(ctx context.Context, yearMonth string) (*BatchResult, error) {
	monthStart, monthEnd, err := MonthRange(yearMonth)
	if err != nil {
		return nil, err
	}

	revenues, err := s.repo.GetTutorRevenueForMonth(ctx, monthStart, monthEnd)
	if err != nil {
		zap.L().Error("failed to aggregate tutor revenue", zap.String("year_month", yearMonth), zap.Error(err))
		return nil, err
	}

	result := &BatchResult{}
	for _, rev := range revenues {
		if err := s.settleTutor(ctx, rev, yearMonth); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("tutor %d: %v", rev.TutorID, err))
			continue
		}
		result.Processed++
	}

	zap.L().Info("monthly settlement run finished",
		zap.String("year_month", yearMonth),
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *Service) settleTutor(ctx context.Context, rev TutorRevenue, yearMonth string) error {
	existing, err := s.repo.FindByTutorAndMonth(ctx, rev.TutorID, yearMonth)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewError(
			domain.ErrSettlementExists.Code,
			fmt.Sprintf("settlement for %s already exists (ID: %d)", yearMonth, existing.ID),
		)
	}

	platformFee := rev.TotalAmount.CalculateFee(PlatformFeeRate)
	pgFee := rev.TotalAmount.CalculateFee(PGFeeRate)
	net, err := rev.TotalAmount.Subtract(platformFee.Add(pgFee))
	if err != nil {
		return err
	}

	return s.repo.CreateSettlement(ctx, &domain.Settlement{
		TutorID:       rev.TutorID,
		YearMonth:     yearMonth,
		TotalSessions: rev.TotalSessions,
		TotalAmount:   rev.TotalAmount,
		PlatformFee:   platformFee,
		PGFee:         pgFee,
		NetAmount:     net,
		IsPaid:        false,
		CreatedAt:     s.now(),
	})
}

// MarkAsPaid flips a settlement to paid. It is the only transition out of
// pending.
func (s *Service) MarkAsPaid(ctx context.Context, settlementID int, paidAt *time.Time) (*domain.Settlement, error) {
	at := s.now()
	if paidAt != nil {
		at = *paidAt
	}
	settlement, err := s.repo.MarkAsPaid(ctx, settlementID, at)
	if err != nil {
		zap.L().Error("failed to mark settlement paid", zap.Int("settlement_id", settlementID), zap.Error(err))
		return nil, err
	}
	if settlement == nil {
		return nil, domain.ErrSettlementNotFound
	}
	return settlement, nil
}

func (s *Service) ListPending(ctx context.Context, yearMonth string) ([]domain.Settlement, error) {
	if yearMonth != "" {
		if _, err := time.Parse("2006-01", yearMonth); err != nil {
			return nil, domain.ErrInvalidDateFormat
		}
	}
	return s.repo.ListPending(ctx, yearMonth)
}

// DisbursePayments marks pending settlements (optionally for one month)
// as paid. Bank transfer happens outside this core; this records the
// outcome.
func (s *Service) DisbursePayments(ctx context.Context, yearMonth string) (*BatchResult, error) {
	pending, err := s.ListPending(ctx, yearMonth)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	result := &BatchResult{}

	var g errgroup.Group
	g.SetLimit(disburseWorkers)
	for _, settlement := range pending {
		settlement := settlement
		g.Go(func() error {
			_, err := s.repo.MarkAsPaid(ctx, settlement.ID, s.now())

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("settlement %d: %v", settlement.ID, err))
				return nil
			}
			result.Processed++
			return nil
		})
	}
	_ = g.Wait()

	zap.L().Info("disbursement run finished",
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
