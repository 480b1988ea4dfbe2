package batch

import (
	"context"
	"time"

	"github.com/jaeminpark/tutorlink/internal/config"
	"github.com/jaeminpark/tutorlink/internal/service/attendanceservice"
	"github.com/jaeminpark/tutorlink/internal/service/settlementservice"
	"go.uber.org/zap"
)

type AttendanceService interface {
	AutoMarkAttendanceDeadline(ctx context.Context) (*attendanceservice.AutoMarkResult, error)
}

type SettlementService interface {
	CalculateMonthlySettlements(ctx context.Context, yearMonth string) (*settlementservice.BatchResult, error)
}

type Service struct {
	attendanceService  AttendanceService
	settlementService  SettlementService
	workerPool         WorkerPoolI
	attendanceInterval time.Duration
	settlementInterval time.Duration
	now                func() time.Time
}

func New(cfg *config.Config, attendanceService AttendanceService, settlementService SettlementService) *Service {
	return &Service{
		attendanceService:  attendanceService,
		settlementService:  settlementService,
		workerPool:         NewWorkerPool(2),
		attendanceInterval: cfg.AttendanceInterval,
		settlementInterval: cfg.SettlementInterval,
		now:                time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Batch service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	attendanceTicker := time.NewTicker(s.attendanceInterval)
	defer attendanceTicker.Stop()
	settlementTicker := time.NewTicker(s.settlementInterval)
	defer settlementTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping batch service")
			s.workerPool.Close()
			return
		case <-attendanceTicker.C:
			s.enqueue(ctx, "auto attendance", func() error {
				return s.runAutoAttendance(ctx)
			})
		case <-settlementTicker.C:
			s.enqueue(ctx, "monthly settlement", func() error {
				return s.runMonthlySettlement(ctx)
			})
		}
	}
}

func (s *Service) enqueue(ctx context.Context, name string, run func() error) {
	if err := s.workerPool.AddTask(ctx, Task{Name: name, Run: run}); err != nil {
		zap.L().Error("Failed to enqueue batch job", zap.String("job", name), zap.Error(err))
	}
}

func (s *Service) runAutoAttendance(ctx context.Context) error {
	result, err := s.attendanceService.AutoMarkAttendanceDeadline(ctx)
	if err != nil {
		return err
	}
	if result.Processed > 0 || result.Failed > 0 {
		zap.L().Info("Auto attendance pass finished",
			zap.Int("processed", result.Processed),
			zap.Int("failed", result.Failed),
		)
	}
	return nil
}

// Settlement runs cover the previous calendar month; tutors already
// settled for that month are skipped by the settlement service.
func (s *Service) runMonthlySettlement(ctx context.Context) error {
	now := s.now()
	yearMonth := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location()).Format("2006-01")

	result, err := s.settlementService.CalculateMonthlySettlements(ctx, yearMonth)
	if err != nil {
		return err
	}
	zap.L().Info("Monthly settlement pass finished",
		zap.String("yearMonth", yearMonth),
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed),
	)
	return nil
}
