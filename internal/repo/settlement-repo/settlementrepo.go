package settlementrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/pg"
	"github.com/jaeminpark/tutorlink/internal/service/settlementservice"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByTutorAndMonth(ctx context.Context, tutorID int, yearMonth string) (*domain.Settlement, error) {
	query := `
        SELECT *
        FROM settlements
        WHERE tutor_id = $1 AND year_month = $2
    `
	row := r.db.QueryRow(ctx, query, tutorID, yearMonth)

	s, err := scanSettlement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find settlement", zap.Error(err))
		return nil, err
	}
	return s, nil
}

// CreateSettlement inserts a new settlement. The unique (tutor_id,
// year_month) constraint is the backstop against concurrent duplicate
// runs.
func (r *Repository) CreateSettlement(ctx context.Context, settlement *domain.Settlement) error {
	query := `
        INSERT INTO settlements (tutor_id, year_month, total_sessions, total_amount, platform_fee, pg_fee, net_amount, is_paid, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			settlement.TutorID, settlement.YearMonth, settlement.TotalSessions,
			settlement.TotalAmount, settlement.PlatformFee, settlement.PGFee,
			settlement.NetAmount, settlement.IsPaid, settlement.CreatedAt)
		if err := row.Scan(&settlement.ID); err != nil {
			zap.L().Error("can't create settlement", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) MarkAsPaid(ctx context.Context, settlementID int, paidAt time.Time) (*domain.Settlement, error) {
	query := `
        UPDATE settlements
        SET is_paid = TRUE, paid_at = $1
        WHERE id = $2
        RETURNING *
    `
	var result *domain.Settlement
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, paidAt, settlementID)
		s, err := scanSettlement(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't mark settlement paid", zap.Error(err))
			return err
		}
		result = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) ListPending(ctx context.Context, yearMonth string) ([]domain.Settlement, error) {
	query := `
        SELECT *
        FROM settlements
        WHERE is_paid = FALSE AND ($1 = '' OR year_month = $1)
        ORDER BY year_month ASC, tutor_id ASC
    `
	rows, err := r.db.Query(ctx, query, yearMonth)
	if err != nil {
		zap.L().Error("can't list pending settlements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settlements []domain.Settlement
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			zap.L().Error("can't scan settlement row", zap.Error(err))
			return nil, err
		}
		settlements = append(settlements, *s)
	}
	return settlements, nil
}

// GetTutorRevenueForMonth aggregates completed-session revenue per tutor
// for the inclusive date range. Revenue assumes one-hour sessions:
// hourly_rate times completed session count.
func (r *Repository) GetTutorRevenueForMonth(ctx context.Context, monthStart, monthEnd time.Time) ([]settlementservice.TutorRevenue, error) {
	query := `
        SELECT t.id, t.hourly_rate, count(bs.id) AS session_count
        FROM tutors t
        JOIN bookings b ON b.tutor_id = t.id
        JOIN booking_sessions bs ON bs.booking_id = b.id
        WHERE bs.session_date >= $1
          AND bs.session_date <= $2
          AND bs.status = 'COMPLETED'
          AND b.status IN ('APPROVED', 'IN_PROGRESS', 'COMPLETED')
        GROUP BY t.id, t.hourly_rate
        ORDER BY t.id ASC
    `
	rows, err := r.db.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		zap.L().Error("can't aggregate tutor revenue", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var revenues []settlementservice.TutorRevenue
	for rows.Next() {
		var tutorID int
		var hourlyRate domain.Money
		var sessionCount int
		if err := rows.Scan(&tutorID, &hourlyRate, &sessionCount); err != nil {
			zap.L().Error("can't scan revenue row", zap.Error(err))
			return nil, err
		}
		revenues = append(revenues, settlementservice.TutorRevenue{
			TutorID:       tutorID,
			TotalSessions: sessionCount,
			TotalAmount:   hourlyRate * domain.Money(sessionCount),
		})
	}
	return revenues, nil
}

func scanSettlement(row pgx.Row) (*domain.Settlement, error) {
	var s domain.Settlement
	err := row.Scan(&s.ID, &s.TutorID, &s.YearMonth, &s.TotalSessions, &s.TotalAmount,
		&s.PlatformFee, &s.PGFee, &s.NetAmount, &s.IsPaid, &s.PaidAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
