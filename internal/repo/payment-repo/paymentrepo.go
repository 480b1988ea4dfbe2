package paymentrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/pg"
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

func (r *Repository) FindByBookingID(ctx context.Context, bookingID int) (*domain.Payment, error) {
	query := `
        SELECT *
        FROM payments
        WHERE booking_id = $1
    `
	row := r.db.QueryRow(ctx, query, bookingID)

	var p domain.Payment
	err := row.Scan(&p.ID, &p.BookingID, &p.Amount, &p.FeeRate, &p.FeeAmount, &p.NetAmount,
		&p.Status, &p.PaidAt, &p.RefundedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (booking_id, amount, fee_rate, fee_amount, net_amount, status, paid_at, refunded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			payment.BookingID, payment.Amount, payment.FeeRate, payment.FeeAmount,
			payment.NetAmount, payment.Status, payment.PaidAt, payment.RefundedAt)
		if err := row.Scan(&payment.ID); err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, payment *domain.Payment) error {
	query := `
        UPDATE payments
        SET status = $1, paid_at = $2, refunded_at = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			payment.Status, payment.PaidAt, payment.RefundedAt, payment.ID)
		if err != nil {
			zap.L().Error("failed to update payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
