package tutorrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Tutor, error) {
	query := `
        SELECT *
        FROM tutors
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var t domain.Tutor
	err := row.Scan(&t.ID, &t.HourlyRate, &t.NoShowPolicy, &t.IsApproved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find tutor", zap.Error(err))
		return nil, err
	}
	return &t, nil
}
