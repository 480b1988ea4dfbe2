package settlementrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/pg"
	"github.com/jaeminpark/tutorlink/internal/service/settlementservice"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var settlementColumns = []string{
	"id", "tutor_id", "year_month", "total_sessions", "total_amount",
	"platform_fee", "pg_fee", "net_amount", "is_paid", "paid_at", "created_at",
}

func TestRepository_FindByTutorAndMonth(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		tutorID   int
		yearMonth string
		mockSetup func()
		expectErr bool
		result    *domain.Settlement
	}{
		{
			name:      "Settlement exists",
			tutorID:   10,
			yearMonth: "2026-02",
			mockSetup: func() {
				rows := pgxmock.NewRows(settlementColumns).
					AddRow(1, 10, "2026-02", 8, domain.Money(400000), domain.Money(20000),
						domain.Money(12000), domain.Money(368000), false, nil, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM settlements WHERE tutor_id = $1 AND year_month = $2")).
					WithArgs(10, "2026-02").
					WillReturnRows(rows)
			},
			result: &domain.Settlement{
				ID: 1, TutorID: 10, YearMonth: "2026-02", TotalSessions: 8,
				TotalAmount: 400000, PlatformFee: 20000, PGFee: 12000, NetAmount: 368000,
				CreatedAt: createdAt,
			},
		},
		{
			name:      "Settlement does not exist",
			tutorID:   10,
			yearMonth: "2026-03",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM settlements WHERE tutor_id = $1 AND year_month = $2")).
					WithArgs(10, "2026-03").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:      "Database error",
			tutorID:   10,
			yearMonth: "2026-02",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM settlements WHERE tutor_id = $1 AND year_month = $2")).
					WithArgs(10, "2026-02").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByTutorAndMonth(context.Background(), tt.tutorID, tt.yearMonth)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_CreateSettlement(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	createdAt := time.Now()
	settlement := &domain.Settlement{
		TutorID: 10, YearMonth: "2026-02", TotalSessions: 8,
		TotalAmount: 400000, PlatformFee: 20000, PGFee: 12000, NetAmount: 368000,
		CreatedAt: createdAt,
	}

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO settlements (tutor_id, year_month, total_sessions, total_amount, platform_fee, pg_fee, net_amount, is_paid, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id")).
		WithArgs(10, "2026-02", 8, domain.Money(400000), domain.Money(20000),
			domain.Money(12000), domain.Money(368000), false, createdAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

	err := repo.CreateSettlement(context.Background(), settlement)

	assert.NoError(t, err)
	assert.Equal(t, 5, settlement.ID)
}

func TestRepository_MarkAsPaid(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	paidAt := time.Now()
	createdAt := paidAt.AddDate(0, 0, -3)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Times(2)

	rows := pgxmock.NewRows(settlementColumns).
		AddRow(5, 10, "2026-02", 8, domain.Money(400000), domain.Money(20000),
			domain.Money(12000), domain.Money(368000), true, &paidAt, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE settlements SET is_paid = TRUE, paid_at = $1 WHERE id = $2 RETURNING *")).
		WithArgs(paidAt, 5).
		WillReturnRows(rows)

	result, err := repo.MarkAsPaid(context.Background(), 5, paidAt)

	assert.NoError(t, err)
	assert.True(t, result.IsPaid)
	assert.Equal(t, &paidAt, result.PaidAt)

	// Unknown id yields no rows and no error.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE settlements SET is_paid = TRUE, paid_at = $1 WHERE id = $2 RETURNING *")).
		WithArgs(paidAt, 99).
		WillReturnError(pgx.ErrNoRows)

	result, err = repo.MarkAsPaid(context.Background(), 99, paidAt)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRepository_ListPending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Now()

	rows := pgxmock.NewRows(settlementColumns).
		AddRow(1, 10, "2026-02", 8, domain.Money(400000), domain.Money(20000),
			domain.Money(12000), domain.Money(368000), false, nil, createdAt).
		AddRow(2, 11, "2026-02", 4, domain.Money(180000), domain.Money(9000),
			domain.Money(5400), domain.Money(165600), false, nil, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM settlements WHERE is_paid = FALSE AND ($1 = '' OR year_month = $1) ORDER BY year_month ASC, tutor_id ASC")).
		WithArgs("2026-02").
		WillReturnRows(rows)

	settlements, err := repo.ListPending(context.Background(), "2026-02")

	assert.NoError(t, err)
	assert.Len(t, settlements, 2)
	assert.Equal(t, 10, settlements[0].TutorID)
	assert.Equal(t, 11, settlements[1].TutorID)
}

func TestRepository_GetTutorRevenueForMonth(t *testing.T) {
	repo, mock, _ := NewMock(t)

	monthStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "hourly_rate", "session_count"}).
		AddRow(10, domain.Money(50000), 8).
		AddRow(11, domain.Money(45000), 4)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.id, t.hourly_rate, count(bs.id) AS session_count FROM tutors t")).
		WithArgs(monthStart, monthEnd).
		WillReturnRows(rows)

	revenues, err := repo.GetTutorRevenueForMonth(context.Background(), monthStart, monthEnd)

	assert.NoError(t, err)
	assert.Equal(t, []settlementservice.TutorRevenue{
		{TutorID: 10, TotalSessions: 8, TotalAmount: 400000},
		{TutorID: 11, TotalSessions: 4, TotalAmount: 180000},
	}, revenues)
}
