package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jaeminpark/tutorlink/internal/config"
	"github.com/jaeminpark/tutorlink/internal/service/attendanceservice"
	"github.com/jaeminpark/tutorlink/internal/service/settlementservice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockAttendanceService, *MockSettlementService) {
	cfg := &config.Config{
		AttendanceInterval: time.Hour,
		SettlementInterval: 24 * time.Hour,
	}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := NewMockAttendanceService(ctrl)
	settlement := NewMockSettlementService(ctrl)
	service := New(cfg, attendance, settlement)
	return service, attendance, settlement
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_runAutoAttendance(t *testing.T) {
	tests := []struct {
		name      string
		result    *attendanceservice.AutoMarkResult
		err       error
		expectErr bool
	}{
		{
			name:   "marks overdue sessions",
			result: &attendanceservice.AutoMarkResult{Processed: 3, Failed: 1, Errors: []string{"session 9: booking not found"}},
		},
		{
			name:   "nothing to process",
			result: &attendanceservice.AutoMarkResult{},
		},
		{
			name:      "service error",
			err:       errors.New("database error"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, attendance, _ := NewMock(t)

			attendance.EXPECT().
				AutoMarkAttendanceDeadline(gomock.Any()).
				Return(tt.result, tt.err).
				Times(1)

			err := service.runAutoAttendance(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_runMonthlySettlement(t *testing.T) {
	tests := []struct {
		name              string
		now               time.Time
		expectedYearMonth string
		result            *settlementservice.BatchResult
		err               error
		expectErr         bool
	}{
		{
			name:              "settles previous month",
			now:               time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			expectedYearMonth: "2026-02",
			result:            &settlementservice.BatchResult{Processed: 2},
		},
		{
			name:              "January rolls back to December",
			now:               time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			expectedYearMonth: "2025-12",
			result:            &settlementservice.BatchResult{Processed: 1},
		},
		{
			name:              "month-end does not skip a month",
			now:               time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC),
			expectedYearMonth: "2026-02",
			result:            &settlementservice.BatchResult{},
		},
		{
			name:              "service error",
			now:               time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			expectedYearMonth: "2026-02",
			err:               errors.New("database error"),
			expectErr:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, settlement := NewMock(t)
			service.now = func() time.Time { return tt.now }

			settlement.EXPECT().
				CalculateMonthlySettlements(gomock.Any(), tt.expectedYearMonth).
				Return(tt.result, tt.err).
				Times(1)

			err := service.runMonthlySettlement(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
