package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/jaeminpark/tutorlink/docs"
	"github.com/jaeminpark/tutorlink/internal/repo"
	"github.com/jaeminpark/tutorlink/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	services := service.New(&repo.Repositories{})

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingHandler := NewMockBookingHandler(ctrl)
	mockAttendanceHandler := NewMockAttendanceHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockSettlementHandler := NewMockSettlementHandler(ctrl)

	h := &Handlers{
		BookingHandler:    mockBookingHandler,
		AttendanceHandler: mockAttendanceHandler,
		PaymentHandler:    mockPaymentHandler,
		SettlementHandler: mockSettlementHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	// All API routes sit behind the auth middleware.
	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/bookings", http.StatusUnauthorized},
		{"GET", "/api/bookings", http.StatusUnauthorized},
		{"GET", "/api/bookings/7", http.StatusUnauthorized},
		{"POST", "/api/bookings/7/approve", http.StatusUnauthorized},
		{"POST", "/api/bookings/7/reject", http.StatusUnauthorized},
		{"POST", "/api/bookings/7/cancel", http.StatusUnauthorized},
		{"GET", "/api/bookings/7/attendance", http.StatusUnauthorized},
		{"GET", "/api/bookings/7/refund/estimate", http.StatusUnauthorized},
		{"GET", "/api/bookings/7/refund/guide", http.StatusUnauthorized},
		{"POST", "/api/sessions/31/attendance", http.StatusUnauthorized},
		{"POST", "/api/sessions/31/no-show", http.StatusUnauthorized},
		{"GET", "/api/attendance/no-show-stats", http.StatusUnauthorized},
		{"POST", "/api/settlements/run", http.StatusUnauthorized},
		{"GET", "/api/settlements/pending", http.StatusUnauthorized},
		{"POST", "/api/settlements/3/pay", http.StatusUnauthorized},
		{"POST", "/api/settlements/disburse", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
