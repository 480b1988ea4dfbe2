package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/dto"
	"github.com/jaeminpark/tutorlink/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BookingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, id string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"tutor_id":42,"slots":[{"date":"2026-03-15","start_time":"14:00","end_time":"15:00"}],"notes":"exam prep"}`
	booking := &domain.Booking{
		ID: 7, StudentID: 1, TutorID: 42, TotalSessions: 1, Status: domain.BookingPending, Notes: "exam prep",
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful booking creation",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateBookingRequest(gomock.Any(), 1, 42, gomock.Any(), "exam prep").
					Return(booking, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          "{not json",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "No slots",
			body:          `{"tutor_id":42,"slots":[]}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "at least one slot is required",
		},
		{
			name:          "Invalid slot time",
			body:          `{"tutor_id":42,"slots":[{"date":"2026-03-15","start_time":"15:00","end_time":"14:00"}]}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid slot",
		},
		{
			name: "Tutor not found",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateBookingRequest(gomock.Any(), 1, 42, gomock.Any(), "exam prep").
					Return(nil, domain.ErrTutorNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "tutor not found",
		},
		{
			name: "Schedule conflict",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateBookingRequest(gomock.Any(), 1, 42, gomock.Any(), "exam prep").
					Return(nil, domain.ErrScheduleConflict)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "schedule conflict",
		},
		{
			name: "Slot too soon",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateBookingRequest(gomock.Any(), 1, 42, gomock.Any(), "exam prep").
					Return(nil, domain.ErrSlotTooSoon)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateBookingRequest(gomock.Any(), 1, 42, gomock.Any(), "exam prep").
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/bookings", tt.body, "")
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.BookingResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, dto.BookingToDTO(booking), body)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Booking found",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().
					GetBooking(gomock.Any(), 7).
					Return(&domain.Booking{ID: 7, StudentID: 1, TutorID: 42}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Booking not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().
					GetBooking(gomock.Any(), 99).
					Return(nil, domain.ErrBookingNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "booking not found",
		},
		{
			name:          "Invalid id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/bookings/"+tt.id, "", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name:  "Student bookings",
			query: "",
			prepareMock: func() {
				service.EXPECT().
					ListBookings(gomock.Any(), 1, false, domain.BookingStatus(""), 0, 20).
					Return([]domain.Booking{
						{ID: 7, StudentID: 1, TutorID: 42, Status: domain.BookingPending, CreatedAt: now},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:  "Tutor side with status filter",
			query: "?as_tutor=true&status=PENDING&offset=5&limit=10",
			prepareMock: func() {
				service.EXPECT().
					ListBookings(gomock.Any(), 1, true, domain.BookingPending, 5, 10).
					Return([]domain.Booking{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:  "Internal server error",
			query: "",
			prepareMock: func() {
				service.EXPECT().
					ListBookings(gomock.Any(), 1, false, domain.BookingStatus(""), 0, 20).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/bookings"+tt.query, "", "")
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.BookingResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful approval",
			prepareMock: func() {
				service.EXPECT().
					ApproveBooking(gomock.Any(), 7, 1).
					Return(&domain.Booking{ID: 7, Status: domain.BookingApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not this tutor's booking",
			prepareMock: func() {
				service.EXPECT().
					ApproveBooking(gomock.Any(), 7, 1).
					Return(nil, domain.ErrNotAuthorized)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Booking is not pending",
			prepareMock: func() {
				service.EXPECT().
					ApproveBooking(gomock.Any(), 7, 1).
					Return(nil, domain.ErrInvalidStatus)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/bookings/7/approve", "", "7")
			w := httptest.NewRecorder()

			handler.Approve(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRejectHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		RejectBooking(gomock.Any(), 7, 1, "schedule full").
		Return(&domain.Booking{ID: 7, Status: domain.BookingRejected}, nil)

	r := newRequest(http.MethodPost, "/bookings/7/reject", `{"reason":"schedule full"}`, "7")
	w := httptest.NewRecorder()

	handler.Reject(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.BookingResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, string(domain.BookingRejected), body.Status)
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		isTutor      bool
		result       *domain.Booking
		err          error
		expectedCode int
	}{
		{
			name:         "Student cancels",
			query:        "",
			isTutor:      false,
			result:       &domain.Booking{ID: 7, Status: domain.BookingCancelled},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Tutor cancels",
			query:        "?as_tutor=true",
			isTutor:      true,
			result:       &domain.Booking{ID: 7, Status: domain.BookingCancelled},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Booking no longer cancellable",
			query:        "",
			isTutor:      false,
			err:          domain.ErrInvalidStatus,
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().
				CancelBooking(gomock.Any(), 7, 1, tt.isTutor).
				Return(tt.result, tt.err)

			r := newRequest(http.MethodPost, "/bookings/7/cancel"+tt.query, "", "7")
			w := httptest.NewRecorder()

			handler.Cancel(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
