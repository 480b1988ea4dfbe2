package handlers

import (
	"net/http"

	_ "github.com/jaeminpark/tutorlink/docs"
	attendancehandlers "github.com/jaeminpark/tutorlink/internal/handlers/attendance"
	bookinghandlers "github.com/jaeminpark/tutorlink/internal/handlers/bookings"
	paymenthandlers "github.com/jaeminpark/tutorlink/internal/handlers/payments"
	settlementhandlers "github.com/jaeminpark/tutorlink/internal/handlers/settlements"
	"github.com/jaeminpark/tutorlink/internal/service"
	"github.com/jaeminpark/tutorlink/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	NoShow(w http.ResponseWriter, r *http.Request)
	Records(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	RefundEstimate(w http.ResponseWriter, r *http.Request)
	RefundGuide(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Disburse(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BookingHandler    BookingHandler
	AttendanceHandler AttendanceHandler
	PaymentHandler    PaymentHandler
	SettlementHandler SettlementHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		BookingHandler:    bookinghandlers.New(s.BookingService),
		AttendanceHandler: attendancehandlers.New(s.AttendanceService),
		PaymentHandler:    paymenthandlers.New(s.RefundService),
		SettlementHandler: settlementhandlers.New(s.SettlementService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", h.BookingHandler.Create)
				r.Get("/", h.BookingHandler.List)
				r.Get("/{id}", h.BookingHandler.Get)
				r.Post("/{id}/approve", h.BookingHandler.Approve)
				r.Post("/{id}/reject", h.BookingHandler.Reject)
				r.Post("/{id}/cancel", h.BookingHandler.Cancel)
				r.Get("/{id}/attendance", h.AttendanceHandler.Records)
				r.Get("/{id}/refund/estimate", h.PaymentHandler.RefundEstimate)
				r.Get("/{id}/refund/guide", h.PaymentHandler.RefundGuide)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/{id}/attendance", h.AttendanceHandler.Mark)
				r.Post("/{id}/no-show", h.AttendanceHandler.NoShow)
			})

			r.Get("/attendance/no-show-stats", h.AttendanceHandler.Stats)

			r.Route("/settlements", func(r chi.Router) {
				r.Post("/run", h.SettlementHandler.Run)
				r.Get("/pending", h.SettlementHandler.ListPending)
				r.Post("/{id}/pay", h.SettlementHandler.Pay)
				r.Post("/disburse", h.SettlementHandler.Disburse)
			})
		})
	})
	return r
}
