package service

import (
	"github.com/jaeminpark/tutorlink/internal/repo"
	"github.com/jaeminpark/tutorlink/internal/service/attendanceservice"
	"github.com/jaeminpark/tutorlink/internal/service/bookingservice"
	"github.com/jaeminpark/tutorlink/internal/service/refundservice"
	"github.com/jaeminpark/tutorlink/internal/service/settlementservice"
)

type Services struct {
	BookingService    *bookingservice.Service
	AttendanceService *attendanceservice.Service
	RefundService     *refundservice.Service
	SettlementService *settlementservice.Service
}

func New(repo *repo.Repositories) *Services {
	bookingService := bookingservice.New(repo.BookingRepo, repo.TutorRepo)
	attendanceService := attendanceservice.New(repo.BookingRepo, repo.TutorRepo)
	refundService := refundservice.New(repo.BookingRepo, repo.PaymentRepo, repo.TutorRepo)
	settlementService := settlementservice.New(repo.SettlementRepo)

	return &Services{
		BookingService:    bookingService,
		AttendanceService: attendanceService,
		RefundService:     refundService,
		SettlementService: settlementService,
	}
}
