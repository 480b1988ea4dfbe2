package repo

import (
	"github.com/jaeminpark/tutorlink/internal/pg"
	bookingrepo "github.com/jaeminpark/tutorlink/internal/repo/booking-repo"
	paymentrepo "github.com/jaeminpark/tutorlink/internal/repo/payment-repo"
	settlementrepo "github.com/jaeminpark/tutorlink/internal/repo/settlement-repo"
	tutorrepo "github.com/jaeminpark/tutorlink/internal/repo/tutor-repo"
	"github.com/jaeminpark/tutorlink/internal/service/bookingservice"
	"github.com/jaeminpark/tutorlink/internal/service/refundservice"
	"github.com/jaeminpark/tutorlink/internal/service/settlementservice"
)

type Repositories struct {
	BookingRepo    bookingservice.Repo
	TutorRepo      bookingservice.TutorRepo
	PaymentRepo    refundservice.PaymentRepo
	SettlementRepo settlementservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	bookingRepo := bookingrepo.New(conn, txManager)
	tutorRepo := tutorrepo.New(conn)
	paymentRepo := paymentrepo.New(conn, txManager)
	settlementRepo := settlementrepo.New(conn, txManager)

	return &Repositories{
		BookingRepo:    bookingRepo,
		TutorRepo:      tutorRepo,
		PaymentRepo:    paymentRepo,
		SettlementRepo: settlementRepo,
	}
}
