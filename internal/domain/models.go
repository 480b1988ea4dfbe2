package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingApproved   BookingStatus = "APPROVED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
	BookingRejected   BookingStatus = "REJECTED"
)

// bookingTransitions is the full edge set of the booking state machine.
// Terminal states have no outgoing edges.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingApproved, BookingRejected, BookingCancelled},
	BookingApproved:   {BookingInProgress, BookingCompleted, BookingCancelled},
	BookingInProgress: {BookingCompleted},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type SessionStatus string

const (
	SessionScheduled SessionStatus = "SCHEDULED"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionCancelled SessionStatus = "CANCELLED"
	SessionNoShow    SessionStatus = "NO_SHOW"
)

// AttendanceStatus is the mark a checker records for a session. It is not
// the session state itself: ATTENDED maps to SessionCompleted.
type AttendanceStatus string

const (
	AttendanceAttended  AttendanceStatus = "ATTENDED"
	AttendanceNoShow    AttendanceStatus = "NO_SHOW"
	AttendanceCancelled AttendanceStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "PENDING"
	PaymentPaid              PaymentStatus = "PAID"
	PaymentFailed            PaymentStatus = "FAILED"
	PaymentRefunded          PaymentStatus = "REFUNDED"
	PaymentPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentCancelled         PaymentStatus = "CANCELLED"
)

type Booking struct {
	ID                int           `db:"id"`
	StudentID         int           `db:"student_id"`
	TutorID           int           `db:"tutor_id"`
	TotalSessions     int           `db:"total_sessions"`
	CompletedSessions int           `db:"completed_sessions"`
	Status            BookingStatus `db:"status"`
	Notes             string        `db:"notes"`
	CreatedAt         time.Time     `db:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at"`
}

type BookingSession struct {
	ID                  int           `db:"id"`
	BookingID           int           `db:"booking_id"`
	SessionDate         time.Time     `db:"session_date"`
	SessionTime         string        `db:"session_time"`
	Status              SessionStatus `db:"status"`
	AttendanceCheckedAt *time.Time    `db:"attendance_checked_at"`
	AttendanceCheckedBy *int          `db:"attendance_checked_by"`
	Notes               string        `db:"notes"`
}

type Tutor struct {
	ID           int          `db:"id"`
	HourlyRate   Money        `db:"hourly_rate"`
	NoShowPolicy NoShowPolicy `db:"no_show_policy"`
	IsApproved   bool         `db:"is_approved"`
}

type Payment struct {
	ID         int           `db:"id"`
	BookingID  int           `db:"booking_id"`
	Amount     Money         `db:"amount"`
	FeeRate    float64       `db:"fee_rate"`
	FeeAmount  Money         `db:"fee_amount"`
	NetAmount  Money         `db:"net_amount"`
	Status     PaymentStatus `db:"status"`
	PaidAt     *time.Time    `db:"paid_at"`
	RefundedAt *time.Time    `db:"refunded_at"`
}

// PaymentFromGross builds a Payment with fee and net amounts derived from
// the gross amount. The fee truncates toward zero, so net absorbs the
// fractional remainder.
func PaymentFromGross(bookingID int, amount Money, feeRate float64) (*Payment, error) {
	fee := amount.CalculateFee(feeRate)
	net, err := amount.Subtract(fee)
	if err != nil {
		return nil, err
	}
	return &Payment{
		BookingID: bookingID,
		Amount:    amount,
		FeeRate:   feeRate,
		FeeAmount: fee,
		NetAmount: net,
		Status:    PaymentPending,
	}, nil
}

type Settlement struct {
	ID            int        `db:"id"`
	TutorID       int        `db:"tutor_id"`
	YearMonth     string     `db:"year_month"`
	TotalSessions int        `db:"total_sessions"`
	TotalAmount   Money      `db:"total_amount"`
	PlatformFee   Money      `db:"platform_fee"`
	PGFee         Money      `db:"pg_fee"`
	NetAmount     Money      `db:"net_amount"`
	IsPaid        bool       `db:"is_paid"`
	PaidAt        *time.Time `db:"paid_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (s *Settlement) MarkAsPaid(paidAt time.Time) {
	s.IsPaid = true
	s.PaidAt = &paidAt
}
