package domain

import "errors"

// Error is a domain failure with a stable machine-readable code. Two
// errors match under errors.Is when their codes are equal, so callers can
// compare detailed instances against the package sentinels.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

var (
	ErrTutorNotFound        = &Error{Code: "TUTOR_NOT_FOUND", Message: "tutor not found"}
	ErrTutorNotApproved     = &Error{Code: "TUTOR_NOT_APPROVED", Message: "tutor is not approved"}
	ErrSlotTooSoon          = &Error{Code: "SLOT_TOO_SOON", Message: "slot is not at least 24 hours in the future"}
	ErrScheduleConflict     = &Error{Code: "SCHEDULE_CONFLICT", Message: "schedule conflict with existing sessions"}
	ErrBookingNotFound      = &Error{Code: "BOOKING_NOT_FOUND", Message: "booking not found"}
	ErrNotAuthorized        = &Error{Code: "NOT_AUTHORIZED", Message: "not authorized"}
	ErrInvalidStatus        = &Error{Code: "INVALID_STATUS", Message: "invalid booking status for this operation"}
	ErrSessionNotFound      = &Error{Code: "SESSION_NOT_FOUND", Message: "session not found"}
	ErrInvalidSessionStatus = &Error{Code: "INVALID_SESSION_STATUS", Message: "session is not in a markable state"}
	ErrPaymentNotFound      = &Error{Code: "PAYMENT_NOT_FOUND", Message: "payment not found"}
	ErrPaymentNotPaid       = &Error{Code: "PAYMENT_NOT_PAID", Message: "payment is not in PAID status"}
	ErrSettlementNotFound   = &Error{Code: "SETTLEMENT_NOT_FOUND", Message: "settlement not found"}
	ErrSettlementExists     = &Error{Code: "SETTLEMENT_EXISTS", Message: "settlement already exists for this month"}
	ErrInvalidDateFormat    = &Error{Code: "INVALID_DATE_FORMAT", Message: "invalid year_month format, expected YYYY-MM"}
	ErrInvalidTimeRange     = &Error{Code: "INVALID_TIME_RANGE", Message: "start time must be before end time"}
	ErrNegativeAmount       = &Error{Code: "NEGATIVE_AMOUNT", Message: "amount cannot be negative"}
)
