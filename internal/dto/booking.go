package dto

import (
	"time"

	"github.com/jaeminpark/tutorlink/internal/domain"
)

type SlotDTO struct {
	Date      string `json:"date" example:"2024-03-15"`
	StartTime string `json:"start_time" example:"14:00"`
	EndTime   string `json:"end_time" example:"15:00"`
}

type CreateBookingRequestDTO struct {
	TutorID int       `json:"tutor_id" example:"42"`
	Slots   []SlotDTO `json:"slots"`
	Notes   string    `json:"notes,omitempty" example:"중간고사 대비"`
}

type RejectBookingRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"일정이 맞지 않습니다"`
}

type BookingResponseDTO struct {
	ID                int       `json:"id" example:"7"`
	StudentID         int       `json:"student_id" example:"11"`
	TutorID           int       `json:"tutor_id" example:"42"`
	TotalSessions     int       `json:"total_sessions" example:"4"`
	CompletedSessions int       `json:"completed_sessions" example:"1"`
	Status            string    `json:"status" example:"APPROVED"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type SessionResponseDTO struct {
	ID                  int        `json:"id" example:"31"`
	BookingID           int        `json:"booking_id" example:"7"`
	SessionDate         string     `json:"session_date" example:"2024-03-15"`
	SessionTime         string     `json:"session_time" example:"14:00"`
	Status              string     `json:"status" example:"SCHEDULED"`
	AttendanceCheckedAt *time.Time `json:"attendance_checked_at,omitempty"`
	AttendanceCheckedBy *int       `json:"attendance_checked_by,omitempty"`
	Notes               string     `json:"notes,omitempty"`
}

func BookingToDTO(b *domain.Booking) BookingResponseDTO {
	return BookingResponseDTO{
		ID:                b.ID,
		StudentID:         b.StudentID,
		TutorID:           b.TutorID,
		TotalSessions:     b.TotalSessions,
		CompletedSessions: b.CompletedSessions,
		Status:            string(b.Status),
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
	}
}

func SessionToDTO(s *domain.BookingSession) SessionResponseDTO {
	return SessionResponseDTO{
		ID:                  s.ID,
		BookingID:           s.BookingID,
		SessionDate:         s.SessionDate.Format("2006-01-02"),
		SessionTime:         s.SessionTime,
		Status:              string(s.Status),
		AttendanceCheckedAt: s.AttendanceCheckedAt,
		AttendanceCheckedBy: s.AttendanceCheckedBy,
		Notes:               s.Notes,
	}
}

// SlotFromDTO parses the wire slot into a schedule slot value object.
func SlotFromDTO(s SlotDTO) (domain.ScheduleSlot, error) {
	date, err := time.ParseInLocation("2006-01-02", s.Date, time.Local)
	if err != nil {
		return domain.ScheduleSlot{}, err
	}
	start, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return domain.ScheduleSlot{}, err
	}
	end, err := time.Parse("15:04", s.EndTime)
	if err != nil {
		return domain.ScheduleSlot{}, err
	}
	tr, err := domain.NewTimeRange(start, end)
	if err != nil {
		return domain.ScheduleSlot{}, err
	}
	return domain.ScheduleSlot{Date: date, Range: tr}, nil
}
