package bookingservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"go.uber.org/zap"
)

// Repo is the full booking persistence surface. Session-level methods live
// here because sessions are owned by bookings.
type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	CreateWithSessions(ctx context.Context, booking *domain.Booking, slots []domain.ScheduleSlot) ([]domain.ScheduleSlot, error)
	Update(ctx context.Context, booking *domain.Booking) error
	ListByTutor(ctx context.Context, tutorID int, status domain.BookingStatus, offset, limit int) ([]domain.Booking, error)
	ListByStudent(ctx context.Context, studentID int, status domain.BookingStatus, offset, limit int) ([]domain.Booking, error)
	FindSessionByID(ctx context.Context, id int) (*domain.BookingSession, error)
	UpdateSession(ctx context.Context, session *domain.BookingSession) error
	MarkSessionAttended(ctx context.Context, session *domain.BookingSession) error
	ListSessions(ctx context.Context, bookingID int) ([]domain.BookingSession, error)
	ListSessionsByMonth(ctx context.Context, tutorID, studentID int, yearMonth string) ([]domain.BookingSession, error)
	CountNoShowsInMonth(ctx context.Context, tutorID, studentID int, yearMonth string) (int, error)
	FindSessionsPastDeadline(ctx context.Context, cutoff time.Time) ([]domain.BookingSession, error)
}

type TutorRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Tutor, error)
}

type Service struct {
	repo      Repo
	tutorRepo TutorRepo
	now       func() time.Time
}

func New(repo Repo, tutorRepo TutorRepo) *Service {
	return &Service{
		repo:      repo,
		tutorRepo: tutorRepo,
		now:       time.Now,
	}
}

// CreateBookingRequest validates and creates a booking with one SCHEDULED
// session per slot. The conflict check and the booking and session inserts
// run in one repository transaction under a per-tutor lock, so concurrent
// overlapping requests cannot both succeed.
func (s *Service) CreateBookingRequest(ctx context.Context, studentID, tutorID int, slots []domain.ScheduleSlot, notes string) (*domain.Booking, error) {
	tutor, err := s.tutorRepo.FindByID(ctx, tutorID)
	if err != nil {
		zap.L().Error("failed to find tutor", zap.Int("tutor_id", tutorID), zap.Error(err))
		return nil, err
	}
	if tutor == nil {
		return nil, domain.ErrTutorNotFound
	}
	if !tutor.IsApproved {
		return nil, domain.ErrTutorNotApproved
	}

	now := s.now()
	for _, slot := range slots {
		if !slot.IsFuture(now) {
			return nil, domain.NewError(
				domain.ErrSlotTooSoon.Code,
				fmt.Sprintf("slot %s %s is not at least 24 hours in the future",
					slot.Date.Format("2006-01-02"), slot.SessionTime()),
			)
		}
	}

	booking := &domain.Booking{
		StudentID:     studentID,
		TutorID:       tutorID,
		TotalSessions: len(slots),
		Status:        domain.BookingPending,
		Notes:         notes,
		CreatedAt:     now,
	}
	conflicts, err := s.repo.CreateWithSessions(ctx, booking, slots)
	if err != nil {
		zap.L().Error("can't create booking", zap.Int("tutor_id", tutorID), zap.Error(err))
		return nil, err
	}
	if len(conflicts) > 0 {
		descs := make([]string, len(conflicts))
		for i, c := range conflicts {
			descs[i] = c.Date.Format("2006-01-02") + " " + c.SessionTime()
		}
		return nil, domain.NewError(
			domain.ErrScheduleConflict.Code,
			"scheduling conflicts at: "+strings.Join(descs, ", "),
		)
	}

	return booking, nil
}

func (s *Service) ApproveBooking(ctx context.Context, bookingID, tutorID int) (*domain.Booking, error) {
	booking, err := s.loadForTutor(ctx, bookingID, tutorID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingPending {
		return nil, invalidStatus("approve", booking.Status)
	}

	booking.Status = domain.BookingApproved
	if err := s.repo.Update(ctx, booking); err != nil {
		zap.L().Error("failed to approve booking", zap.Int("booking_id", bookingID), zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (s *Service) RejectBooking(ctx context.Context, bookingID, tutorID int, reason string) (*domain.Booking, error) {
	booking, err := s.loadForTutor(ctx, bookingID, tutorID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingPending {
		return nil, invalidStatus("reject", booking.Status)
	}

	if reason == "" {
		reason = "No reason provided"
	}
	booking.Status = domain.BookingRejected
	// Prepend the rejection marker; prior notes are preserved below it.
	booking.Notes = strings.TrimRight("[REJECTED] "+reason+"\n"+booking.Notes, "\n")
	if err := s.repo.Update(ctx, booking); err != nil {
		zap.L().Error("failed to reject booking", zap.Int("booking_id", bookingID), zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (s *Service) CancelBooking(ctx context.Context, bookingID, userID int, isTutor bool) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}

	if isTutor {
		if booking.TutorID != userID {
			return nil, domain.ErrNotAuthorized
		}
	} else if booking.StudentID != userID {
		return nil, domain.ErrNotAuthorized
	}

	if !booking.Status.CanTransitionTo(domain.BookingCancelled) {
		return nil, invalidStatus("cancel", booking.Status)
	}

	booking.Status = domain.BookingCancelled
	if err := s.repo.Update(ctx, booking); err != nil {
		zap.L().Error("failed to cancel booking", zap.Int("booking_id", bookingID), zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (s *Service) ListBookings(ctx context.Context, userID int, isTutor bool, status domain.BookingStatus, offset, limit int) ([]domain.Booking, error) {
	if isTutor {
		return s.repo.ListByTutor(ctx, userID, status, offset, limit)
	}
	return s.repo.ListByStudent(ctx, userID, status, offset, limit)
}

func (s *Service) GetBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (s *Service) loadForTutor(ctx context.Context, bookingID, tutorID int) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}
	if booking.TutorID != tutorID {
		return nil, domain.ErrNotAuthorized
	}
	return booking, nil
}

func invalidStatus(action string, status domain.BookingStatus) error {
	return domain.NewError(
		domain.ErrInvalidStatus.Code,
		fmt.Sprintf("cannot %s booking with status %s", action, status),
	)
}
