package attendanceservice

import (
	"context"
	"fmt"
	"time"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
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

// SystemCheckerID is the attendance_checked_by value recorded for marks
// made by the auto-attendance batch rather than a user.
const SystemCheckerID = 0

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

// NoShowStats summarizes attendance for one tutor-student pair in one
// calendar month.
type NoShowStats struct {
	TutorID          int
	StudentID        int
	YearMonth        string
	TotalSessions    int
	AttendedSessions int
	NoShowCount      int
	FreeNoShowUsed   bool
}

// AutoMarkResult reports one batch run of the deadline auto-marker.
type AutoMarkResult struct {
	Processed int
	Failed    int
	Errors    []string
}

// MarkAttendance records an attendance mark on a SCHEDULED session. An
// ATTENDED mark and the owning booking's progress advance commit in one
// repository transaction; completing the final session transitions the
// booking to COMPLETED.
func (s *Service) MarkAttendance(ctx context.Context, sessionID int, status domain.AttendanceStatus, checkedBy int, notes string) (*domain.BookingSession, error) {
	session, err := s.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}

	booking, err := s.repo.FindByID(ctx, session.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}

	if session.Status != domain.SessionScheduled {
		return nil, domain.NewError(
			domain.ErrInvalidSessionStatus.Code,
			fmt.Sprintf("cannot mark attendance for session with status %s", session.Status),
		)
	}

	switch status {
	case domain.AttendanceAttended:
		session.Status = domain.SessionCompleted
	case domain.AttendanceNoShow:
		session.Status = domain.SessionNoShow
	case domain.AttendanceCancelled:
		session.Status = domain.SessionCancelled
	default:
		return nil, domain.NewError(
			domain.ErrInvalidSessionStatus.Code,
			fmt.Sprintf("unknown attendance status %s", status),
		)
	}

	checkedAt := s.now()
	session.AttendanceCheckedAt = &checkedAt
	session.AttendanceCheckedBy = &checkedBy
	if notes != "" {
		session.Notes = notes
	}

	if status == domain.AttendanceAttended {
		if err := s.repo.MarkSessionAttended(ctx, session); err != nil {
			zap.L().Error("failed to mark session attended", zap.Int("session_id", sessionID), zap.Error(err))
			return nil, err
		}
	} else if err := s.repo.UpdateSession(ctx, session); err != nil {
		zap.L().Error("failed to update session", zap.Int("session_id", sessionID), zap.Error(err))
		return nil, err
	}

	return session, nil
}

// HandleNoShow marks a session NO_SHOW and decides billability under the
// tutor's policy. The monthly count is taken before the mark and the
// current event is added to it, so the decision sees the inclusive count.
func (s *Service) HandleNoShow(ctx context.Context, sessionID, checkedBy int, notes string) (*domain.BookingSession, bool, error) {
	session, err := s.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if session == nil {
		return nil, false, domain.ErrSessionNotFound
	}

	booking, err := s.repo.FindByID(ctx, session.BookingID)
	if err != nil {
		return nil, false, err
	}
	if booking == nil {
		return nil, false, domain.ErrBookingNotFound
	}

	tutor, err := s.tutorRepo.FindByID(ctx, booking.TutorID)
	if err != nil {
		return nil, false, err
	}
	if tutor == nil {
		return nil, false, domain.ErrTutorNotFound
	}

	yearMonth := s.now().Format("2006-01")
	noShowCount, err := s.repo.CountNoShowsInMonth(ctx, booking.TutorID, booking.StudentID, yearMonth)
	if err != nil {
		return nil, false, err
	}

	isFirstOfMonth := noShowCount == 0
	isBillable := tutor.NoShowPolicy.IsBillableOnNoShow(noShowCount+1, isFirstOfMonth)

	session, err = s.MarkAttendance(ctx, sessionID, domain.AttendanceNoShow, checkedBy, notes)
	if err != nil {
		return nil, false, err
	}

	zap.L().Info("no-show recorded",
		zap.Int("session_id", sessionID),
		zap.String("policy", string(tutor.NoShowPolicy)),
		zap.Bool("billable", isBillable),
	)
	return session, isBillable, nil
}

// GetAttendanceRecords returns a booking's sessions; only the booking's
// student or tutor may read them.
func (s *Service) GetAttendanceRecords(ctx context.Context, bookingID, requestingUserID int) ([]domain.BookingSession, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}
	if booking.TutorID != requestingUserID && booking.StudentID != requestingUserID {
		return nil, domain.ErrNotAuthorized
	}
	return s.repo.ListSessions(ctx, bookingID)
}

func (s *Service) GetNoShowStats(ctx context.Context, tutorID, studentID int, yearMonth string) (*NoShowStats, error) {
	if _, err := time.Parse("2006-01", yearMonth); err != nil {
		return nil, domain.ErrInvalidDateFormat
	}

	sessions, err := s.repo.ListSessionsByMonth(ctx, tutorID, studentID, yearMonth)
	if err != nil {
		return nil, err
	}

	stats := &NoShowStats{
		TutorID:       tutorID,
		StudentID:     studentID,
		YearMonth:     yearMonth,
		TotalSessions: len(sessions),
	}
	for _, sess := range sessions {
		switch sess.Status {
		case domain.SessionCompleted:
			stats.AttendedSessions++
		case domain.SessionNoShow:
			stats.NoShowCount++
		}
	}

	tutor, err := s.tutorRepo.FindByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, domain.ErrTutorNotFound
	}
	if allowance := tutor.NoShowPolicy.FreeNoShowAllowance(); allowance > 0 {
		stats.FreeNoShowUsed = stats.NoShowCount >= allowance
	}

	return stats, nil
}

// AutoMarkAttendanceDeadline marks every SCHEDULED session whose
// attendance deadline (23:59 the day after the session) has passed as
// ATTENDED. Unmarked sessions default to billing the student. Re-running
// is a no-op for sessions already processed, and one session's failure
// does not stop the rest.
func (s *Service) AutoMarkAttendanceDeadline(ctx context.Context) (*AutoMarkResult, error) {
	// A session dated D has its deadline at D+1 23:59, so by D+2 it is
	// overdue.
	cutoff := s.now().AddDate(0, 0, -2)
	sessions, err := s.repo.FindSessionsPastDeadline(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	result := &AutoMarkResult{}
	for _, sess := range sessions {
		_, err := s.MarkAttendance(ctx, sess.ID, domain.AttendanceAttended, SystemCheckerID,
			"Auto-marked: attendance deadline passed")
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("session %d: %v", sess.ID, err))
			continue
		}
		result.Processed++
	}

	zap.L().Info("auto attendance run finished",
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
