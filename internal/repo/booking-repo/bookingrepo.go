package bookingrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/pg"
	"go.uber.org/zap"
)

// sessionDuration is the modeled length of every tutoring session.
// Persisted sessions carry only a start time, so conflict detection
// expands them to one-hour ranges.
const sessionDuration = time.Hour

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
        SELECT *
        FROM bookings
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var b domain.Booking
	err := row.Scan(&b.ID, &b.StudentID, &b.TutorID, &b.TotalSessions, &b.CompletedSessions,
		&b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Save(ctx context.Context, booking *domain.Booking) error {
	query := `
        INSERT INTO bookings (student_id, tutor_id, total_sessions, completed_sessions, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			booking.StudentID, booking.TutorID, booking.TotalSessions,
			booking.CompletedSessions, booking.Status, booking.Notes)
		if err := row.Scan(&booking.ID); err != nil {
			zap.L().Error("can't save booking", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// CreateWithSessions inserts a booking and its sessions in one transaction.
// The tutor row is locked first, so the conflict re-check and the inserts
// are serialized per tutor: two concurrent overlapping requests cannot both
// commit, and a failed session insert rolls the booking back too. Returns
// the conflicting slots instead of inserting when any are found.
func (r *Repository) CreateWithSessions(ctx context.Context, booking *domain.Booking, slots []domain.ScheduleSlot) ([]domain.ScheduleSlot, error) {
	lockQuery := `
        SELECT id
        FROM tutors
        WHERE id = $1
        FOR UPDATE
    `
	var conflicts []domain.ScheduleSlot
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, lockQuery, booking.TutorID); err != nil {
			zap.L().Error("can't lock tutor schedule", zap.Int("tutor_id", booking.TutorID), zap.Error(err))
			return err
		}
		found, err := r.FindConflictingSlots(ctx, booking.TutorID, slots)
		if err != nil {
			return err
		}
		if len(found) > 0 {
			conflicts = found
			return nil
		}
		if err := r.Save(ctx, booking); err != nil {
			return err
		}
		return r.CreateSessions(ctx, booking.ID, slots)
	})
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
        UPDATE bookings
        SET completed_sessions = $1, status = $2, notes = $3, updated_at = now()
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			booking.CompletedSessions, booking.Status, booking.Notes, booking.ID)
		if err != nil {
			zap.L().Error("failed to update booking", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) ListByTutor(ctx context.Context, tutorID int, status domain.BookingStatus, offset, limit int) ([]domain.Booking, error) {
	return r.list(ctx, "tutor_id", tutorID, status, offset, limit)
}

func (r *Repository) ListByStudent(ctx context.Context, studentID int, status domain.BookingStatus, offset, limit int) ([]domain.Booking, error) {
	return r.list(ctx, "student_id", studentID, status, offset, limit)
}

func (r *Repository) list(ctx context.Context, column string, userID int, status domain.BookingStatus, offset, limit int) ([]domain.Booking, error) {
	query := `
        SELECT *
        FROM bookings
        WHERE ` + column + ` = $1 AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
        OFFSET $3 LIMIT $4
    `
	rows, err := r.db.Query(ctx, query, userID, string(status), offset, limit)
	if err != nil {
		zap.L().Error("can't list bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(&b.ID, &b.StudentID, &b.TutorID, &b.TotalSessions, &b.CompletedSessions,
			&b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// FindConflictingSlots loads the tutor's SCHEDULED sessions on the
// requested dates and reports which of the new slots overlap them.
func (r *Repository) FindConflictingSlots(ctx context.Context, tutorID int, slots []domain.ScheduleSlot) ([]domain.ScheduleSlot, error) {
	if len(slots) == 0 {
		return nil, nil
	}

	dates := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		dates = append(dates, s.Date)
	}

	query := `
        SELECT bs.session_date, bs.session_time
        FROM booking_sessions bs
        JOIN bookings b ON b.id = bs.booking_id
        WHERE b.tutor_id = $1
          AND bs.status = 'SCHEDULED'
          AND b.status IN ('PENDING', 'APPROVED', 'IN_PROGRESS')
          AND bs.session_date = ANY($2)
    `
	rows, err := r.db.Query(ctx, query, tutorID, dates)
	if err != nil {
		zap.L().Error("can't load existing sessions for conflict check", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var existing []domain.ScheduleSlot
	for rows.Next() {
		var sessionDate time.Time
		var sessionTime string
		if err := rows.Scan(&sessionDate, &sessionTime); err != nil {
			zap.L().Error("can't scan session row", zap.Error(err))
			return nil, err
		}
		slot, err := sessionSlot(sessionDate, sessionTime)
		if err != nil {
			return nil, err
		}
		existing = append(existing, slot)
	}

	return domain.FindScheduleConflicts(existing, slots), nil
}

func sessionSlot(sessionDate time.Time, sessionTime string) (domain.ScheduleSlot, error) {
	start, err := time.Parse("15:04", sessionTime)
	if err != nil {
		return domain.ScheduleSlot{}, err
	}
	tr, err := domain.NewTimeRange(start, start.Add(sessionDuration))
	if err != nil {
		return domain.ScheduleSlot{}, err
	}
	return domain.ScheduleSlot{Date: sessionDate, Range: tr}, nil
}

func (r *Repository) CreateSessions(ctx context.Context, bookingID int, slots []domain.ScheduleSlot) error {
	query := `
        INSERT INTO booking_sessions (booking_id, session_date, session_time, status)
        VALUES ($1, $2, $3, 'SCHEDULED')
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, slot := range slots {
			_, err := r.db.Exec(ctx, query, bookingID, slot.Date, slot.SessionTime())
			if err != nil {
				zap.L().Error("can't create booking session", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindSessionByID(ctx context.Context, id int) (*domain.BookingSession, error) {
	query := `
        SELECT *
        FROM booking_sessions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var s domain.BookingSession
	err := row.Scan(&s.ID, &s.BookingID, &s.SessionDate, &s.SessionTime, &s.Status,
		&s.AttendanceCheckedAt, &s.AttendanceCheckedBy, &s.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) UpdateSession(ctx context.Context, session *domain.BookingSession) error {
	query := `
        UPDATE booking_sessions
        SET status = $1, attendance_checked_at = $2, attendance_checked_by = $3, notes = $4
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			session.Status, session.AttendanceCheckedAt, session.AttendanceCheckedBy,
			session.Notes, session.ID)
		if err != nil {
			zap.L().Error("failed to update session", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// MarkSessionAttended persists a completed session and advances its
// booking's progress in one transaction. The counter is incremented in SQL,
// so concurrent marks on sibling sessions cannot lose updates; the booking
// moves to IN_PROGRESS on the first completed session and to COMPLETED on
// the last one.
func (r *Repository) MarkSessionAttended(ctx context.Context, session *domain.BookingSession) error {
	query := `
        UPDATE bookings
        SET completed_sessions = completed_sessions + 1,
            status = CASE
                WHEN completed_sessions + 1 >= total_sessions THEN 'COMPLETED'
                WHEN status = 'APPROVED' THEN 'IN_PROGRESS'
                ELSE status
            END,
            updated_at = now()
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := r.UpdateSession(ctx, session); err != nil {
			return err
		}
		if _, err := r.db.Exec(ctx, query, session.BookingID); err != nil {
			zap.L().Error("failed to advance booking progress", zap.Int("booking_id", session.BookingID), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) ListSessions(ctx context.Context, bookingID int) ([]domain.BookingSession, error) {
	query := `
        SELECT *
        FROM booking_sessions
        WHERE booking_id = $1
        ORDER BY session_date ASC, session_time ASC
    `
	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		zap.L().Error("can't list sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *Repository) ListSessionsByMonth(ctx context.Context, tutorID, studentID int, yearMonth string) ([]domain.BookingSession, error) {
	query := `
        SELECT bs.*
        FROM booking_sessions bs
        JOIN bookings b ON b.id = bs.booking_id
        WHERE b.tutor_id = $1
          AND b.student_id = $2
          AND to_char(bs.session_date, 'YYYY-MM') = $3
        ORDER BY bs.session_date ASC, bs.session_time ASC
    `
	rows, err := r.db.Query(ctx, query, tutorID, studentID, yearMonth)
	if err != nil {
		zap.L().Error("can't list sessions by month", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *Repository) CountNoShowsInMonth(ctx context.Context, tutorID, studentID int, yearMonth string) (int, error) {
	query := `
        SELECT count(*)
        FROM booking_sessions bs
        JOIN bookings b ON b.id = bs.booking_id
        WHERE b.tutor_id = $1
          AND b.student_id = $2
          AND bs.status = 'NO_SHOW'
          AND to_char(bs.session_date, 'YYYY-MM') = $3
    `
	var count int
	err := r.db.QueryRow(ctx, query, tutorID, studentID, yearMonth).Scan(&count)
	if err != nil {
		zap.L().Error("can't count no-shows", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindSessionsPastDeadline(ctx context.Context, cutoff time.Time) ([]domain.BookingSession, error) {
	query := `
        SELECT *
        FROM booking_sessions
        WHERE status = 'SCHEDULED' AND session_date <= $1
        ORDER BY session_date ASC
    `
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't find sessions past deadline", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows pgx.Rows) ([]domain.BookingSession, error) {
	var sessions []domain.BookingSession
	for rows.Next() {
		var s domain.BookingSession
		err := rows.Scan(&s.ID, &s.BookingID, &s.SessionDate, &s.SessionTime, &s.Status,
			&s.AttendanceCheckedAt, &s.AttendanceCheckedBy, &s.Notes)
		if err != nil {
			zap.L().Error("can't scan session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
