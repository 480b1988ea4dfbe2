package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/dto"
	"github.com/jaeminpark/tutorlink/internal/service/attendanceservice"
	"github.com/jaeminpark/tutorlink/pkg/auth"
	"github.com/jaeminpark/tutorlink/pkg/utils"
	"github.com/jaeminpark/tutorlink/pkg/validate"
)

type Service interface {
	MarkAttendance(ctx context.Context, sessionID int, status domain.AttendanceStatus, checkedBy int, notes string) (*domain.BookingSession, error)
	HandleNoShow(ctx context.Context, sessionID, checkedBy int, notes string) (*domain.BookingSession, bool, error)
	GetAttendanceRecords(ctx context.Context, bookingID, requestingUserID int) ([]domain.BookingSession, error)
	GetNoShowStats(ctx context.Context, tutorID, studentID int, yearMonth string) (*attendanceservice.NoShowStats, error)
}

type AttendanceHandler struct {
	attendanceService Service
}

func New(attendanceService Service) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// Mark godoc
//
//	@Summary		Mark attendance for a session
//	@Description	Records ATTENDED, NO_SHOW or CANCELLED on a SCHEDULED session and updates the booking's progress.
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Session ID"
//	@Param			request	body		dto.MarkAttendanceRequestDTO	true	"Attendance mark"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown attendance status"
//	@Failure		404		{object}	utils.Response	"Session or booking not found"
//	@Failure		409		{object}	utils.Response	"Session already marked"
//	@Router			/api/sessions/{id}/attendance [post]
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	sessionID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.MarkAttendanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status := domain.AttendanceStatus(req.Status)
	switch status {
	case domain.AttendanceAttended, domain.AttendanceNoShow, domain.AttendanceCancelled:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown attendance status")
		return
	}

	session, err := h.attendanceService.MarkAttendance(r.Context(), sessionID, status, userID, req.Notes)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionToDTO(session))
}

// NoShow godoc
//
//	@Summary		Record a no-show with policy evaluation
//	@Description	Marks the session NO_SHOW and reports whether it is billable under the tutor's monthly no-show policy.
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Session ID"
//	@Param			request	body		dto.NoShowRequestDTO	false	"Optional notes"
//	@Success		200		{object}	dto.NoShowResponseDTO
//	@Failure		404		{object}	utils.Response	"Session, booking or tutor not found"
//	@Failure		409		{object}	utils.Response	"Session already marked"
//	@Router			/api/sessions/{id}/no-show [post]
func (h *AttendanceHandler) NoShow(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	sessionID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.NoShowRequestDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	session, isBillable, err := h.attendanceService.HandleNoShow(r.Context(), sessionID, userID, req.Notes)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NoShowResponseDTO{
		Session:    dto.SessionToDTO(session),
		IsBillable: isBillable,
	})
}

// Records godoc
//
//	@Summary		Get attendance records of a booking
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{array}		dto.SessionResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to this booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Router			/api/bookings/{id}/attendance [get]
func (h *AttendanceHandler) Records(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, ok := pathID(w, r)
	if !ok {
		return
	}

	sessions, err := h.attendanceService.GetAttendanceRecords(r.Context(), bookingID, userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	response := make([]dto.SessionResponseDTO, len(sessions))
	for i := range sessions {
		response[i] = dto.SessionToDTO(&sessions[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Stats godoc
//
//	@Summary		No-show statistics for a tutor-student pair and month
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			tutor_id	query		int		true	"Tutor ID"
//	@Param			student_id	query		int		true	"Student ID"
//	@Param			year_month	query		string	true	"Calendar month, YYYY-MM"
//	@Success		200			{object}	dto.NoShowStatsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid parameters"
//	@Failure		404			{object}	utils.Response	"Tutor not found"
//	@Router			/api/attendance/no-show-stats [get]
func (h *AttendanceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	tutorID, err := strconv.Atoi(r.URL.Query().Get("tutor_id"))
	if err != nil || tutorID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid tutor_id")
		return
	}
	studentID, err := strconv.Atoi(r.URL.Query().Get("student_id"))
	if err != nil || studentID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid student_id")
		return
	}
	yearMonth := r.URL.Query().Get("year_month")
	if !validate.IsYearMonth(yearMonth) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid year_month, expected YYYY-MM")
		return
	}

	stats, err := h.attendanceService.GetNoShowStats(r.Context(), tutorID, studentID, yearMonth)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NoShowStatsResponseDTO{
		TutorID:          stats.TutorID,
		StudentID:        stats.StudentID,
		YearMonth:        stats.YearMonth,
		TotalSessions:    stats.TotalSessions,
		AttendedSessions: stats.AttendedSessions,
		NoShowCount:      stats.NoShowCount,
		FreeNoShowUsed:   stats.FreeNoShowUsed,
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrTutorNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotAuthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidSessionStatus):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidDateFormat):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
