package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/dto"
	"github.com/jaeminpark/tutorlink/pkg/auth"
	"github.com/jaeminpark/tutorlink/pkg/utils"
)

type Service interface {
	CreateBookingRequest(ctx context.Context, studentID, tutorID int, slots []domain.ScheduleSlot, notes string) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, bookingID, tutorID int) (*domain.Booking, error)
	RejectBooking(ctx context.Context, bookingID, tutorID int, reason string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID int, isTutor bool) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID int, isTutor bool, status domain.BookingStatus, offset, limit int) ([]domain.Booking, error)
	GetBooking(ctx context.Context, bookingID int) (*domain.Booking, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Create godoc
//
//	@Summary		Create a booking request
//	@Description	Student requests a multi-session booking with a tutor. Every slot must start at least 24 hours in the future and must not conflict with the tutor's existing sessions.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking request"
//	@Success		201		{object}	dto.BookingResponseDTO		"Created booking"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		404		{object}	utils.Response				"Tutor not found"
//	@Failure		409		{object}	utils.Response				"Schedule conflict"
//	@Failure		422		{object}	utils.Response				"Slot too soon or tutor not approved"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Slots) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "at least one slot is required")
		return
	}

	slots := make([]domain.ScheduleSlot, len(req.Slots))
	for i, s := range req.Slots {
		slot, err := dto.SlotFromDTO(s)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid slot: "+err.Error())
			return
		}
		slots[i] = slot
	}

	booking, err := h.bookingService.CreateBookingRequest(r.Context(), userID, req.TutorID, slots, req.Notes)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.BookingToDTO(booking))
}

// Get godoc
//
//	@Summary		Get a booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Router			/api/bookings/{id} [get]
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(r.Context(), bookingID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookingToDTO(booking))
}

// List godoc
//
//	@Summary		List bookings for the authenticated user
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			as_tutor	query		bool	false	"List the tutor side instead of the student side"
//	@Param			status		query		string	false	"Status filter"
//	@Param			offset		query		int		false	"Pagination offset"
//	@Param			limit		query		int		false	"Pagination limit (default 20)"
//	@Success		200			{array}		dto.BookingResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [get]
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	isTutor := r.URL.Query().Get("as_tutor") == "true"
	status := domain.BookingStatus(r.URL.Query().Get("status"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	bookings, err := h.bookingService.ListBookings(r.Context(), userID, isTutor, status, offset, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.BookingResponseDTO, len(bookings))
	for i := range bookings {
		response[i] = dto.BookingToDTO(&bookings[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a pending booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Not this tutor's booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Booking is not pending"
//	@Router			/api/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, ok := pathID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingService.ApproveBooking(r.Context(), bookingID, userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookingToDTO(booking))
}

// Reject godoc
//
//	@Summary		Reject a pending booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Booking ID"
//	@Param			request	body		dto.RejectBookingRequestDTO	false	"Rejection reason"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		403		{object}	utils.Response	"Not this tutor's booking"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Booking is not pending"
//	@Router			/api/bookings/{id}/reject [post]
func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.RejectBookingRequestDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	booking, err := h.bookingService.RejectBooking(r.Context(), bookingID, userID, req.Reason)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookingToDTO(booking))
}

// Cancel godoc
//
//	@Summary		Cancel a booking
//	@Description	Either party may cancel while the booking is still PENDING or APPROVED.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id			path		int		true	"Booking ID"
//	@Param			as_tutor	query		bool	false	"Cancel as the tutor side"
//	@Success		200			{object}	dto.BookingResponseDTO
//	@Failure		403			{object}	utils.Response	"Not a party to this booking"
//	@Failure		404			{object}	utils.Response	"Booking not found"
//	@Failure		409			{object}	utils.Response	"Booking is no longer cancellable"
//	@Router			/api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	bookingID, ok := pathID(w, r)
	if !ok {
		return
	}
	isTutor := r.URL.Query().Get("as_tutor") == "true"

	booking, err := h.bookingService.CancelBooking(r.Context(), bookingID, userID, isTutor)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookingToDTO(booking))
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
	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, domain.ErrTutorNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotAuthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrScheduleConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrSlotTooSoon), errors.Is(err, domain.ErrTutorNotApproved):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
