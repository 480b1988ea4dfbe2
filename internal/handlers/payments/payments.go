package payments

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/dto"
	"github.com/jaeminpark/tutorlink/pkg/utils"
)

type Service interface {
	CalculateRefund(ctx context.Context, bookingID int) (*domain.RefundBreakdown, error)
}

type PaymentHandler struct {
	refundService Service
}

func New(refundService Service) *PaymentHandler {
	return &PaymentHandler{
		refundService: refundService,
	}
}

// RefundEstimate godoc
//
//	@Summary		Numeric refund estimate for a booking
//	@Description	Computes the refundable amount from remaining sessions and the tutor's no-show policy. The PG fee is never refunded.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.RefundEstimateResponseDTO
//	@Failure		404	{object}	utils.Response	"Booking or payment not found"
//	@Failure		409	{object}	utils.Response	"Payment is not PAID"
//	@Router			/api/bookings/{id}/refund/estimate [get]
func (h *PaymentHandler) RefundEstimate(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r)
	if !ok {
		return
	}

	breakdown, err := h.refundService.CalculateRefund(r.Context(), bookingID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RefundEstimateFromBreakdown(breakdown))
}

// RefundGuide godoc
//
//	@Summary		Narrative refund guide for a booking
//	@Description	Same computation as the estimate, projected as labelled breakdown lines with the tutor's policy description.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.RefundGuideResponseDTO
//	@Failure		404	{object}	utils.Response	"Booking or payment not found"
//	@Failure		409	{object}	utils.Response	"Payment is not PAID"
//	@Router			/api/bookings/{id}/refund/guide [get]
func (h *PaymentHandler) RefundGuide(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r)
	if !ok {
		return
	}

	breakdown, err := h.refundService.CalculateRefund(r.Context(), bookingID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RefundGuideFromBreakdown(breakdown))
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
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrTutorNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrPaymentNotPaid):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
