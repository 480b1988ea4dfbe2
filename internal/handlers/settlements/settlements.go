package settlements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jaeminpark/tutorlink/internal/domain"
	"github.com/jaeminpark/tutorlink/internal/dto"
	"github.com/jaeminpark/tutorlink/internal/service/settlementservice"
	"github.com/jaeminpark/tutorlink/pkg/utils"
	"github.com/jaeminpark/tutorlink/pkg/validate"
)

type Service interface {
	CalculateMonthlySettlements(ctx context.Context, yearMonth string) (*settlementservice.BatchResult, error)
	MarkAsPaid(ctx context.Context, settlementID int, paidAt *time.Time) (*domain.Settlement, error)
	ListPending(ctx context.Context, yearMonth string) ([]domain.Settlement, error)
	DisbursePayments(ctx context.Context, yearMonth string) (*settlementservice.BatchResult, error)
}

type SettlementHandler struct {
	settlementService Service
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
	}
}

// Run godoc
//
//	@Summary		Run monthly settlement aggregation
//	@Description	Creates one settlement per tutor with completed sessions in the month. Existing (tutor, month) settlements are reported as failures and never overwritten.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RunSettlementRequestDTO	true	"Target month"
//	@Success		200		{object}	dto.BatchResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid year_month"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/run [post]
func (h *SettlementHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.RunSettlementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsYearMonth(req.YearMonth) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid year_month, expected YYYY-MM")
		return
	}

	result, err := h.settlementService.CalculateMonthlySettlements(r.Context(), req.YearMonth)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, batchResultToDTO(result))
}

// ListPending godoc
//
//	@Summary		List unpaid settlements
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Produce		json
//	@Param			year_month	query		string	false	"Restrict to one month, YYYY-MM"
//	@Success		200			{array}		dto.SettlementResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid year_month"
//	@Router			/api/settlements/pending [get]
func (h *SettlementHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	yearMonth := r.URL.Query().Get("year_month")
	if yearMonth != "" && !validate.IsYearMonth(yearMonth) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid year_month, expected YYYY-MM")
		return
	}

	settlements, err := h.settlementService.ListPending(r.Context(), yearMonth)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	response := make([]dto.SettlementResponseDTO, len(settlements))
	for i := range settlements {
		response[i] = settlementToDTO(&settlements[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Pay godoc
//
//	@Summary		Mark a settlement as paid
//	@Description	The only transition out of pending. paid_at defaults to now.
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Settlement ID"
//	@Param			request	body		dto.MarkPaidRequestDTO	false	"Optional explicit paid_at"
//	@Success		200		{object}	dto.SettlementResponseDTO
//	@Failure		404		{object}	utils.Response	"Settlement not found"
//	@Router			/api/settlements/{id}/pay [post]
func (h *SettlementHandler) Pay(w http.ResponseWriter, r *http.Request) {
	settlementID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || settlementID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req dto.MarkPaidRequestDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	settlement, err := h.settlementService.MarkAsPaid(r.Context(), settlementID, req.PaidAt)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settlementToDTO(settlement))
}

// Disburse godoc
//
//	@Summary		Disburse pending settlements
//	@Tags			Settlements
//	@Security		BearerAuth
//	@Produce		json
//	@Param			year_month	query		string	false	"Restrict to one month, YYYY-MM"
//	@Success		200			{object}	dto.BatchResultDTO
//	@Failure		400			{object}	utils.Response	"Invalid year_month"
//	@Router			/api/settlements/disburse [post]
func (h *SettlementHandler) Disburse(w http.ResponseWriter, r *http.Request) {
	yearMonth := r.URL.Query().Get("year_month")
	if yearMonth != "" && !validate.IsYearMonth(yearMonth) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid year_month, expected YYYY-MM")
		return
	}

	result, err := h.settlementService.DisbursePayments(r.Context(), yearMonth)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, batchResultToDTO(result))
}

func settlementToDTO(s *domain.Settlement) dto.SettlementResponseDTO {
	return dto.SettlementResponseDTO{
		ID:            s.ID,
		TutorID:       s.TutorID,
		YearMonth:     s.YearMonth,
		TotalSessions: s.TotalSessions,
		TotalAmount:   int64(s.TotalAmount),
		PlatformFee:   int64(s.PlatformFee),
		PGFee:         int64(s.PGFee),
		NetAmount:     int64(s.NetAmount),
		IsPaid:        s.IsPaid,
		PaidAt:        s.PaidAt,
	}
}

func batchResultToDTO(r *settlementservice.BatchResult) dto.BatchResultDTO {
	return dto.BatchResultDTO{
		Processed: r.Processed,
		Failed:    r.Failed,
		Errors:    r.Errors,
	}
}

func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSettlementNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidDateFormat):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
