package dto

import "github.com/jaeminpark/tutorlink/internal/domain"

type RefundEstimateResponseDTO struct {
	BookingID         int   `json:"booking_id" example:"7"`
	TotalPaid         int64 `json:"total_paid" example:"200000"`
	TotalSessions     int   `json:"total_sessions" example:"4"`
	CompletedSessions int   `json:"completed_sessions" example:"1"`
	RemainingSessions int   `json:"remaining_sessions" example:"2"`
	SessionRate       int64 `json:"session_rate" example:"50000"`
	RefundAmount      int64 `json:"refund_amount" example:"100000"`
	PlatformFeeRefund int64 `json:"platform_fee_refund" example:"5000"`
	PGFee             int64 `json:"pg_fee" example:"0"`
}

type BreakdownItemDTO struct {
	Label       string `json:"label" example:"총 결제 금액"`
	Value       string `json:"value" example:"200,000원"`
	Description string `json:"description,omitempty"`
	IsTotal     bool   `json:"is_total,omitempty"`
}

type RefundGuideResponseDTO struct {
	BookingID         int                `json:"booking_id" example:"7"`
	TotalPaid         int64              `json:"total_paid" example:"200000"`
	TotalSessions     int                `json:"total_sessions" example:"4"`
	CompletedSessions int                `json:"completed_sessions" example:"1"`
	RemainingSessions int                `json:"remaining_sessions" example:"2"`
	SessionRate       int64              `json:"session_rate" example:"50000"`
	RefundAmount      int64              `json:"refund_amount" example:"100000"`
	PlatformFee       int64              `json:"platform_fee" example:"5000"`
	PGFee             int64              `json:"pg_fee" example:"0"`
	PolicyDescription string             `json:"policy_description"`
	BreakdownItems    []BreakdownItemDTO `json:"breakdown_items"`
}

// Both refund responses project the same breakdown; neither recomputes
// anything.

func RefundEstimateFromBreakdown(b *domain.RefundBreakdown) RefundEstimateResponseDTO {
	return RefundEstimateResponseDTO{
		BookingID:         b.BookingID,
		TotalPaid:         int64(b.TotalPaid),
		TotalSessions:     b.TotalSessions,
		CompletedSessions: b.CompletedSessions,
		RemainingSessions: b.RemainingSessions,
		SessionRate:       int64(b.SessionRate),
		RefundAmount:      int64(b.FinalRefund),
		PlatformFeeRefund: int64(b.PlatformFeeRefund),
		PGFee:             int64(b.PGFee),
	}
}

func RefundGuideFromBreakdown(b *domain.RefundBreakdown) RefundGuideResponseDTO {
	items := make([]BreakdownItemDTO, len(b.Items))
	for i, item := range b.Items {
		items[i] = BreakdownItemDTO{
			Label:       item.Label,
			Value:       item.Value,
			Description: item.Description,
			IsTotal:     item.IsTotal,
		}
	}
	return RefundGuideResponseDTO{
		BookingID:         b.BookingID,
		TotalPaid:         int64(b.TotalPaid),
		TotalSessions:     b.TotalSessions,
		CompletedSessions: b.CompletedSessions,
		RemainingSessions: b.RemainingSessions,
		SessionRate:       int64(b.SessionRate),
		RefundAmount:      int64(b.FinalRefund),
		PlatformFee:       int64(b.PlatformFeeRefund),
		PGFee:             int64(b.PGFee),
		PolicyDescription: b.PolicyDescription,
		BreakdownItems:    items,
	}
}
