package dto

import "time"

type RunSettlementRequestDTO struct {
	YearMonth string `json:"year_month" example:"2024-03"`
}

type BatchResultDTO struct {
	Processed int      `json:"processed" example:"12"`
	Failed    int      `json:"failed" example:"1"`
	Errors    []string `json:"errors,omitempty"`
}

type MarkPaidRequestDTO struct {
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

type SettlementResponseDTO struct {
	ID            int        `json:"id" example:"3"`
	TutorID       int        `json:"tutor_id" example:"42"`
	YearMonth     string     `json:"year_month" example:"2024-03"`
	TotalSessions int        `json:"total_sessions" example:"10"`
	TotalAmount   int64      `json:"total_amount" example:"400000"`
	PlatformFee   int64      `json:"platform_fee" example:"20000"`
	PGFee         int64      `json:"pg_fee" example:"12000"`
	NetAmount     int64      `json:"net_amount" example:"368000"`
	IsPaid        bool       `json:"is_paid" example:"false"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}
