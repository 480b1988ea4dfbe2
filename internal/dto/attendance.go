package dto

type MarkAttendanceRequestDTO struct {
	Status string `json:"status" example:"ATTENDED"`
	Notes  string `json:"notes,omitempty"`
}

type NoShowRequestDTO struct {
	Notes string `json:"notes,omitempty"`
}

type NoShowResponseDTO struct {
	Session    SessionResponseDTO `json:"session"`
	IsBillable bool               `json:"is_billable" example:"true"`
}

type NoShowStatsResponseDTO struct {
	TutorID          int    `json:"tutor_id" example:"42"`
	StudentID        int    `json:"student_id" example:"11"`
	YearMonth        string `json:"year_month" example:"2024-03"`
	TotalSessions    int    `json:"total_sessions" example:"4"`
	AttendedSessions int    `json:"attended_sessions" example:"3"`
	NoShowCount      int    `json:"no_show_count" example:"1"`
	FreeNoShowUsed   bool   `json:"free_no_show_used" example:"true"`
}
