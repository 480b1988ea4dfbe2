package domain

// BreakdownItem is one human-readable line of a refund breakdown.
type BreakdownItem struct {
	Label       string
	Value       string
	Description string
	IsTotal     bool
}

// RefundBreakdown is the single source of truth for a refund computation.
// Both the numeric estimate and the narrative guide are derived from it,
// never recomputed separately.
type RefundBreakdown struct {
	BookingID            int
	TotalPaid            Money
	TotalSessions        int
	CompletedSessions    int
	NoShowCount          int
	BillableNoShowCount  int
	CancelledCount       int
	RemainingSessions    int
	SessionRate          Money
	CompletedSessionCost Money
	NoShowCost           Money
	RefundableSessions   int
	RefundAmount         Money
	PlatformFeeRefund    Money
	PGFee                Money
	FinalRefund          Money
	PolicyDescription    string
	Items                []BreakdownItem
}
