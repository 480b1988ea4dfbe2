package domain

// NoShowPolicy is a tutor's policy for billing no-show sessions.
type NoShowPolicy string

const (
	// PolicyFullDeduction bills every no-show.
	PolicyFullDeduction NoShowPolicy = "FULL_DEDUCTION"
	// PolicyOneFree forgives the first no-show of each calendar month.
	PolicyOneFree NoShowPolicy = "ONE_FREE"
	// PolicyNone never bills automatically; resolution is manual.
	PolicyNone NoShowPolicy = "NONE"
)

// ManualAllowance is the FreeNoShowAllowance sentinel for PolicyNone,
// where no automatic billing applies.
const ManualAllowance = -1

var policyDescriptions = map[NoShowPolicy]string{
	PolicyFullDeduction: "결석 시 수업료 전액 차감 (무단 결석으로 처리됩니다)",
	PolicyOneFree:       "월 1회 무결석 허용, 이후 결석 시 전액 차감",
	PolicyNone:          "별도 협의 (튜터와 직접 상담 필요)",
}

func (p NoShowPolicy) Valid() bool {
	_, ok := policyDescriptions[p]
	return ok
}

func (p NoShowPolicy) Description() string {
	return policyDescriptions[p]
}

// IsBillableOnNoShow decides whether a no-show event is billed.
// monthlyCount must include the no-show being decided: with ONE_FREE the
// event is free exactly when it is the first of the calendar month.
func (p NoShowPolicy) IsBillableOnNoShow(monthlyCount int, isFirstOfMonth bool) bool {
	switch p {
	case PolicyFullDeduction:
		return true
	case PolicyOneFree:
		return !isFirstOfMonth
	case PolicyNone:
		return false
	}
	return false
}

// FreeNoShowAllowance returns the number of free no-shows per month, or
// ManualAllowance when billing is handled manually.
func (p NoShowPolicy) FreeNoShowAllowance() int {
	switch p {
	case PolicyFullDeduction:
		return 0
	case PolicyOneFree:
		return 1
	case PolicyNone:
		return ManualAllowance
	}
	return 0
}
