package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoShowPolicyValid(t *testing.T) {
	assert.True(t, PolicyFullDeduction.Valid())
	assert.True(t, PolicyOneFree.Valid())
	assert.True(t, PolicyNone.Valid())
	assert.False(t, NoShowPolicy("WHATEVER").Valid())
}

func TestIsBillableOnNoShow(t *testing.T) {
	tests := []struct {
		name           string
		policy         NoShowPolicy
		monthlyCount   int
		isFirstOfMonth bool
		expected       bool
	}{
		{name: "full deduction always bills", policy: PolicyFullDeduction, monthlyCount: 1, isFirstOfMonth: true, expected: true},
		{name: "full deduction bills repeats", policy: PolicyFullDeduction, monthlyCount: 3, isFirstOfMonth: false, expected: true},
		{name: "one free forgives first of month", policy: PolicyOneFree, monthlyCount: 1, isFirstOfMonth: true, expected: false},
		{name: "one free bills second of month", policy: PolicyOneFree, monthlyCount: 2, isFirstOfMonth: false, expected: true},
		{name: "none never bills", policy: PolicyNone, monthlyCount: 5, isFirstOfMonth: false, expected: false},
		{name: "unknown policy does not bill", policy: NoShowPolicy("WHATEVER"), monthlyCount: 1, isFirstOfMonth: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.IsBillableOnNoShow(tt.monthlyCount, tt.isFirstOfMonth))
		})
	}
}

func TestFreeNoShowAllowance(t *testing.T) {
	assert.Equal(t, 0, PolicyFullDeduction.FreeNoShowAllowance())
	assert.Equal(t, 1, PolicyOneFree.FreeNoShowAllowance())
	assert.Equal(t, ManualAllowance, PolicyNone.FreeNoShowAllowance())
}

func TestPolicyDescription(t *testing.T) {
	assert.NotEmpty(t, PolicyFullDeduction.Description())
	assert.NotEmpty(t, PolicyOneFree.Description())
	assert.NotEmpty(t, PolicyNone.Description())
	assert.Empty(t, NoShowPolicy("WHATEVER").Description())
}
