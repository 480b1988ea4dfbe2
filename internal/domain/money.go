package domain

import "strconv"

// Money is an amount of Korean won. Won has no minor unit, so integer
// arithmetic is exact and fee calculations truncate toward zero.
type Money int64

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	return Money(amount), nil
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Subtract(other Money) (Money, error) {
	if other > m {
		return 0, ErrNegativeAmount
	}
	return m - other, nil
}

// CalculateFee returns the fee portion of m at the given rate, truncated
// toward zero.
func (m Money) CalculateFee(rate float64) Money {
	return Money(int64(float64(m) * rate))
}

// String renders the amount with thousands grouping, e.g. "50,000원".
func (m Money) String() string {
	s := strconv.FormatInt(int64(m), 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}
	return string(out) + "원"
}
