package validate

import "time"

// IsYearMonth reports whether s is a calendar month in YYYY-MM form.
func IsYearMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}
