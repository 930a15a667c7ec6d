// Package healthcalc implements the clinic's health calculators.
//
// Every function is pure: it reads only its arguments and returns a fresh
// result. Numeric inputs are not range checked here; callers validate them.
// Enumerated and date inputs that cannot be interpreted return an error
// wrapping ErrInvalidInput.
package healthcalc

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// day truncates t to midnight UTC of its calendar date.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addDays(t time.Time, days int) time.Time {
	return day(t).AddDate(0, 0, days)
}

func daysBetween(from, to time.Time) int {
	return int(day(to).Sub(day(from)).Hours() / 24)
}

func copyStrings(src []string) []string {
	return append([]string(nil), src...)
}
