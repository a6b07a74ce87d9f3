package pricing

import "time"

const (
	daysPerYear = 365.25

	// minYearFraction is the floor applied to every year fraction
	// (~8.76 hours). It keeps sigma*sqrt(T) strictly positive, so a
	// same-day or inverted date pair degrades to a near-expiry price
	// instead of dividing by zero.
	minYearFraction = 0.001
)

// YearFraction converts a valuation/exercise date pair into a
// time-to-expiry in years on an actual/365.25 basis. The difference is
// taken in whole calendar days (time of day is ignored) before
// dividing, and the result is floored at minYearFraction.
//
// Note the floor is a degeneracy guard, not validation: exercise dates
// at or before the valuation date silently produce the floor value.
// The implied-vol solver rejects such dates explicitly instead.
func YearFraction(valuation, exercise time.Time) float64 {
	yf := float64(wholeDays(valuation, exercise)) / daysPerYear
	if yf < minYearFraction {
		return minYearFraction
	}
	return yf
}

// wholeDays returns the signed number of calendar days from one date
// to another, both truncated to midnight UTC.
func wholeDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
