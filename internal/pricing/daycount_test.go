package pricing

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearFractionOneYear(t *testing.T) {
	got := YearFraction(date(2026, 1, 15), date(2027, 1, 15))
	want := 365.0 / 365.25
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("YearFraction = %v, want %v", got, want)
	}
}

func TestYearFractionFloor(t *testing.T) {
	cases := []struct {
		name                string
		valuation, exercise time.Time
	}{
		{"same day", date(2026, 8, 25), date(2026, 8, 25)},
		{"exercise before valuation", date(2026, 8, 25), date(2026, 8, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := YearFraction(c.valuation, c.exercise); got != minYearFraction {
				t.Errorf("YearFraction = %v, want exactly %v", got, minYearFraction)
			}
		})
	}
}

func TestYearFractionIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 24, 23, 0, 0, 0, time.UTC)
	got := YearFraction(morning, evening)
	want := 30.0 / 365.25
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("YearFraction = %v, want %v (whole-day difference)", got, want)
	}
}
