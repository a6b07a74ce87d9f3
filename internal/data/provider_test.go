package data

import (
	"math"
	"testing"
	"time"
)

func testDateRange() (time.Time, time.Time) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	return start, end
}

func TestSyntheticProviderBars(t *testing.T) {
	start, end := testDateRange()
	prov := NewSyntheticProvider()

	bars, err := prov.GetDailyBars("AAPL", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) == 0 {
		t.Fatalf("expected non-empty bars")
	}
	for _, b := range bars {
		if b.Date.Before(start) || b.Date.After(end) {
			t.Fatalf("bar date out of range: %v", b.Date)
		}
		if b.Date.Weekday() == time.Saturday || b.Date.Weekday() == time.Sunday {
			t.Fatalf("weekend bar generated: %v", b.Date)
		}
		if b.Close <= 0 {
			t.Fatalf("non-positive close: %v", b.Close)
		}
	}
}

func TestSyntheticProviderLastClose(t *testing.T) {
	_, end := testDateRange()
	prov := NewSyntheticProvider()

	last, err := prov.GetLastClose("AAPL", end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last <= 0 {
		t.Fatalf("expected positive last close, got %v", last)
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	// Flat series carries no variance.
	flat := []float64{100, 100, 100, 100}
	if got := AnnualizedVolatility(flat); got != 0 {
		t.Errorf("flat series vol = %v, want 0", got)
	}

	// Too-short series falls back to the placeholder.
	if got := AnnualizedVolatility([]float64{100, 101}); got != 0.30 {
		t.Errorf("short series vol = %v, want 0.30", got)
	}

	// Alternating +/-1% moves have a known sample deviation.
	alternating := []float64{100}
	for i := 0; i < 60; i++ {
		prev := alternating[len(alternating)-1]
		if i%2 == 0 {
			alternating = append(alternating, prev*1.01)
		} else {
			alternating = append(alternating, prev/1.01)
		}
	}
	got := AnnualizedVolatility(alternating)
	if got <= 0 || math.IsNaN(got) {
		t.Fatalf("expected positive vol, got %v", got)
	}
	// log(1.01) ~ 0.00995 per day -> ~15.8% annualized.
	if got < 0.10 || got > 0.25 {
		t.Errorf("alternating series vol = %v, want ~0.158", got)
	}
}
