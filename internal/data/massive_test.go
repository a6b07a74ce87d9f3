package data

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMassiveProviderParsesBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"t": 1767571200000, "o": 99.5, "h": 101.2, "l": 99.1, "c": 100.8, "v": 12345},
				{"t": 1767657600000, "o": 100.8, "h": 102.0, "l": 100.3, "c": 101.5, "v": 23456}
			]
		}`))
	}))
	defer srv.Close()

	prov := NewMassiveDataProvider("test-key", nil)
	prov.BaseURL = srv.URL

	start, end := testDateRange()
	bars, err := prov.GetDailyBars("AAPL", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("len(bars) = %d, want 2", len(bars))
	}
	if bars[0].Close != 100.8 || bars[1].Close != 101.5 {
		t.Errorf("closes = %v, %v", bars[0].Close, bars[1].Close)
	}
	if bars[0].Date.After(bars[1].Date) {
		t.Errorf("bars out of order: %v, %v", bars[0].Date, bars[1].Date)
	}
}

// A failing Massive request must chain to the secondary provider.
func TestMassiveProviderFallsBackToSecondary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	prov := NewMassiveDataProvider("test-key", NewSyntheticProvider())
	prov.BaseURL = srv.URL

	if prov.Secondary() == nil {
		t.Fatal("Secondary() = nil, want the configured fallback")
	}

	start, end := testDateRange()
	bars, err := prov.GetDailyBars("AAPL", start, end)
	if err != nil {
		t.Fatalf("expected fallback bars, got error: %v", err)
	}
	if len(bars) == 0 {
		t.Fatal("expected non-empty bars from fallback")
	}
	for _, b := range bars {
		if b.Date.Before(start) || b.Date.After(end) {
			t.Fatalf("fallback bar out of range: %v", b.Date)
		}
	}
}

// Without a secondary the original failure surfaces to the caller.
func TestMassiveProviderNoSecondaryReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	prov := NewMassiveDataProvider("test-key", nil)
	prov.BaseURL = srv.URL

	if _, err := prov.GetDailyBars("AAPL", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Fatal("expected error without a secondary provider")
	}
}
