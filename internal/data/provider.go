// Package data supplies market data used to seed pricing inputs: daily
// bars for an underlying, its last close, and a historical-volatility
// estimate to display next to a solved implied vol.
package data

import (
	"errors"
	"time"
)

// ErrNoData is returned when a provider has no bars for the request.
var ErrNoData = errors.New("no bars returned")

// Provider supplies market data. Implementations may chain to a
// secondary provider as a fallback.
type Provider interface {
	Secondary() Provider
	GetDailyBars(underlying string, fromDate, toDate time.Time) ([]Bar, error)
	GetLastClose(underlying string, asOf time.Time) (float64, error)
}

// Bar is a simplified daily OHLC bar.
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
	Vol   float64
}

// lastClose is the shared GetLastClose implementation: fetch a trailing
// window of bars ending at asOf and take the most recent close. The
// window is generous enough to span holidays and weekends.
func lastClose(p Provider, underlying string, asOf time.Time) (float64, error) {
	bars, err := p.GetDailyBars(underlying, asOf.AddDate(0, 0, -14), asOf)
	if err != nil {
		return 0, err
	}
	if len(bars) == 0 {
		return 0, ErrNoData
	}
	return bars[len(bars)-1].Close, nil
}
