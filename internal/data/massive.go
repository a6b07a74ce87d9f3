package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/contactkeval/option-pricer/internal/logger"
)

// massiveDataProvider implements Provider against the Massive REST APIs.
type massiveDataProvider struct {
	// APIKey authenticates requests with Massive.
	APIKey string

	// Client is the HTTP client used for API requests.
	Client *http.Client

	// BaseURL is the root endpoint (e.g. https://api.massive.com).
	BaseURL string

	secondary Provider
}

// NewMassiveDataProvider constructs a Massive-backed provider with an
// HTTP client tuned for timeouts, pooling, HTTP/2 and gzip. A non-nil
// secondary is consulted whenever a Massive request fails or comes back
// empty.
func NewMassiveDataProvider(apiKey string, secondary Provider) *massiveDataProvider {
	logger.Infof("initializing Massive data provider")

	return &massiveDataProvider{
		APIKey:    apiKey,
		secondary: secondary,
		Client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				DisableCompression:    false, // must be false for gzip auto-decompression
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		BaseURL: "https://api.massive.com",
	}
}

// Secondary returns the configured fallback Provider, if any.
func (massiveDataProv *massiveDataProvider) Secondary() Provider {
	return massiveDataProv.secondary
}

// massiveAggsResp models the daily-aggregates response.
type massiveAggsResp struct {
	Results []struct {
		Time  int64   `json:"t"`
		Open  float64 `json:"o"`
		High  float64 `json:"h"`
		Low   float64 `json:"l"`
		Close float64 `json:"c"`
		Vol   float64 `json:"v"`
	} `json:"results"`
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

// GetDailyBars fetches daily OHLC bars for the underlying over
// [fromDate, toDate]. Falls back to the secondary provider on error.
func (massiveDataProv *massiveDataProvider) GetDailyBars(underlying string, fromDate, toDate time.Time) ([]Bar, error) {
	endpoint := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?adjusted=true&sort=asc&limit=50000&apiKey=%s",
		massiveDataProv.BaseURL, url.PathEscape(underlying),
		fromDate.Format("2006-01-02"), toDate.Format("2006-01-02"),
		massiveDataProv.APIKey)

	logger.Debugf("fetching daily bars for %s (%s..%s)", underlying,
		fromDate.Format("2006-01-02"), toDate.Format("2006-01-02"))

	resp, err := massiveDataProv.Client.Get(endpoint)
	if err != nil {
		return massiveDataProv.fallbackBars(underlying, fromDate, toDate, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return massiveDataProv.fallbackBars(underlying, fromDate, toDate,
			fmt.Errorf("massive aggs status %d", resp.StatusCode))
	}

	var body massiveAggsResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return massiveDataProv.fallbackBars(underlying, fromDate, toDate, err)
	}

	out := make([]Bar, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, Bar{
			Date:  time.UnixMilli(r.Time).UTC(),
			Open:  r.Open,
			High:  r.High,
			Low:   r.Low,
			Close: r.Close,
			Vol:   r.Vol,
		})
	}
	if len(out) == 0 {
		return massiveDataProv.fallbackBars(underlying, fromDate, toDate, ErrNoData)
	}
	return out, nil
}

// GetLastClose returns the most recent close at or before asOf.
func (massiveDataProv *massiveDataProvider) GetLastClose(underlying string, asOf time.Time) (float64, error) {
	return lastClose(massiveDataProv, underlying, asOf)
}

func (massiveDataProv *massiveDataProvider) fallbackBars(underlying string, fromDate, toDate time.Time, cause error) ([]Bar, error) {
	if massiveDataProv.secondary != nil {
		logger.Errorf("massive provider failed (%v), trying secondary", cause)
		return massiveDataProv.secondary.GetDailyBars(underlying, fromDate, toDate)
	}
	return nil, cause
}
