// Package config loads the YAML scenario file driving one-shot runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/contactkeval/option-pricer/internal/pricing"

	"gopkg.in/yaml.v3"
)

// Mode selects which engine entry point a run invokes.
type Mode string

const (
	ModePrice      Mode = "price"
	ModeImpliedVol Mode = "implied_vol"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Position PositionConfig `yaml:"position"`

	// Mode defaults to "price". "implied_vol" additionally requires
	// side and market_price, and ignores position.volatility_pct.
	Mode        Mode    `yaml:"mode"`
	Side        string  `yaml:"side"`
	MarketPrice float64 `yaml:"market_price"`

	// Provider selects the market-data source used to prefill a missing
	// spot: "massive" (needs MASSIVE_API_KEY) or "synthetic".
	Provider string `yaml:"provider"`

	ReportDir string `yaml:"report_dir"`
	Verbosity int    `yaml:"verbosity"`
}

// PositionConfig describes the single option position being analyzed.
// Dates are YYYY-MM-DD; percents are whole numbers (25 means 25%).
type PositionConfig struct {
	Underlying    string  `yaml:"underlying"`
	Spot          float64 `yaml:"spot"`
	Strike        float64 `yaml:"strike"`
	ValuationDate string  `yaml:"valuation_date"`
	ExerciseDate  string  `yaml:"exercise_date"`
	VolatilityPct float64 `yaml:"volatility_pct"`
	RatePct       float64 `yaml:"rate_pct"`
	DividendPct   float64 `yaml:"dividend_pct"`
	Direction     string  `yaml:"direction"`
}

// Load reads, parses, defaults and validates a config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse unmarshals a YAML document, fills defaults and validates.
func Parse(raw []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.fillDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) fillDefaults() {
	if c.Mode == "" {
		c.Mode = ModePrice
	}
	if c.Position.Direction == "" {
		c.Position.Direction = string(pricing.Long)
	}
	if c.ReportDir == "" {
		c.ReportDir = "./out"
	}
	if c.Provider == "" {
		c.Provider = "synthetic"
	}
	if c.Position.ValuationDate == "" {
		c.Position.ValuationDate = time.Now().UTC().Format("2006-01-02")
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch c.Mode {
	case ModePrice, ModeImpliedVol:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModePrice, ModeImpliedVol, c.Mode)
	}
	switch pricing.Direction(c.Position.Direction) {
	case pricing.Long, pricing.Short:
	default:
		return fmt.Errorf("position.direction must be long or short, got %q", c.Position.Direction)
	}
	if c.Position.Strike <= 0 {
		return errors.New("position.strike must be positive")
	}
	if _, err := parseDate(c.Position.ValuationDate); err != nil {
		return fmt.Errorf("position.valuation_date: %w", err)
	}
	if _, err := parseDate(c.Position.ExerciseDate); err != nil {
		return fmt.Errorf("position.exercise_date: %w", err)
	}
	if c.Mode == ModeImpliedVol {
		switch pricing.Side(c.Side) {
		case pricing.SideCall, pricing.SidePut:
		default:
			return fmt.Errorf("side must be call or put in implied_vol mode, got %q", c.Side)
		}
		if c.MarketPrice <= 0 {
			return errors.New("market_price must be positive in implied_vol mode")
		}
	} else if c.Position.VolatilityPct <= 0 {
		return errors.New("position.volatility_pct must be positive in price mode")
	}
	return nil
}

// ToMarketInputs converts the validated position block to engine inputs.
// Spot may still be zero here; the caller prefills it from a data
// provider before pricing.
func (c *Config) ToMarketInputs() (pricing.MarketInputs, error) {
	valuation, err := parseDate(c.Position.ValuationDate)
	if err != nil {
		return pricing.MarketInputs{}, err
	}
	exercise, err := parseDate(c.Position.ExerciseDate)
	if err != nil {
		return pricing.MarketInputs{}, err
	}
	return pricing.MarketInputs{
		Spot:        c.Position.Spot,
		Strike:      c.Position.Strike,
		Valuation:   valuation,
		Exercise:    exercise,
		VolPct:      c.Position.VolatilityPct,
		RatePct:     c.Position.RatePct,
		DividendPct: c.Position.DividendPct,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
