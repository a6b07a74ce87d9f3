package config

import (
	"strings"
	"testing"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

const validYAML = `
position:
  underlying: AAPL
  spot: 100
  strike: 105
  valuation_date: 2026-08-25
  exercise_date: 2027-02-25
  volatility_pct: 25
  rate_pct: 5
  dividend_pct: 0.5
  direction: short
mode: price
report_dir: ./reports
verbosity: 2
`

func TestParseValid(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Mode != ModePrice {
		t.Errorf("mode = %q", c.Mode)
	}
	if c.Position.Direction != "short" {
		t.Errorf("direction = %q", c.Position.Direction)
	}

	in, err := c.ToMarketInputs()
	if err != nil {
		t.Fatalf("ToMarketInputs: %v", err)
	}
	if in.Strike != 105 || in.VolPct != 25 {
		t.Errorf("unexpected inputs: %+v", in)
	}
	if !in.Exercise.After(in.Valuation) {
		t.Errorf("dates not parsed: %v %v", in.Valuation, in.Exercise)
	}
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte(`
position:
  strike: 100
  exercise_date: 2027-08-25
  volatility_pct: 20
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Mode != ModePrice {
		t.Errorf("default mode = %q", c.Mode)
	}
	if pricing.Direction(c.Position.Direction) != pricing.Long {
		t.Errorf("default direction = %q", c.Position.Direction)
	}
	if c.ReportDir != "./out" || c.Provider != "synthetic" {
		t.Errorf("defaults not filled: %q %q", c.ReportDir, c.Provider)
	}
	if c.Position.ValuationDate == "" {
		t.Error("valuation_date should default to today")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			"bad mode",
			strings.Replace(validYAML, "mode: price", "mode: gamma_scalp", 1),
			"mode",
		},
		{
			"bad direction",
			strings.Replace(validYAML, "direction: short", "direction: sideways", 1),
			"direction",
		},
		{
			"bad date",
			strings.Replace(validYAML, "2027-02-25", "Feb 25 2027", 1),
			"exercise_date",
		},
		{
			"implied_vol without side",
			strings.Replace(validYAML, "mode: price", "mode: implied_vol", 1),
			"side",
		},
		{
			"zero vol in price mode",
			strings.Replace(validYAML, "volatility_pct: 25", "volatility_pct: 0", 1),
			"volatility_pct",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error %q does not mention %q", err, c.want)
			}
		})
	}
}
