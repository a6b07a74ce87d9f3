package models

// PriceRequest is the body for POST /api/v1/price. Dates are YYYY-MM-DD;
// percents are whole numbers (25 means 25%).
type PriceRequest struct {
	Spot          float64 `json:"spot" binding:"required,gt=0"`
	Strike        float64 `json:"strike" binding:"required,gt=0"`
	ValuationDate string  `json:"valuation_date" binding:"required"`
	ExerciseDate  string  `json:"exercise_date" binding:"required"`
	VolatilityPct float64 `json:"volatility_pct" binding:"required,gt=0"`
	RatePct       float64 `json:"rate_pct"`
	DividendPct   float64 `json:"dividend_pct"`

	// Direction only affects the optional curve, defaults to long.
	Direction    string `json:"direction,omitempty" binding:"omitempty,oneof=long short"`
	IncludeCurve bool   `json:"include_curve,omitempty"`
}

// CurveRequest is the body for POST /api/v1/curve. Entry prices are the
// theoretical prices at the original spot; when omitted they default to
// the model prices at the current inputs, which pins the mark-to-market
// P&L to zero at the sweep's entry point.
type CurveRequest struct {
	Spot          float64 `json:"spot" binding:"required,gt=0"`
	Strike        float64 `json:"strike" binding:"required,gt=0"`
	ValuationDate string  `json:"valuation_date" binding:"required"`
	ExerciseDate  string  `json:"exercise_date" binding:"required"`
	VolatilityPct float64 `json:"volatility_pct" binding:"required,gt=0"`
	RatePct       float64 `json:"rate_pct"`
	DividendPct   float64 `json:"dividend_pct"`

	Direction      string   `json:"direction,omitempty" binding:"omitempty,oneof=long short"`
	EntryCallPrice *float64 `json:"entry_call_price,omitempty"`
	EntryPutPrice  *float64 `json:"entry_put_price,omitempty"`
}

// ImpliedVolRequest is the body for POST /api/v1/implied-vol. Volatility
// is the unknown here, so the position block carries no vol field.
type ImpliedVolRequest struct {
	Spot          float64 `json:"spot" binding:"required,gt=0"`
	Strike        float64 `json:"strike" binding:"required,gt=0"`
	ValuationDate string  `json:"valuation_date" binding:"required"`
	ExerciseDate  string  `json:"exercise_date" binding:"required"`
	RatePct       float64 `json:"rate_pct"`
	DividendPct   float64 `json:"dividend_pct"`

	Side        string  `json:"side" binding:"required,oneof=call put"`
	MarketPrice float64 `json:"market_price" binding:"required"`

	Direction    string `json:"direction,omitempty" binding:"omitempty,oneof=long short"`
	IncludeCurve bool   `json:"include_curve,omitempty"`
}
