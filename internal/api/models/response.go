package models

import "github.com/contactkeval/option-pricer/internal/pricing"

// PriceResponse is the result of a direct pricing call.
type PriceResponse struct {
	Result pricing.Result       `json:"result"`
	Curve  []pricing.CurvePoint `json:"curve,omitempty"`
}

// ImpliedVolResponse is the result of an implied-vol solve: the solved
// vol (whole-number percent), the full repricing at it, and optionally
// the curve re-derived at the solved level.
type ImpliedVolResponse struct {
	ImpliedVolPct float64              `json:"implied_vol_pct"`
	Result        pricing.Result       `json:"result"`
	Curve         []pricing.CurvePoint `json:"curve,omitempty"`
}

// CurveResponse is the 201-point payoff/P&L sweep.
type CurveResponse struct {
	Curve []pricing.CurvePoint `json:"curve"`
}

// ErrorResponse is the error envelope for all failure responses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
