package pricing

import (
	"fmt"
	"math"
)

const (
	ivInitialGuess = 0.30
	ivMaxIter      = 100
	ivTolerance    = 1e-4

	// Clamp bounds keep Newton iterates in a numerically sane,
	// economically meaningful volatility domain.
	ivMin = 0.001
	ivMax = 5.0
)

// IVResult is a successful implied-volatility solve: the solved
// volatility as a whole-number percent plus a full repricing at it.
// VolPct feeds straight back into MarketInputs.VolPct; callers rebuild
// the curve with BuildCurve at the solved level.
type IVResult struct {
	Result
	VolPct float64 `json:"implied_vol_pct"`
}

// SolveImpliedVol finds the volatility at which the model price of the
// given side matches an observed market price, by Newton-Raphson on sigma
// with the raw (unscaled) vega as the derivative.
//
// Validation is stricter than the pricer's: the market price must be a
// finite positive number, the exercise date must strictly follow the
// valuation date, and the price must not sit below discounted intrinsic
// value (an arbitrage violation). All three return ErrInvalidInput.
// Exhausting the iteration budget, or losing the derivative to a
// numerically zero vega, returns ErrNonConvergence with the iteration
// count where the solve stopped. The failure is never retried internally.
func SolveImpliedVol(in MarketInputs, side Side, marketPrice float64) (*IVResult, error) {
	if math.IsNaN(marketPrice) || math.IsInf(marketPrice, 0) || marketPrice <= 0 {
		return nil, fmt.Errorf("%w: market price must be a positive number", ErrInvalidInput)
	}
	if in.Spot <= 0 || in.Strike <= 0 {
		return nil, fmt.Errorf("%w: spot and strike must be positive", ErrInvalidInput)
	}
	if wholeDays(in.Valuation, in.Exercise) <= 0 {
		return nil, fmt.Errorf("%w: exercise date must follow valuation date", ErrInvalidInput)
	}

	T := YearFraction(in.Valuation, in.Exercise)
	r := in.RatePct / 100
	q := in.DividendPct / 100

	// A market price below discounted intrinsic value has no solution.
	fwdSpot := in.Spot * math.Exp(-q*T)
	fwdStrike := in.Strike * math.Exp(-r*T)
	intrinsic := math.Max(0, fwdSpot-fwdStrike)
	if side == SidePut {
		intrinsic = math.Max(0, fwdStrike-fwdSpot)
	}
	if marketPrice < intrinsic {
		return nil, fmt.Errorf("%w: market price %.4f below intrinsic value %.4f", ErrInvalidInput, marketPrice, intrinsic)
	}

	sigma := ivInitialGuess
	for i := 0; i < ivMaxIter; i++ {
		res := evaluate(in.Spot, in.Strike, T, sigma, r, q)
		price := res.Call.Price
		if side == SidePut {
			price = res.Put.Price
		}

		diff := price - marketPrice
		if math.Abs(diff) < ivTolerance {
			return &IVResult{Result: res, VolPct: sigma * 100}, nil
		}

		// res.Vega is scaled per vol point; Newton needs d(price)/d(sigma).
		rawVega := res.Call.Vega * 100
		if rawVega < 1e-8 {
			return nil, fmt.Errorf("%w: vega vanished at iteration %d", ErrNonConvergence, i+1)
		}

		sigma -= diff / rawVega
		if sigma < ivMin {
			sigma = ivMin
		}
		if sigma > ivMax {
			sigma = ivMax
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNonConvergence, ivMaxIter)
}
