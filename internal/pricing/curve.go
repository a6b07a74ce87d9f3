package pricing

import (
	"fmt"
	"math"
)

// curveSteps equal steps between the sweep bounds, giving
// curveSteps+1 points inclusive.
const curveSteps = 200

// BuildCurve sweeps the spot from max(1, 0.5*S) to 1.5*S in curveSteps
// equal steps and reprices at every point while holding strike, expiry,
// volatility, rate and dividend yield fixed. The result is a snapshot
// ("what if spot moves, nothing else changes"), not a time-decay path.
//
// entryCall and entryPut are the theoretical prices at the original spot;
// the payoff and mark-to-market P&L series are measured against them and
// multiplied by the position direction, as is the intrinsic-value series.
// Points are ordered by ascending spot.
func BuildCurve(in MarketInputs, dir Direction, entryCall, entryPut float64) ([]CurvePoint, error) {
	if in.Spot <= 0 || in.Strike <= 0 {
		return nil, fmt.Errorf("%w: spot and strike must be positive", ErrInvalidInput)
	}
	sigma := in.VolPct / 100
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: volatility must be positive", ErrInvalidInput)
	}

	T := YearFraction(in.Valuation, in.Exercise)
	r := in.RatePct / 100
	q := in.DividendPct / 100
	sign := dir.sign()

	lo := math.Max(1, 0.5*in.Spot)
	hi := 1.5 * in.Spot
	step := (hi - lo) / curveSteps

	points := make([]CurvePoint, 0, curveSteps+1)
	for i := 0; i <= curveSteps; i++ {
		spot := lo + float64(i)*step
		res := evaluate(spot, in.Strike, T, sigma, r, q)

		callIntrinsic := math.Max(0, spot-in.Strike)
		putIntrinsic := math.Max(0, in.Strike-spot)

		points = append(points, CurvePoint{
			Spot:           spot,
			CallPayoffPnL:  (callIntrinsic - entryCall) * sign,
			PutPayoffPnL:   (putIntrinsic - entryPut) * sign,
			CallCurrentPnL: (res.Call.Price - entryCall) * sign,
			PutCurrentPnL:  (res.Put.Price - entryPut) * sign,
			CallIntrinsic:  callIntrinsic * sign,
			PutIntrinsic:   putIntrinsic * sign,
			CallDelta:      res.Call.Delta,
			PutDelta:       res.Put.Delta,
			Gamma:          res.Call.Gamma,
			Vega:           res.Call.Vega,
		})
	}
	return points, nil
}
