package pricing

import (
	"fmt"
	"math"
)

// Price values a European call and put under Black-Scholes-Merton with a
// continuous dividend yield, returning both sides' price and Greeks plus
// the year fraction used.
//
// Time to expiry is derived from the input dates via YearFraction, so a
// degenerate date pair prices at the 0.001-year floor rather than failing.
// Volatility, spot and strike are validated: non-positive values return
// ErrInvalidInput.
func Price(in MarketInputs) (*Result, error) {
	if in.Spot <= 0 || in.Strike <= 0 {
		return nil, fmt.Errorf("%w: spot and strike must be positive", ErrInvalidInput)
	}
	sigma := in.VolPct / 100
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: volatility must be positive", ErrInvalidInput)
	}

	T := YearFraction(in.Valuation, in.Exercise)
	res := evaluate(in.Spot, in.Strike, T, sigma, in.RatePct/100, in.DividendPct/100)
	return &res, nil
}

// evaluate computes both sides at already-validated decimal parameters.
// Callers guarantee S, K, T, sigma > 0.
func evaluate(S, K, T, sigma, r, q float64) Result {
	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r-q+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	dfq := math.Exp(-q * T) // dividend discount factor
	dfr := math.Exp(-r * T) // rate discount factor

	nd1 := normCDF(d1)
	nd2 := normCDF(d2)
	nNegD1 := normCDF(-d1)
	nNegD2 := normCDF(-d2)
	pdfD1 := normPDF(d1)

	call := S*dfq*nd1 - K*dfr*nd2
	put := K*dfr*nNegD2 - S*dfq*nNegD1

	// Gamma and vega are identical for call and put at the same point.
	gamma := dfq * pdfD1 / (S * sigma * sqrtT)
	vega := S * dfq * pdfD1 * sqrtT / 100 // per 1 vol point

	timeDecay := -S * pdfD1 * sigma * dfq / (2 * sqrtT)
	thetaCall := (timeDecay - r*K*dfr*nd2 + q*S*dfq*nd1) / 365 // per calendar day
	thetaPut := (timeDecay + r*K*dfr*nNegD2 - q*S*dfq*nNegD1) / 365

	return Result{
		Call: Greeks{
			Price: call,
			Delta: dfq * nd1,
			Gamma: gamma,
			Vega:  vega,
			Theta: thetaCall,
		},
		Put: Greeks{
			Price: put,
			Delta: -dfq * nNegD1,
			Gamma: gamma,
			Vega:  vega,
			Theta: thetaPut,
		},
		TimeToExpiry: T,
	}
}
