package pricing

import "errors"

var (
	// ErrInvalidInput reports inputs the engine refuses to price:
	// non-positive spot/strike/volatility, a non-finite or non-positive
	// market price, an exercise date that does not follow the valuation
	// date (solver only), or a market price below discounted intrinsic
	// value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNonConvergence reports that the implied-vol solver exhausted its
	// iteration budget without meeting tolerance. It is a terminal
	// result, never retried internally.
	ErrNonConvergence = errors.New("implied vol did not converge")
)
