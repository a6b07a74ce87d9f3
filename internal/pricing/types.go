// Package pricing implements the quantitative engine: Black-Scholes-Merton
// valuation and Greeks for European options, payoff/P&L curve generation
// across a spot sweep, and Newton-Raphson implied-volatility solving.
//
// Every entry point is a pure function over its inputs. Nothing is cached
// or retained between calls, so concurrent callers need no locking as long
// as each supplies its own MarketInputs snapshot.
package pricing

import "time"

// Side selects the option type in sign-sensitive formulas.
type Side string

const (
	SideCall Side = "call"
	SidePut  Side = "put"
)

// Direction is the position direction for payoff/P&L reporting. It
// multiplies the P&L series only, never the theoretical price or the
// Greeks: the Greeks describe the instrument, the P&L describes the trade.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

func (d Direction) sign() float64 {
	if d == Short {
		return -1
	}
	return 1
}

// MarketInputs is one immutable snapshot of the pricing inputs. The rate,
// dividend yield and volatility are whole-number percents (25 means 25%);
// they are converted to decimal fractions internally.
type MarketInputs struct {
	Spot        float64   `json:"spot"`
	Strike      float64   `json:"strike"`
	Valuation   time.Time `json:"valuation_date"`
	Exercise    time.Time `json:"exercise_date"`
	VolPct      float64   `json:"volatility_pct"`
	RatePct     float64   `json:"rate_pct"`
	DividendPct float64   `json:"dividend_pct"`
}

// Greeks holds the theoretical value and first-order sensitivities for one
// option side. Vega is per 1-percentage-point volatility change and theta
// per calendar day.
type Greeks struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
}

// Result is a full valuation of both sides at one input snapshot. Gamma
// and vega are side-independent, so Call and Put always carry identical
// values for those two fields.
type Result struct {
	Call         Greeks  `json:"call"`
	Put          Greeks  `json:"put"`
	TimeToExpiry float64 `json:"time_to_expiry"`
}

// CurvePoint is one row of the spot sweep. The three P&L series are
// direction-adjusted; the per-point Greeks are not.
type CurvePoint struct {
	Spot           float64 `json:"spot"`
	CallPayoffPnL  float64 `json:"call_payoff_pnl"`
	PutPayoffPnL   float64 `json:"put_payoff_pnl"`
	CallCurrentPnL float64 `json:"call_current_pnl"`
	PutCurrentPnL  float64 `json:"put_current_pnl"`
	CallIntrinsic  float64 `json:"call_intrinsic"`
	PutIntrinsic   float64 `json:"put_intrinsic"`
	CallDelta      float64 `json:"call_delta"`
	PutDelta       float64 `json:"put_delta"`
	Gamma          float64 `json:"gamma"`
	Vega           float64 `json:"vega"`
}
