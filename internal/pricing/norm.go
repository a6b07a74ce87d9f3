package pricing

import "math"

const sqrt2Pi = 2.5066282746310002

// Zelen & Severo rational-polynomial coefficients for the standard
// normal CDF (Abramowitz & Stegun 26.2.17). Absolute error < 7.5e-8,
// which is well inside pricing precision.
const (
	cdfGamma = 0.2316419
	cdfA1    = 0.319381530
	cdfA2    = -0.356563782
	cdfA3    = 1.781477937
	cdfA4    = -1.821255978
	cdfA5    = 1.330274429
)

// normCDF returns P(Z <= x) for a standard normal Z.
//
// The approximation is evaluated on |x| and reflected for negative
// arguments, so normCDF(-x) == 1 - normCDF(x) holds exactly.
func normCDF(x float64) float64 {
	t := 1 / (1 + cdfGamma*math.Abs(x))
	poly := t * (cdfA1 + t*(cdfA2+t*(cdfA3+t*(cdfA4+t*cdfA5))))
	p := 1 - normPDF(x)*poly
	if x >= 0 {
		return p
	}
	return 1 - p
}

// normPDF returns the standard normal density exp(-x^2/2) / sqrt(2*pi).
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}
