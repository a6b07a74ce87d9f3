package data

import "math"

// AnnualizedVolatility estimates historical volatility from a close
// series: sample standard deviation of daily log returns scaled by
// sqrt(252) trading days. With fewer than three closes there is no
// sample variance to speak of; a 30% placeholder is returned so
// downstream comparisons stay sane.
func AnnualizedVolatility(closes []float64) float64 {
	if len(closes) < 3 {
		return 0.30
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		rets = append(rets, math.Log(closes[i]/closes[i-1]))
	}
	mean := 0.0
	for _, v := range rets {
		mean += v
	}
	mean /= float64(len(rets))
	sd := 0.0
	for _, v := range rets {
		sd += (v - mean) * (v - mean)
	}
	sd = math.Sqrt(sd / float64(len(rets)-1))
	return sd * math.Sqrt(252.0)
}

// Closes extracts the close series from a bar slice.
func Closes(bars []Bar) []float64 {
	out := make([]float64, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Close)
	}
	return out
}
