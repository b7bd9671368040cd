package product

import (
	"math"
	"math/rand"
)

// GenerateReturns produces a log-normal monthly investment return path:
// exp((mu - sigma^2/2)/12 + sigma*sqrt(1/12)*Z) - 1 per month. Drift and
// volatility are annual. The path is reproducible for a given seed; callers
// are free to supply any path of their own instead.
func GenerateReturns(months int, drift, volatility float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	dt := 1.0 / 12.0
	out := make([]float64, months)
	for i := range out {
		z := rng.NormFloat64()
		out[i] = math.Exp((drift-volatility*volatility/2)*dt+volatility*math.Sqrt(dt)*z) - 1
	}
	return out
}
