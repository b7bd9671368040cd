// Package rates holds the mortality and lapse assumption providers consumed
// by the simulation engine.
package rates

import (
	"math"

	"github.com/lifesim/lifesim/internal/domain"
)

// Provider supplies annual decrement rates. Every provider implements the
// population-level slot (AnnualRate); providers whose rates depend on policy
// attributes additionally report PerPolicy() == true and implement
// AnnualRateFor with real per-policy behaviour. The stepping engine checks
// PerPolicy once per step and computes a single population rate when the
// per-policy capability is absent, so population providers stay cheap.
type Provider interface {
	// PerPolicy reports whether rates vary by policy attributes.
	PerPolicy() bool
	// AnnualRate is the population-level annual rate at the given month.
	AnnualRate(month int) float64
	// AnnualRateFor is the per-policy annual rate at the given month.
	// Population providers broadcast AnnualRate here.
	AnnualRateFor(month int, p domain.Policy) float64
}

// MonthlyFromAnnual converts an annual decrement rate to a monthly one under
// a uniform decrement assumption: 1 - (1-q)^(1/12).
func MonthlyFromAnnual(annual float64) float64 {
	if annual == 0 {
		return 0
	}
	return 1 - math.Pow(1-annual, 1.0/12.0)
}

// Constant is a time- and policy-invariant rate.
type Constant struct {
	Rate float64
}

func (c Constant) PerPolicy() bool              { return false }
func (c Constant) AnnualRate(month int) float64 { return c.Rate }
func (c Constant) AnnualRateFor(month int, _ domain.Policy) float64 {
	return c.Rate
}

// TimeVarying wraps a function of simulation month, shared by all policies.
type TimeVarying struct {
	Fn func(month int) float64
}

func (t TimeVarying) PerPolicy() bool              { return false }
func (t TimeVarying) AnnualRate(month int) float64 { return t.Fn(month) }
func (t TimeVarying) AnnualRateFor(month int, _ domain.Policy) float64 {
	return t.Fn(month)
}

// Schedule is a time-varying rate given as a per-month list. Months beyond
// the end of the list reuse the final entry.
type Schedule struct {
	Rates []float64
}

func (s Schedule) PerPolicy() bool { return false }

func (s Schedule) AnnualRate(month int) float64 {
	if len(s.Rates) == 0 {
		return 0
	}
	if month < 0 {
		month = 0
	}
	if month >= len(s.Rates) {
		month = len(s.Rates) - 1
	}
	return s.Rates[month]
}

func (s Schedule) AnnualRateFor(month int, _ domain.Policy) float64 {
	return s.AnnualRate(month)
}

// PolicyVarying wraps an arbitrary function of month and policy. It is the
// most general provider and always per-policy.
type PolicyVarying struct {
	Fn func(month int, p domain.Policy) float64
}

func (v PolicyVarying) PerPolicy() bool { return true }

// AnnualRate evaluates the function against a zero policy. The engine never
// calls this slot for per-policy providers; it exists so PolicyVarying
// satisfies Provider.
func (v PolicyVarying) AnnualRate(month int) float64 {
	return v.Fn(month, domain.Policy{})
}

func (v PolicyVarying) AnnualRateFor(month int, p domain.Policy) float64 {
	return v.Fn(month, p)
}
