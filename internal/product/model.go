// Package product bundles per-product-family assumptions: decrement
// providers, charges, commission and discounting, plus the product-specific
// hooks the stepping engine calls for claims and account roll-forward.
package product

import (
	"math"

	"github.com/lifesim/lifesim/internal/domain"
	"github.com/lifesim/lifesim/internal/rates"
)

// Model is the configuration bundle the simulation engine runs against.
// TermLife and AccountBased are the two families.
type Model interface {
	// Kind names the product family for reporting.
	Kind() string
	// Mortality and Lapse supply the decrement assumptions.
	Mortality() rates.Provider
	Lapse() rates.Provider
	// HasAccount reports whether the monthly account roll-forward stage
	// applies.
	HasAccount() bool

	// AcquisitionCost is the per-policy expense charged when a group is
	// admitted as new business.
	AcquisitionCost() float64
	// MaintenanceCost is the per-policy maintenance expense for the given
	// month, inflated from the annual cost.
	MaintenanceCost(month int) float64
	// CommissionRate applies to premiums paid within the first twelve
	// policy months.
	CommissionRate() float64
	// PremiumLoad is the loading taken off gross premiums.
	PremiumLoad() float64
	// DiscountFactor discounts a cashflow at the given month back to the
	// simulation epoch.
	DiscountFactor(month int) float64

	// ExpiryClaim is the per-policy payout when a policy matures.
	ExpiryClaim(p domain.Policy) float64
	// DecrementClaim converts one group's deaths and lapses in a month
	// into a claim amount.
	DecrementClaim(p domain.Policy, deaths, lapses float64) float64
	// RollForward applies one month's account movement to a policy and
	// returns the replacement policy value plus the per-policy changes.
	// Only called when HasAccount is true.
	RollForward(p domain.Policy, month int) (domain.Policy, domain.AccountChanges)
}

// DiscountCurve holds annual spot rates indexed by duration in whole years.
// Months beyond the end of the curve reuse the final rate; an empty curve
// discounts nothing.
type DiscountCurve []float64

// Factor converts the curve into a monthly discount factor,
// (1+rate)^(-months/12).
func (c DiscountCurve) Factor(month int) float64 {
	if len(c) == 0 || month <= 0 {
		return 1
	}
	year := month / 12
	if year >= len(c) {
		year = len(c) - 1
	}
	return math.Pow(1+c[year], -float64(month)/12)
}

// flatFactor discounts at a single annual rate.
func flatFactor(rate float64, month int) float64 {
	if rate == 0 || month <= 0 {
		return 1
	}
	return math.Pow(1+rate, -float64(month)/12)
}

// inflatedMonthly spreads an annual cost over twelve months and inflates it
// continuously by policy month.
func inflatedMonthly(annualCost, inflation float64, month int) float64 {
	if annualCost == 0 {
		return 0
	}
	base := annualCost / 12
	if inflation == 0 || month <= 0 {
		return base
	}
	return base * math.Pow(1+inflation, float64(month)/12)
}
