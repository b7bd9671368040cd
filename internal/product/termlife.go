package product

import (
	"github.com/lifesim/lifesim/internal/domain"
	"github.com/lifesim/lifesim/internal/rates"
)

// TermLife is a level-premium protection product with no account value.
// Claims are the assured amount on death; nothing is paid on lapse or at
// maturity.
type TermLife struct {
	MortalityModel rates.Provider
	LapseModel     rates.Provider

	// Load is the premium loading used by premium estimation and netted off
	// premiums.
	Load float64
	// Acquisition is the per-policy acquisition expense at issue.
	Acquisition float64
	// AnnualMaintenance is the per-policy annual maintenance expense,
	// inflated by Inflation over the projection.
	AnnualMaintenance float64
	// Commission applies to premiums paid in the first twelve policy months.
	Commission float64
	Inflation  float64
	// Discount holds annual spot rates by duration year.
	Discount DiscountCurve
}

func (t *TermLife) Kind() string               { return "term_life" }
func (t *TermLife) Mortality() rates.Provider  { return t.MortalityModel }
func (t *TermLife) Lapse() rates.Provider      { return t.LapseModel }
func (t *TermLife) HasAccount() bool           { return false }
func (t *TermLife) AcquisitionCost() float64   { return t.Acquisition }
func (t *TermLife) CommissionRate() float64    { return t.Commission }
func (t *TermLife) PremiumLoad() float64       { return t.Load }

func (t *TermLife) MaintenanceCost(month int) float64 {
	return inflatedMonthly(t.AnnualMaintenance, t.Inflation, month)
}

func (t *TermLife) DiscountFactor(month int) float64 {
	return t.Discount.Factor(month)
}

// ExpiryClaim pays nothing: a term policy that reaches maturity simply ends.
func (t *TermLife) ExpiryClaim(domain.Policy) float64 { return 0 }

// DecrementClaim pays the assured amount per death. Lapses produce no claim.
func (t *TermLife) DecrementClaim(p domain.Policy, deaths, _ float64) float64 {
	return deaths * p.Assured
}

func (t *TermLife) RollForward(p domain.Policy, _ int) (domain.Policy, domain.AccountChanges) {
	return p, domain.AccountChanges{}
}
