package product

import (
	"math"

	"github.com/lifesim/lifesim/internal/domain"
	"github.com/lifesim/lifesim/internal/rates"
)

// AccountBased is a universal-life-style product: premiums net of load feed a
// per-policy account that is charged a maintenance fee and cost of insurance
// each month and credited with investment returns.
type AccountBased struct {
	MortalityModel rates.Provider
	LapseModel     rates.Provider

	// Load is netted off gross premiums before they reach the account.
	Load float64
	// MaintenanceFeeRate is the monthly fee as a fraction of the account
	// value after premium allocation.
	MaintenanceFeeRate float64
	// CostOfInsuranceRate is the monthly charge as a fraction of the amount
	// at risk.
	CostOfInsuranceRate float64
	// Commission applies to premiums paid in the first twelve policy months.
	Commission float64
	// Returns is the per-month investment return path indexed by absolute
	// simulation month. Months beyond the path credit nothing.
	Returns []float64

	Acquisition       float64
	AnnualMaintenance float64
	Inflation         float64
	// DiscountRate is a flat annual rate.
	DiscountRate float64
}

func (a *AccountBased) Kind() string              { return "account_based" }
func (a *AccountBased) Mortality() rates.Provider { return a.MortalityModel }
func (a *AccountBased) Lapse() rates.Provider     { return a.LapseModel }
func (a *AccountBased) HasAccount() bool          { return true }
func (a *AccountBased) AcquisitionCost() float64  { return a.Acquisition }
func (a *AccountBased) CommissionRate() float64   { return a.Commission }
func (a *AccountBased) PremiumLoad() float64      { return a.Load }

func (a *AccountBased) MaintenanceCost(month int) float64 {
	return inflatedMonthly(a.AnnualMaintenance, a.Inflation, month)
}

func (a *AccountBased) DiscountFactor(month int) float64 {
	return flatFactor(a.DiscountRate, month)
}

// InvestmentReturn is the credited return for an absolute month, zero outside
// the supplied path.
func (a *AccountBased) InvestmentReturn(month int) float64 {
	if month < 0 || month >= len(a.Returns) {
		return 0
	}
	return a.Returns[month]
}

// ExpiryClaim pays out the greater of the account value and the assured
// amount at maturity.
func (a *AccountBased) ExpiryClaim(p domain.Policy) float64 {
	return math.Max(p.AccountValue, p.Assured)
}

// DecrementClaim pays the greater of account value and assured per death,
// and surrenders the account value per lapse.
func (a *AccountBased) DecrementClaim(p domain.Policy, deaths, lapses float64) float64 {
	return deaths*math.Max(p.AccountValue, p.Assured) + lapses*p.AccountValue
}

// RollForward applies one month's account movement: premium in net of load,
// maintenance fee off, cost of insurance on the amount at risk (the greater
// of the post-fee account value and the assured amount), then investment
// crediting on the remainder.
func (a *AccountBased) RollForward(p domain.Policy, month int) (domain.Policy, domain.AccountChanges) {
	start := p.AccountValue

	var prem float64
	if p.PremiumDue(month) {
		prem = p.Premium
	}
	net := prem * (1 - a.Load)
	av := start + net

	fee := av * a.MaintenanceFeeRate
	av -= fee

	atRisk := math.Max(av, p.Assured)
	coi := atRisk * a.CostOfInsuranceRate
	av -= coi

	credit := av * a.InvestmentReturn(month)
	av += credit

	p.AccountValue = av
	return p, domain.AccountChanges{
		PremiumPaid:        prem,
		PremiumIntoAccount: net,
		MaintenanceFee:     fee,
		InsuranceCharge:    coi,
		InvestmentCredit:   credit,
		NetChange:          av - start,
	}
}
