package domain

import "github.com/shopspring/decimal"

// CashFlow is one period's cashflow statement from the insurer's point of
// view. Fields are decimals so that composing statements is exact pointwise
// addition.
type CashFlow struct {
	Premiums      decimal.Decimal `json:"premiums"`
	Investments   decimal.Decimal `json:"investments"`
	Claims        decimal.Decimal `json:"claims"`
	Expenses      decimal.Decimal `json:"expenses"`
	Commissions   decimal.Decimal `json:"commissions"`
	AccountChange decimal.Decimal `json:"accountChange"`
	Net           decimal.Decimal `json:"net"`
	Discounted    decimal.Decimal `json:"discounted"`
}

// Add returns the pointwise sum of two cashflows.
func (cf CashFlow) Add(o CashFlow) CashFlow {
	return CashFlow{
		Premiums:      cf.Premiums.Add(o.Premiums),
		Investments:   cf.Investments.Add(o.Investments),
		Claims:        cf.Claims.Add(o.Claims),
		Expenses:      cf.Expenses.Add(o.Expenses),
		Commissions:   cf.Commissions.Add(o.Commissions),
		AccountChange: cf.AccountChange.Add(o.AccountChange),
		Net:           cf.Net.Add(o.Net),
		Discounted:    cf.Discounted.Add(o.Discounted),
	}
}

// WithNet returns a copy with Net recomputed from the component fields and
// Discounted set to Net scaled by the given discount factor.
func (cf CashFlow) WithNet(discountFactor float64) CashFlow {
	cf.Net = cf.Premiums.
		Add(cf.Investments).
		Sub(cf.Claims).
		Sub(cf.Expenses).
		Sub(cf.Commissions).
		Sub(cf.AccountChange)
	cf.Discounted = cf.Net.Mul(decimal.NewFromFloat(discountFactor))
	return cf
}

// SumCashFlows folds a sequence of period cashflows into a single statement.
func SumCashFlows(periods []CashFlow) CashFlow {
	var total CashFlow
	for _, cf := range periods {
		total = total.Add(cf)
	}
	return total
}
