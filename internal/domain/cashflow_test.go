package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cf(premiums, investments, claims, expenses, commissions, accountChange float64) CashFlow {
	return CashFlow{
		Premiums:      decimal.NewFromFloat(premiums),
		Investments:   decimal.NewFromFloat(investments),
		Claims:        decimal.NewFromFloat(claims),
		Expenses:      decimal.NewFromFloat(expenses),
		Commissions:   decimal.NewFromFloat(commissions),
		AccountChange: decimal.NewFromFloat(accountChange),
	}
}

func TestCashFlowAddIsPointwise(t *testing.T) {
	a := cf(100, 10, 40, 5, 3, 2).WithNet(1)
	b := cf(200, 20, 60, 15, 7, 8).WithNet(1)

	sum := a.Add(b)

	assert.True(t, sum.Premiums.Equal(decimal.NewFromInt(300)), "Premiums should add")
	assert.True(t, sum.Investments.Equal(decimal.NewFromInt(30)), "Investments should add")
	assert.True(t, sum.Claims.Equal(decimal.NewFromInt(100)), "Claims should add")
	assert.True(t, sum.Expenses.Equal(decimal.NewFromInt(20)), "Expenses should add")
	assert.True(t, sum.Commissions.Equal(decimal.NewFromInt(10)), "Commissions should add")
	assert.True(t, sum.AccountChange.Equal(decimal.NewFromInt(10)), "AccountChange should add")
	assert.True(t, sum.Net.Equal(a.Net.Add(b.Net)), "Net should add")
	assert.True(t, sum.Discounted.Equal(a.Discounted.Add(b.Discounted)), "Discounted should add")
}

func TestCashFlowAddZeroIdentity(t *testing.T) {
	a := cf(123.45, 6.78, 90.12, 3.4, 5.6, 7.8).WithNet(0.97)
	var zero CashFlow

	sum := a.Add(zero)

	assert.True(t, sum.Premiums.Equal(a.Premiums), "adding zero should not change Premiums")
	assert.True(t, sum.Net.Equal(a.Net), "adding zero should not change Net")
	assert.True(t, sum.Discounted.Equal(a.Discounted), "adding zero should not change Discounted")
}

func TestCashFlowWithNet(t *testing.T) {
	statement := cf(100, 10, 40, 5, 3, 2).WithNet(0.5)

	// 100 + 10 - 40 - 5 - 3 - 2 = 60
	assert.True(t, statement.Net.Equal(decimal.NewFromInt(60)), "Net should be premiums+investments-claims-expenses-commissions-accountChange")
	assert.True(t, statement.Discounted.Equal(decimal.NewFromInt(30)), "Discounted should be net times the factor")
}

func TestSumCashFlows(t *testing.T) {
	periods := []CashFlow{
		cf(10, 0, 5, 1, 0, 0).WithNet(1),
		cf(20, 0, 5, 1, 0, 0).WithNet(1),
		cf(30, 0, 5, 1, 0, 0).WithNet(1),
	}

	total := SumCashFlows(periods)

	assert.True(t, total.Premiums.Equal(decimal.NewFromInt(60)), "Should sum premiums across periods")
	assert.True(t, total.Claims.Equal(decimal.NewFromInt(15)), "Should sum claims across periods")
	assert.True(t, total.Net.Equal(decimal.NewFromInt(36)), "Should sum nets across periods")

	empty := SumCashFlows(nil)
	assert.True(t, empty.Net.IsZero(), "Empty sum should be the zero cashflow")
}
