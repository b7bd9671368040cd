package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/lifesim/internal/domain"
)

// firstYearMonths is how long commission is earned on premiums, counted in
// policy months from issue.
const firstYearMonths = 12

// CashFlowFromRecord folds one step's event record into a cashflow
// statement. Claims and expenses come straight off the record's running
// totals. For account products the record's account-changes list also yields
// premiums, investment income, commissions and the account-value movement,
// scaled by each entry's group count. Net and Discounted are left zero; the
// caller finalizes them once the state accrual (if any) has been added.
func (e *Engine) CashFlowFromRecord(rec *domain.EventRecord) domain.CashFlow {
	cf := domain.CashFlow{
		Claims:   decimal.NewFromFloat(rec.ClaimedAmount),
		Expenses: decimal.NewFromFloat(rec.ExpenseAmount),
	}
	if !e.Model.HasAccount() {
		return cf
	}

	var premiums, investments, commissions, accountChange float64
	commissionRate := e.Model.CommissionRate()
	for _, entry := range rec.Accounts {
		count := entry.Group.Count
		premiums += count * entry.Changes.PremiumPaid
		investments += count * entry.Changes.InvestmentCredit
		accountChange += count * entry.Changes.NetChange
		if entry.Group.Policy.DurationMonths(rec.Month) < firstYearMonths {
			commissions += commissionRate * count * entry.Changes.PremiumPaid
		}
	}
	cf.Premiums = decimal.NewFromFloat(premiums)
	cf.Investments = decimal.NewFromFloat(investments)
	cf.Commissions = decimal.NewFromFloat(commissions)
	cf.AccountChange = decimal.NewFromFloat(accountChange)
	return cf
}

// CashFlowFromState accrues the premium and expense income that term
// products earn from the in-force book in a period: premiums due from every
// active group, the inflated maintenance expense, and first-year commission.
// It reads the post-step active set for the month just completed; account
// products capture all of this through the record instead.
func (e *Engine) CashFlowFromState(st *SimulationState, month int) domain.CashFlow {
	var premiums, expenses, commissions float64
	commissionRate := e.Model.CommissionRate()
	for _, g := range st.Active {
		if g.Policy.PremiumDue(month) {
			p := g.Count * g.Policy.Premium
			premiums += p
			if g.Policy.DurationMonths(month) < firstYearMonths {
				commissions += commissionRate * p
			}
		}
		expenses += g.Count * e.Model.MaintenanceCost(g.Policy.DurationMonths(month))
	}
	return domain.CashFlow{
		Premiums:    decimal.NewFromFloat(premiums),
		Expenses:    decimal.NewFromFloat(expenses),
		Commissions: decimal.NewFromFloat(commissions),
	}
}

// PeriodCashFlow builds the full cashflow for the month a record describes:
// record-derived flows plus, for term products, the in-force accrual. Net
// and Discounted are finalized with the model's discount factor for that
// month.
func (e *Engine) PeriodCashFlow(rec *domain.EventRecord, st *SimulationState) domain.CashFlow {
	cf := e.CashFlowFromRecord(rec)
	if !e.Model.HasAccount() {
		cf = cf.Add(e.CashFlowFromState(st, rec.Month))
	}
	return cf.WithNet(e.Model.DiscountFactor(rec.Month))
}

// Result is a completed projection: the per-period cashflows, their pointwise
// sum, and the final state.
type Result struct {
	ProductKind string
	Months      int
	Periods     []domain.CashFlow
	Total       domain.CashFlow
	Final       *SimulationState
}

// Project runs a full simulation and aggregates every period's cashflow.
// The optional callback still observes each step's event record.
func (e *Engine) Project(groups []domain.PolicyGroup, months int, onStep StepFunc) *Result {
	res := &Result{
		ProductKind: e.Model.Kind(),
		Months:      months,
		Periods:     make([]domain.CashFlow, 0, months),
	}
	st := NewSimulationState(groups, 0)
	rec := domain.NewEventRecord()
	for i := 0; i < months; i++ {
		rec.Clear()
		e.AdvanceOneStep(st, rec)
		res.Periods = append(res.Periods, e.PeriodCashFlow(rec, st))
		if onStep != nil {
			onStep(rec)
		}
	}
	res.Total = domain.SumCashFlows(res.Periods)
	res.Final = st
	return res
}
