package calculation

import (
	"github.com/sirupsen/logrus"

	"github.com/lifesim/lifesim/internal/domain"
	"github.com/lifesim/lifesim/internal/product"
	"github.com/lifesim/lifesim/internal/rates"
)

// Engine advances a SimulationState against a product model. The engine
// itself is stateless; all mutable state lives in the SimulationState owned
// by the caller, and nothing mutates it outside AdvanceOneStep/Run.
type Engine struct {
	Model product.Model
}

// NewEngine creates an engine for the given product model.
func NewEngine(m product.Model) *Engine {
	return &Engine{Model: m}
}

// StepFunc observes one completed step. The record is reused across steps:
// it is only valid until the next step begins, and any mutation the callback
// makes is discarded on the next clear.
type StepFunc func(rec *domain.EventRecord)

// AdvanceOneStep performs exactly one month's transition in a fixed stage
// order: expiration, new-business admission, account roll-forward (account
// products only), then mid-month decrement (deaths before lapses). The
// record is appended to, not cleared; the caller clears it between steps.
// CurrentMonth advances by one at the end.
func (e *Engine) AdvanceOneStep(st *SimulationState, rec *domain.EventRecord) {
	month := st.CurrentMonth
	rec.Month = month

	e.expireMaturities(st, rec, month)
	e.admitNewBusiness(st, rec, month)
	if e.Model.HasAccount() {
		e.rollForwardAccounts(st, rec, month)
	}
	e.applyDecrements(st, rec, month)

	st.CurrentMonth = month + 1

	logrus.WithFields(logrus.Fields{
		"month":   month,
		"active":  len(st.Active),
		"claimed": rec.ClaimedAmount,
		"expense": rec.ExpenseAmount,
	}).Debug("step complete")
}

// expireMaturities removes every active group whose policy matures this
// month and records the product's maturity payout.
func (e *Engine) expireMaturities(st *SimulationState, rec *domain.EventRecord, month int) {
	kept := st.Active[:0]
	for _, g := range st.Active {
		if g.Policy.HasTerm() && month == g.Policy.MaturityMonth() {
			rec.Expired = append(rec.Expired, g)
			rec.ClaimedAmount += g.Count * e.Model.ExpiryClaim(g.Policy)
			continue
		}
		kept = append(kept, g)
	}
	st.Active = kept
}

// admitNewBusiness moves groups whose issue month is this month from
// inactive to active and charges the acquisition expense.
func (e *Engine) admitNewBusiness(st *SimulationState, rec *domain.EventRecord, month int) {
	kept := st.Inactive[:0]
	for _, g := range st.Inactive {
		if g.Policy.IssueMonth == month {
			st.Active = append(st.Active, g)
			rec.Started = append(rec.Started, g)
			rec.ExpenseAmount += g.Count * e.Model.AcquisitionCost()
			continue
		}
		kept = append(kept, g)
	}
	st.Inactive = kept
}

// rollForwardAccounts applies the monthly account movement to every active
// group, replacing each group's policy with the updated account value. The
// maintenance expense for account products is recorded here so the period
// cashflow can be derived from the record alone.
func (e *Engine) rollForwardAccounts(st *SimulationState, rec *domain.EventRecord, month int) {
	for i, g := range st.Active {
		updated, changes := e.Model.RollForward(g.Policy, month)
		rec.Accounts = append(rec.Accounts, domain.AccountEntry{Group: g, Changes: changes})
		rec.ExpenseAmount += g.Count * e.Model.MaintenanceCost(g.Policy.DurationMonths(month))
		st.Active[i] = g.WithPolicy(updated)
	}
}

// applyDecrements applies one month of mortality then lapse to every active
// group. Deaths come off the original count and lapses off the post-death
// remainder; the order is part of the contract. Population-level providers
// are evaluated once for the whole step, per-policy providers once per group.
// Zero decrements leave no entry in the event lists. Groups are replaced by
// index with reduced counts; exhausted groups are not removed.
func (e *Engine) applyDecrements(st *SimulationState, rec *domain.EventRecord, month int) {
	mort := e.Model.Mortality()
	lapse := e.Model.Lapse()

	// The capability flag is checked once per step, never inside the group loop.
	mortPerPolicy := mort.PerPolicy()
	lapsePerPolicy := lapse.PerPolicy()

	var popMortality, popLapse float64
	if !mortPerPolicy {
		popMortality = rates.MonthlyFromAnnual(mort.AnnualRate(month))
	}
	if !lapsePerPolicy {
		popLapse = rates.MonthlyFromAnnual(lapse.AnnualRate(month))
	}

	for i, g := range st.Active {
		q := popMortality
		if mortPerPolicy {
			q = rates.MonthlyFromAnnual(mort.AnnualRateFor(month, g.Policy))
		}
		w := popLapse
		if lapsePerPolicy {
			w = rates.MonthlyFromAnnual(lapse.AnnualRateFor(month, g.Policy))
		}

		deaths := g.Count * q
		lapses := (g.Count - deaths) * w
		if deaths == 0 && lapses == 0 {
			continue
		}

		if deaths != 0 {
			rec.Deaths = append(rec.Deaths, domain.Decrement{Group: g, Count: deaths})
		}
		if lapses != 0 {
			rec.Lapses = append(rec.Lapses, domain.Decrement{Group: g, Count: lapses})
		}
		rec.ClaimedAmount += e.Model.DecrementClaim(g.Policy, deaths, lapses)
		st.Active[i] = g.WithCount(g.Count - deaths - lapses)
	}
}

// Run builds the initial state from the given groups and advances it for the
// requested number of months. The optional callback fires synchronously
// after each step with the just-produced record.
func (e *Engine) Run(groups []domain.PolicyGroup, months int, onStep StepFunc) *SimulationState {
	st := NewSimulationState(groups, 0)
	rec := domain.NewEventRecord()
	for i := 0; i < months; i++ {
		rec.Clear()
		e.AdvanceOneStep(st, rec)
		if onStep != nil {
			onStep(rec)
		}
	}
	return st
}
