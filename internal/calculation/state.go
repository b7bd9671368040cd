// Package calculation owns the simulation stepping engine: the state machine
// that advances a portfolio of policy groups one month at a time, the
// cashflow aggregation over the per-step event records, and the premium
// estimation pass.
package calculation

import "github.com/lifesim/lifesim/internal/domain"

// SimulationState is the single piece of mutable state in a run. A group is
// in exactly one of Active or Inactive: Inactive holds groups whose issue
// month is strictly in the future, and a group moves to Active exactly once,
// when the current month reaches its issue month. Decremented groups stay in
// Active with a reduced count; near-zero groups are deliberately never
// pruned, since pruning would perturb numerical output.
type SimulationState struct {
	Active       []domain.PolicyGroup
	Inactive     []domain.PolicyGroup
	CurrentMonth int
}

// NewSimulationState partitions the given groups by issue month relative to
// the start month. Groups issued at or before the start month begin active;
// the rest wait for admission.
func NewSimulationState(groups []domain.PolicyGroup, startMonth int) *SimulationState {
	st := &SimulationState{CurrentMonth: startMonth}
	for _, g := range groups {
		if g.Policy.IssueMonth > startMonth {
			st.Inactive = append(st.Inactive, g)
		} else {
			st.Active = append(st.Active, g)
		}
	}
	return st
}

// TotalActiveCount sums the weighted policy count over the active groups.
func (st *SimulationState) TotalActiveCount() float64 {
	var total float64
	for _, g := range st.Active {
		total += g.Count
	}
	return total
}
