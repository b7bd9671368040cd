package domain

// AccountChanges captures one month's account roll-forward for a single
// policy. All amounts are per policy; multiply by the group count to scale to
// the whole group.
type AccountChanges struct {
	// PremiumPaid is the gross premium collected.
	PremiumPaid float64
	// PremiumIntoAccount is the premium net of load credited to the account.
	PremiumIntoAccount float64
	// MaintenanceFee is the account maintenance charge deducted.
	MaintenanceFee float64
	// InsuranceCharge is the cost-of-insurance deduction on the amount at risk.
	InsuranceCharge float64
	// InvestmentCredit is the investment return credited for the period.
	InvestmentCredit float64
	// NetChange is the end-of-month account value minus the start-of-month
	// account value.
	NetChange float64
}

// Decrement records deaths or lapses hitting one group in one month. Group is
// a pre-decrement snapshot, not a live reference into the active set.
type Decrement struct {
	Group PolicyGroup
	Count float64
}

// AccountEntry pairs a pre-roll-forward group snapshot with the per-policy
// account changes applied to it.
type AccountEntry struct {
	Group   PolicyGroup
	Changes AccountChanges
}

// EventRecord is the structured output of one simulation step. It is
// allocated once per run and reused: the stepping engine appends into it and
// the caller must Clear it before the next step. The deaths/lapses lists are
// sparse and only hold non-zero occurrences.
type EventRecord struct {
	Month    int
	Deaths   []Decrement
	Lapses   []Decrement
	Expired  []PolicyGroup
	Started  []PolicyGroup
	Accounts []AccountEntry
	// ClaimedAmount is the total claim outgo recorded this step: death and
	// surrender benefits plus maturity payouts.
	ClaimedAmount float64
	// ExpenseAmount is the total expense recorded this step: acquisition
	// costs on new business and, for account products, maintenance.
	ExpenseAmount float64
}

// NewEventRecord allocates an empty record ready for the first step.
func NewEventRecord() *EventRecord {
	return &EventRecord{}
}

// Clear resets the record for reuse, keeping the backing arrays.
func (r *EventRecord) Clear() {
	r.Month = 0
	r.Deaths = r.Deaths[:0]
	r.Lapses = r.Lapses[:0]
	r.Expired = r.Expired[:0]
	r.Started = r.Started[:0]
	r.Accounts = r.Accounts[:0]
	r.ClaimedAmount = 0
	r.ExpenseAmount = 0
}
