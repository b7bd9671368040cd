package domain

import "fmt"

// Sex identifies the insured's sex for mortality lookup purposes.
type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "M"
	case Female:
		return "F"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// ParseSex converts a tabular sex code ("M"/"F") into a Sex value.
func ParseSex(code string) (Sex, error) {
	switch code {
	case "M", "m":
		return Male, nil
	case "F", "f":
		return Female, nil
	default:
		return 0, fmt.Errorf("unknown sex code %q", code)
	}
}

// PremiumMode describes how premiums are paid over the life of a contract.
type PremiumMode int

const (
	// PremiumLevel collects the same premium every month the policy is in force.
	PremiumLevel PremiumMode = iota
	// PremiumSingle collects the whole premium once, in the issue month.
	PremiumSingle
)

func (m PremiumMode) String() string {
	switch m {
	case PremiumLevel:
		return "level"
	case PremiumSingle:
		return "single"
	default:
		return fmt.Sprintf("PremiumMode(%d)", int(m))
	}
}

// ParsePremiumMode converts a config string into a PremiumMode.
func ParsePremiumMode(s string) (PremiumMode, error) {
	switch s {
	case "", "level":
		return PremiumLevel, nil
	case "single":
		return PremiumSingle, nil
	default:
		return 0, fmt.Errorf("unknown premium mode %q", s)
	}
}

// Policy is an immutable contract template. Account-value updates are made by
// replacing the whole Policy value, never by mutating a shared one.
type Policy struct {
	Sex      Sex
	IssueAge int
	// IssueMonth is relative to the simulation epoch (month 0). Negative
	// values describe business already in force at the start of the run.
	IssueMonth int
	// TermYears is the contract term. Zero means whole of life: the policy
	// never matures.
	TermYears int
	Assured   float64
	// Premium is the per-policy monthly premium (or the single premium for
	// PremiumSingle contracts).
	Premium float64
	Mode    PremiumMode
	// AccountValue is the per-policy account balance for account-based
	// products. Zero and unused for term products.
	AccountValue float64
}

// HasTerm reports whether the policy matures at all.
func (p Policy) HasTerm() bool { return p.TermYears > 0 }

// MaturityMonth is the month the policy expires. Only meaningful when
// HasTerm is true.
func (p Policy) MaturityMonth() int { return p.IssueMonth + 12*p.TermYears }

// DurationMonths is the number of whole months elapsed since issue at the
// given month. Negative before issue.
func (p Policy) DurationMonths(month int) int { return month - p.IssueMonth }

// DurationYears is the number of whole policy years elapsed at the given
// month, floored at zero for not-yet-issued or degenerate inputs.
func (p Policy) DurationYears(month int) int {
	d := p.DurationMonths(month)
	if d < 0 {
		return 0
	}
	return d / 12
}

// AttainedAge is the insured's age in whole years at the given month.
func (p Policy) AttainedAge(month int) int { return p.IssueAge + p.DurationYears(month) }

// PremiumDue reports whether a premium is collected in the given month for an
// in-force policy.
func (p Policy) PremiumDue(month int) bool {
	if p.Mode == PremiumSingle {
		return month == p.IssueMonth
	}
	return true
}

// PolicyGroup is a model point: a Policy template plus a weighted count of
// identical contracts. Count is fractional after decrements and only ever
// decreases; decremented groups are replaced by new values with a smaller
// Count, the original is never mutated.
type PolicyGroup struct {
	// PointID and SpecID identify the row in the model-point table the
	// group was loaded from.
	PointID int
	SpecID  string
	Policy  Policy
	Count   float64
}

// WithCount returns a copy of the group carrying the given count.
func (g PolicyGroup) WithCount(count float64) PolicyGroup {
	g.Count = count
	return g
}

// WithPolicy returns a copy of the group carrying the given policy value.
func (g PolicyGroup) WithPolicy(p Policy) PolicyGroup {
	g.Policy = p
	return g
}
