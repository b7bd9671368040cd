package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lifesim/lifesim/internal/domain"
	"github.com/lifesim/lifesim/internal/rates"
)

// EstimatePremiums back-solves a level monthly premium for each group from
// the model's decrement and discount assumptions. It runs a reduced forward
// pass over months+1 periods: decrements only, no event recording, no
// account roll-forward, and no new-business timing beyond each policy's own
// expiry. Per group it accumulates the discounted expected death claims and
// the discounted surviving in-force exposure, then sets
//
//	premium = round((1 + load) * claims / exposure, 2)
//
// The input groups are not modified; the returned slice carries updated
// policies. The pass is a pure function of its inputs, so estimating twice
// yields identical premiums.
func (e *Engine) EstimatePremiums(groups []domain.PolicyGroup, months int) []domain.PolicyGroup {
	mort := e.Model.Mortality()
	lapse := e.Model.Lapse()
	load := e.Model.PremiumLoad()

	out := make([]domain.PolicyGroup, len(groups))
	for i, g := range groups {
		// Issue timing is ignored for estimation: each group is priced
		// as if issued at month zero, so time and duration coincide.
		p := g.Policy
		p.IssueMonth = 0

		count := g.Count
		var pvClaims, pvExposure float64
		for t := 0; t <= months; t++ {
			if p.HasTerm() && t >= 12*p.TermYears {
				break
			}
			q := monthlyRate(mort, t, p)
			w := monthlyRate(lapse, t, p)

			deaths := count * q
			count -= deaths
			count -= count * w

			v := e.Model.DiscountFactor(t)
			pvClaims += deaths * p.Assured * v
			pvExposure += count * v
		}

		updated := g.Policy
		updated.Premium = roundPremium((1 + load) * safeRatio(pvClaims, pvExposure))
		out[i] = g.WithPolicy(updated)
	}
	return out
}

func monthlyRate(pr rates.Provider, month int, p domain.Policy) float64 {
	if pr.PerPolicy() {
		return rates.MonthlyFromAnnual(pr.AnnualRateFor(month, p))
	}
	return rates.MonthlyFromAnnual(pr.AnnualRate(month))
}

func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// roundPremium rounds to the cent, half away from zero.
func roundPremium(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
