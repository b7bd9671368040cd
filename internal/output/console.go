package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/lifesim/lifesim/internal/calculation"
)

// ConsoleFormatter writes a fixed-width cashflow table with a totals row.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "table" }

func (ConsoleFormatter) Format(result *calculation.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "Projection: %s, %d months\n\n", result.ProductKind, result.Months)

	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Month\tPremiums\tInvestments\tClaims\tExpenses\tCommissions\tAcctChange\tNet\tDiscounted\t")
	for i, cf := range result.Periods {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			i,
			cf.Premiums.StringFixed(2),
			cf.Investments.StringFixed(2),
			cf.Claims.StringFixed(2),
			cf.Expenses.StringFixed(2),
			cf.Commissions.StringFixed(2),
			cf.AccountChange.StringFixed(2),
			cf.Net.StringFixed(2),
			cf.Discounted.StringFixed(2),
		)
	}
	total := result.Total
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
		total.Premiums.StringFixed(2),
		total.Investments.StringFixed(2),
		total.Claims.StringFixed(2),
		total.Expenses.StringFixed(2),
		total.Commissions.StringFixed(2),
		total.AccountChange.StringFixed(2),
		total.Net.StringFixed(2),
		total.Discounted.StringFixed(2),
	)
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
