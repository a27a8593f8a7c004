// Package report derives the baseline cumulative-return view from
// materialised symbol tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/quantsim/marketreplay/common"
	"github.com/quantsim/marketreplay/series"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Create computes, per universe symbol, the percentage-change series of the
// closing price and its cumulative product with base 1.0 at the first
// defined point. Safe to call before, during or after a replay because the
// inputs are independent value copies
func Create(universe []string, tables map[string]*series.Table) (*Baseline, error) {
	if len(universe) == 0 || len(tables) == 0 {
		return nil, errNoTables
	}

	b := &Baseline{Columns: make([]Column, 0, len(universe))}
	for _, s := range universe {
		t, ok := tables[s]
		if !ok || t.Len() == 0 {
			return nil, fmt.Errorf("%w: %v", errTableMissing, s)
		}
		prices := t.Prices()
		returns := make([]decimal.Decimal, len(prices))
		returns[0] = one
		for i := 1; i < len(prices); i++ {
			// cumprod of (1 + pct change) telescopes to a price ratio
			returns[i] = returns[i-1].Mul(prices[i].Div(prices[i-1]))
		}
		b.Columns = append(b.Columns, Column{
			Symbol:            s,
			Timestamps:        t.Timestamps(),
			CumulativeReturns: returns,
		})
	}
	return b, nil
}

// WriteTable renders the baseline as an aligned text table, one row per
// union timestamp, one column per symbol. Rows a late-starting symbol does
// not define are left blank
func (b *Baseline) WriteTable(w io.Writer) error {
	if len(b.Columns) == 0 {
		return errNothingToDraw
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "Date")
	for i := range b.Columns {
		fmt.Fprintf(tw, "\t%s", b.Columns[i].Symbol)
	}
	fmt.Fprintln(tw)

	calendar := b.Columns[0].Timestamps
	for i := range b.Columns[1:] {
		if len(b.Columns[i+1].Timestamps) > len(calendar) {
			calendar = b.Columns[i+1].Timestamps
		}
	}
	for _, ts := range calendar {
		fmt.Fprint(tw, ts.Format(common.ISODateFormat))
		for i := range b.Columns {
			fmt.Fprintf(tw, "\t%s", b.Columns[i].valueAt(ts))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func (c *Column) valueAt(ts time.Time) string {
	i := sort.Search(len(c.Timestamps), func(i int) bool {
		return !c.Timestamps[i].Before(ts)
	})
	if i < len(c.Timestamps) && c.Timestamps[i].Equal(ts) {
		return c.CumulativeReturns[i].StringFixed(6)
	}
	return ""
}
