package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quantsim/marketreplay/series"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func obs(n int, price int64) series.Observation {
	return series.Observation{
		Time:  time.Date(2020, 1, n, 0, 0, 0, 0, time.UTC),
		Price: decimal.NewFromInt(price),
	}
}

func TestCreate(t *testing.T) {
	tables := map[string]*series.Table{
		"A": series.NewTable("A", []series.Observation{obs(1, 100), obs(2, 110), obs(3, 99)}),
		"B": series.NewTable("B", []series.Observation{obs(1, 50), obs(2, 50), obs(3, 75)}),
	}
	b, err := Create([]string{"A", "B"}, tables)
	require.NoError(t, err)
	require.Len(t, b.Columns, 2)

	a := b.Columns[0]
	require.Equal(t, "A", a.Symbol)
	require.Len(t, a.CumulativeReturns, 3)

	// cumulative product identity at the base
	for i := range b.Columns {
		if !b.Columns[i].CumulativeReturns[0].Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected base 1.0 for %v, received %v",
				b.Columns[i].Symbol, b.Columns[i].CumulativeReturns[0])
		}
	}

	// 100 -> 110 -> 99 compounds to 1.1 then 0.99
	if !a.CumulativeReturns[1].Equal(decimal.NewFromFloat(1.1)) {
		t.Errorf("expected 1.1, received %v", a.CumulativeReturns[1])
	}
	if !a.CumulativeReturns[2].Equal(decimal.NewFromFloat(0.99)) {
		t.Errorf("expected 0.99, received %v", a.CumulativeReturns[2])
	}

	// 50 -> 50 -> 75 compounds to 1.0 then 1.5
	bCol := b.Columns[1]
	if !bCol.CumulativeReturns[1].Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected 1.0, received %v", bCol.CumulativeReturns[1])
	}
	if !bCol.CumulativeReturns[2].Equal(decimal.NewFromFloat(1.5)) {
		t.Errorf("expected 1.5, received %v", bCol.CumulativeReturns[2])
	}
}

func TestCreateMissingTable(t *testing.T) {
	tables := map[string]*series.Table{
		"A": series.NewTable("A", []series.Observation{obs(1, 100)}),
	}
	_, err := Create([]string{"A", "B"}, tables)
	if !errors.Is(err, errTableMissing) {
		t.Errorf("expected %v, received %v", errTableMissing, err)
	}
}

func TestCreateNoTables(t *testing.T) {
	if _, err := Create(nil, nil); !errors.Is(err, errNoTables) {
		t.Errorf("expected %v, received %v", errNoTables, err)
	}
}

func TestWriteTable(t *testing.T) {
	tables := map[string]*series.Table{
		"A": series.NewTable("A", []series.Observation{obs(1, 100), obs(2, 110)}),
		"B": series.NewTable("B", []series.Observation{obs(2, 50)}),
	}
	b, err := Create([]string{"A", "B"}, tables)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, b.WriteTable(&sb))
	out := sb.String()

	for _, want := range []string{"Date", "A", "B", "2020-01-01", "2020-01-02", "1.100000"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%v", want, out)
		}
	}

	empty := &Baseline{}
	if err := empty.WriteTable(&sb); !errors.Is(err, errNothingToDraw) {
		t.Errorf("expected %v, received %v", errNothingToDraw, err)
	}
}
