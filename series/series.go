package series

import (
	"fmt"
	"sort"
	"time"

	"github.com/quantsim/marketreplay/common"
	"github.com/shopspring/decimal"
)

// UnionCalendar accumulates the sorted set-union of every symbol's native
// timestamps. It is computed once and applied to every symbol's reindex pass
func UnionCalendar(natives map[string][]Observation) []time.Time {
	seen := make(map[int64]time.Time)
	for s := range natives {
		for i := range natives[s] {
			t := natives[s][i].Time.UTC()
			seen[t.UnixNano()] = t
		}
	}
	calendar := make([]time.Time, 0, len(seen))
	for _, t := range seen {
		calendar = append(calendar, t)
	}
	sort.Slice(calendar, func(i, j int) bool {
		return calendar[i].Before(calendar[j])
	})
	return calendar
}

// Align re-expresses every universe symbol's native series on the union
// calendar using forward-fill. A union timestamp earlier than a symbol's
// first native observation has no defined value and is dropped for that
// symbol. Partial universes are not tolerated
func Align(natives map[string][]Observation, universe []string) (map[string]*Table, error) {
	if len(universe) == 0 {
		return nil, errEmptyUniverse
	}
	found := make(map[string]bool, len(universe))
	for i := range universe {
		if found[universe[i]] {
			return nil, fmt.Errorf("%w: %v", errDuplicateSymbol, universe[i])
		}
		found[universe[i]] = true
		if len(natives[universe[i]]) == 0 {
			return nil, fmt.Errorf("%w: %v %w", common.ErrDataUnavailable, universe[i], errNoObservations)
		}
	}

	calendar := UnionCalendar(natives)
	tables := make(map[string]*Table, len(universe))
	for _, s := range universe {
		obs := make([]Observation, len(natives[s]))
		copy(obs, natives[s])
		sort.SliceStable(obs, func(i, j int) bool {
			return obs[i].Time.Before(obs[j].Time)
		})

		t := &Table{symbol: s}
		var j int
		for i := range calendar {
			for j < len(obs) && !obs[j].Time.After(calendar[i]) {
				j++
			}
			if j == 0 {
				// no native observation at or before this point, so no
				// forward-fill source exists. The row is dropped rather than
				// filled from nothing
				continue
			}
			t.timestamps = append(t.timestamps, calendar[i])
			t.prices = append(t.prices, obs[j-1].Price)
		}
		tables[s] = t
	}
	return tables, nil
}

// NewTable builds a table directly from native observations without
// alignment, sorting them into timestamp order. A convenience for callers
// whose data already shares a calendar
func NewTable(symbol string, obs []Observation) *Table {
	sorted := make([]Observation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})
	t := &Table{
		symbol:     symbol,
		timestamps: make([]time.Time, len(sorted)),
		prices:     make([]decimal.Decimal, len(sorted)),
	}
	for i := range sorted {
		t.timestamps[i] = sorted[i].Time.UTC()
		t.prices[i] = sorted[i].Price
	}
	return t
}

// Symbol returns the symbol the table belongs to
func (t *Table) Symbol() string {
	return t.symbol
}

// Len returns the number of aligned rows
func (t *Table) Len() int {
	return len(t.timestamps)
}

// At returns the aligned row at index i
func (t *Table) At(i int) (time.Time, decimal.Decimal) {
	return t.timestamps[i], t.prices[i]
}

// Timestamps returns a copy of the table's calendar
func (t *Table) Timestamps() []time.Time {
	ts := make([]time.Time, len(t.timestamps))
	copy(ts, t.timestamps)
	return ts
}

// Prices returns a copy of the table's aligned prices
func (t *Table) Prices() []decimal.Decimal {
	p := make([]decimal.Decimal, len(t.prices))
	copy(p, t.prices)
	return p
}

// PriceAt returns the aligned price at ts and whether the table defines one
func (t *Table) PriceAt(ts time.Time) (decimal.Decimal, bool) {
	i := sort.Search(len(t.timestamps), func(i int) bool {
		return !t.timestamps[i].Before(ts)
	})
	if i < len(t.timestamps) && t.timestamps[i].Equal(ts) {
		return t.prices[i], true
	}
	return decimal.Zero, false
}

// Copy returns an independent value copy, so report readers cannot observe
// or corrupt replay-in-progress state
func (t *Table) Copy() *Table {
	n := &Table{
		symbol:     t.symbol,
		timestamps: make([]time.Time, len(t.timestamps)),
		prices:     make([]decimal.Decimal, len(t.prices)),
	}
	copy(n.timestamps, t.timestamps)
	copy(n.prices, t.prices)
	return n
}
