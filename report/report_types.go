package report

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	errNoTables      = errors.New("no tables to report on")
	errTableMissing  = errors.New("table missing for symbol")
	errNothingToDraw = errors.New("nothing to draw")
)

// Column is one symbol's normalised cumulative-return series on its aligned
// calendar
type Column struct {
	Symbol            string
	Timestamps        []time.Time
	CumulativeReturns []decimal.Decimal
}

// Baseline is the derived cumulative-return table across the universe. It is
// computed from materialised tables only and never touches replay state
type Baseline struct {
	Columns []Column
}
