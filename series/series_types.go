package series

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	errNoObservations  = errors.New("no observations for symbol")
	errEmptyUniverse   = errors.New("universe contains no symbols")
	errDuplicateSymbol = errors.New("duplicate symbol in universe")
)

// Observation is a single native (symbol, time, price) reading produced by a
// loader. Loaders drop non-positive prices before observations reach
// alignment
type Observation struct {
	Time  time.Time
	Price decimal.Decimal
}

// Table is a timestamp-indexed, forward-filled, sorted price series for one
// symbol, re-expressed on the union calendar. Immutable once built
type Table struct {
	symbol     string
	timestamps []time.Time
	prices     []decimal.Decimal
}
