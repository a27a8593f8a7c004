package engine

import (
	"errors"
	"time"

	"github.com/quantsim/marketreplay/data"
	"github.com/quantsim/marketreplay/eventholder"
	"github.com/quantsim/marketreplay/series"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownSymbol is returned when a symbol outside the declared
	// universe is queried. Distinguishable from a valid symbol that simply
	// has no revealed bars yet
	ErrUnknownSymbol = errors.New("unknown symbol")

	errNoEventHolder = errors.New("no event holder supplied")
	errNoConfig      = errors.New("no config supplied")
)

// Feed orchestrates one synchronized reveal step per tick across the whole
// symbol universe. It exclusively owns the per-symbol cursors and latest
// buffers for its lifetime
type Feed struct {
	MetaData MetaData

	universe     []string
	holder       data.Holder
	materialized map[string]*series.Table
	queue        eventholder.EventHolder
	run          bool
	log          zerolog.Logger
}

// MetaData identifies a replay run
type MetaData struct {
	ID         string
	Nickname   string
	DateLoaded time.Time
}
