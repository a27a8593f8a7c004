package bar

import (
	"github.com/quantsim/marketreplay/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Bar is one timestamped closing price observation for a symbol. It is the
// only data event the replay reveals
type Bar struct {
	event.Event
	Close decimal.Decimal
}
