package data

import (
	"errors"

	"github.com/quantsim/marketreplay/common"
	"github.com/shopspring/decimal"
)

// ErrHandlerNotFound returned when a handler is not found for a specified
// symbol
var ErrHandlerNotFound = errors.New("handler not found")

// HandlerPerSymbol stores a data handler per symbol in the universe
type HandlerPerSymbol struct {
	data map[string]Handler
}

// Holder interface dictates what a data holder is expected to do
type Holder interface {
	Setup()
	SetDataForSymbol(string, Handler)
	GetAllData() map[string]Handler
	GetDataForSymbol(string) (Handler, error)
}

// Base is the foundational cursor over a revealed-so-far event stream.
// The offset only ever moves forward; the revealed prefix is the only data
// visible to a consumer at any instant
type Base struct {
	latest Event
	stream []Event
	offset int64
}

// Handler interface for loading and streaming data
type Handler interface {
	Loader
	Streamer
}

// Loader interface for loading data into the replay supported format
type Loader interface {
	Load() error
	AppendStream(s ...Event)
}

// Streamer interface handles the one-bar-at-a-time reveal protocol
type Streamer interface {
	Next() (Event, bool)
	GetStream() []Event
	History() []Event
	Latest() Event
	List() []Event
	IsLastEvent() bool
	Offset() int64

	StreamClose() []decimal.Decimal
}

// Event interface used for loading and interacting with feed data
type Event interface {
	common.EventHandler
	GetClosePrice() decimal.Decimal
}
