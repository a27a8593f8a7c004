package common

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// CSVStr is a config readable data source telling the engine to load
	// delimited files from disk
	CSVStr = "csv"
	// APIStr is a config readable data source telling the engine to fetch
	// data from a remote provider
	APIStr = "api"
	// DatabaseStr is a config readable data source telling the engine to
	// load data from a candle database
	DatabaseStr = "database"
)

const (
	// SimpleTimeFormat a common, but non-implicit time format
	SimpleTimeFormat = "2006-01-02 15:04:05"
	// ISODateFormat is the date layout used by loader date bounds
	ISODateFormat = "2006-01-02"
)

var (
	// ErrNilArguments is a common error response to highlight that nils were
	// passed in when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilEvent is a common error for whenever a nil event occurs when it
	// shouldn't have
	ErrNilEvent = errors.New("nil event received")
	// ErrDataUnavailable is returned when a requested symbol's backing data
	// cannot be located or fetched. Construction never proceeds on a partial
	// universe
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrInvalidDataSource occurs when an unrecognised data source is
	// defined in the config
	ErrInvalidDataSource = errors.New("invalid data source received")
)

// EventHandler interface implements the required base event returns. Every
// value travelling through the feed, whether a revealed bar or a
// feed-advanced notification, satisfies it
type EventHandler interface {
	GetOffset() int64
	SetOffset(int64)
	IsEvent() bool
	GetTime() time.Time
	GetSymbol() string
}

// DataEventHandler interface used for loading and interacting with feed data
type DataEventHandler interface {
	EventHandler
	GetClosePrice() decimal.Decimal
}
