package price

import (
	"errors"

	"github.com/quantsim/marketreplay/data"
	"github.com/quantsim/marketreplay/series"
)

var errNoSeriesData = errors.New("no series data provided")

// DataFromSeries implements the data.Handler interface, turning an aligned
// symbol table into a replayable bar stream
type DataFromSeries struct {
	Table *series.Table
	data.Base
}
