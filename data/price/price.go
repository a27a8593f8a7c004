package price

import (
	"github.com/quantsim/marketreplay/data"
	"github.com/quantsim/marketreplay/eventtypes/bar"
	"github.com/quantsim/marketreplay/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Load converts the aligned table into a sorted bar stream ready for replay
func (d *DataFromSeries) Load() error {
	if d.Table == nil || d.Table.Len() == 0 {
		return errNoSeriesData
	}

	events := make([]data.Event, d.Table.Len())
	for i := 0; i < d.Table.Len(); i++ {
		ts, p := d.Table.At(i)
		events[i] = &bar.Bar{
			Event: event.Event{
				Time:   ts,
				Symbol: d.Table.Symbol(),
			},
			Close: p,
		}
	}
	d.SetStream(events)
	d.SortStream()
	return nil
}

// StreamClose returns the closing prices revealed so far
func (d *DataFromSeries) StreamClose() []decimal.Decimal {
	hist := d.History()
	ret := make([]decimal.Decimal, len(hist))
	for x := range hist {
		ret[x] = hist[x].GetClosePrice()
	}
	return ret
}
