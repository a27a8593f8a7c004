package engine

import (
	"fmt"
	"time"

	"github.com/quantsim/marketreplay/data"
	"github.com/quantsim/marketreplay/eventtypes/event"
	"github.com/quantsim/marketreplay/eventtypes/market"
)

// AdvanceAll performs one tick: every symbol's cursor is attempted exactly
// once in universe order, revealed bars land in that symbol's latest buffer,
// and exactly one feed-advanced notification is pushed afterwards, however
// many symbols produced a bar. The first exhausted cursor permanently stops
// the feed; the remaining symbols of that tick are still attempted. Calling
// a stopped feed is a benign no-op. Returns whether the feed is still
// running
func (f *Feed) AdvanceAll() bool {
	if !f.run {
		return false
	}

	var tickTime time.Time
	for _, s := range f.universe {
		h, err := f.holder.GetDataForSymbol(s)
		if err != nil {
			// construction guarantees a handler per universe symbol
			f.log.Error().Err(err).Str("symbol", s).Msg("handler missing during advance")
			f.run = false
			continue
		}
		ev, ok := h.Next()
		if !ok {
			if f.run {
				f.log.Info().Str("symbol", s).Msg("cursor exhausted, stopping feed")
			}
			f.run = false
			continue
		}
		if tickTime.IsZero() {
			tickTime = ev.GetTime()
		}
	}

	f.queue.AppendEvent(&market.Event{
		Event: event.Event{Time: tickTime},
	})
	return f.run
}

// IsRunning returns whether the feed still has bars to reveal. It becomes
// permanently false the first time any symbol's cursor exhausts
func (f *Feed) IsRunning() bool {
	return f.run
}

// GetLatest returns the most recent min(n, buffered) revealed bars for a
// symbol in chronological order. A symbol outside the universe returns
// ErrUnknownSymbol; a valid symbol with nothing revealed yet returns an
// empty slice
func (f *Feed) GetLatest(symbol string, n int64) ([]data.Event, error) {
	h, err := f.holder.GetDataForSymbol(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)
	}
	hist := h.History()
	if n <= 0 {
		return []data.Event{}, nil
	}
	if int64(len(hist)) > n {
		hist = hist[int64(len(hist))-n:]
	}
	out := make([]data.Event, len(hist))
	copy(out, hist)
	return out, nil
}

// Universe returns the declared symbol universe in iteration order
func (f *Feed) Universe() []string {
	out := make([]string, len(f.universe))
	copy(out, f.universe)
	return out
}
