package market

import "github.com/quantsim/marketreplay/eventtypes/event"

// Event is the feed-advanced notification pushed to the event queue once per
// tick, after every symbol has been attempted. It carries no payload beyond
// the tick time; consumers respond by querying the feed's latest buffers
type Event struct {
	event.Event
}
