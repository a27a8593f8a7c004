package eventholder

import "github.com/quantsim/marketreplay/common"

// Holder contains the event queue for consumer processing. Exactly one
// producer (the feed engine) appends per tick; thread-safety beyond that is
// the consumer's concern
type Holder struct {
	Queue []common.EventHandler
}

// EventHolder interface details what is expected of an event holder
type EventHolder interface {
	Reset()
	AppendEvent(common.EventHandler)
	NextEvent() common.EventHandler
}
