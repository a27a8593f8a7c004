package event

import "time"

// GetOffset returns the offset of the event at the point it was revealed
func (e *Event) GetOffset() int64 {
	return e.Offset
}

// SetOffset sets the offset, used when the feed reveals the event
func (e *Event) SetOffset(o int64) {
	e.Offset = o
}

// IsEvent returns whether the event is an event
func (e *Event) IsEvent() bool {
	return true
}

// GetTime returns the time of the event
func (e *Event) GetTime() time.Time {
	return e.Time
}

// GetSymbol returns the symbol the event belongs to
func (e *Event) GetSymbol() string {
	return e.Symbol
}
