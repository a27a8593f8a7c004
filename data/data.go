package data

import (
	"fmt"
	"sort"
)

// Setup creates the handler map
func (h *HandlerPerSymbol) Setup() {
	if h.data == nil {
		h.data = make(map[string]Handler)
	}
}

// SetDataForSymbol assigns a data handler to the data map by symbol
func (h *HandlerPerSymbol) SetDataForSymbol(s string, d Handler) {
	if h.data == nil {
		h.Setup()
	}
	h.data[s] = d
}

// GetAllData returns all set data in the data map
func (h *HandlerPerSymbol) GetAllData() map[string]Handler {
	return h.data
}

// GetDataForSymbol returns the handler for a specific symbol
func (h *HandlerPerSymbol) GetDataForSymbol(s string) (Handler, error) {
	d, ok := h.data[s]
	if !ok {
		return nil, fmt.Errorf("%w for %v", ErrHandlerNotFound, s)
	}
	return d, nil
}

// GetStream will return the entire data list
func (d *Base) GetStream() []Event {
	return d.stream
}

// Offset returns the number of events revealed so far
func (d *Base) Offset() int64 {
	return d.offset
}

// SetStream sets the data stream for replay
func (d *Base) SetStream(s []Event) {
	d.stream = s
}

// AppendStream appends new events onto the stream, ignoring nils
func (d *Base) AppendStream(s ...Event) {
	for i := range s {
		if s[i] == nil {
			continue
		}
		d.stream = append(d.stream, s[i])
	}
}

// Next will return the next event in the stream and shift the offset one.
// The second return is false once the stream is exhausted; exhaustion is
// terminal because the offset never rewinds
func (d *Base) Next() (Event, bool) {
	if int64(len(d.stream)) <= d.offset {
		return nil, false
	}

	ret := d.stream[d.offset]
	d.offset++
	ret.SetOffset(d.offset)
	d.latest = ret
	return ret, true
}

// History will return all previously revealed events
func (d *Base) History() []Event {
	return d.stream[:d.offset]
}

// Latest will return the most recently revealed event
func (d *Base) Latest() Event {
	return d.latest
}

// List returns all unrevealed events. Ill-advised to use in consumers
// because you don't know the future in real life
func (d *Base) List() []Event {
	return d.stream[d.offset:]
}

// IsLastEvent returns whether the most recently revealed event is the final
// event in the stream
func (d *Base) IsLastEvent() bool {
	return d.latest != nil && d.offset == int64(len(d.stream))
}

// SortStream sorts the stream by timestamp
func (d *Base) SortStream() {
	sort.Slice(d.stream, func(i, j int) bool {
		return d.stream[i].GetTime().Before(d.stream[j].GetTime())
	})
}
