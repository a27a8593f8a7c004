package eventholder

import "github.com/quantsim/marketreplay/common"

// Reset returns the holder to defaults
func (h *Holder) Reset() {
	h.Queue = nil
}

// AppendEvent adds an event to the queue
func (h *Holder) AppendEvent(e common.EventHandler) {
	h.Queue = append(h.Queue, e)
}

// NextEvent pops the oldest event from the queue, nil when empty
func (h *Holder) NextEvent() common.EventHandler {
	if len(h.Queue) == 0 {
		return nil
	}
	e := h.Queue[0]
	h.Queue = h.Queue[1:]
	return e
}
