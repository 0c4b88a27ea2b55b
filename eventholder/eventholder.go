package eventholder

import "github.com/webclinic017/EventDrivenTradingSystem/common"

// Reset returns struct to defaults
func (h *Holder) Reset() {
	h.Queue = nil
}

// AppendEvent adds and event to the queue
func (h *Holder) AppendEvent(e common.Event) {
	h.Queue = append(h.Queue, e)
}

// NextEvent removes the current event and returns the next event in the queue.
// Strict first-in-first-out: downstream correctness relies on events being
// processed in arrival order, not arrival time
func (h *Holder) NextEvent() (e common.Event) {
	if len(h.Queue) == 0 {
		return nil
	}

	e = h.Queue[0]
	h.Queue = h.Queue[1:]

	return e
}
