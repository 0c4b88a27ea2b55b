package event

import (
	"time"
)

// Base is the underlying event across all actions the backtester takes.
// Offset is the position on the feed's aligned timestamp axis at which
// the event was produced
type Base struct {
	Offset  int64     `json:"offset"`
	Time    time.Time `json:"timestamp"`
	Symbol  string    `json:"symbol"`
	Reasons []string  `json:"reasons"`
}
