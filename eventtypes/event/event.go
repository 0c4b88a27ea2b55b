package event

import (
	"fmt"
	"strings"
	"time"
)

// GetOffset returns the offset on the aligned timestamp axis
func (b *Base) GetOffset() int64 {
	return b.Offset
}

// SetOffset sets the offset on the aligned timestamp axis
func (b *Base) SetOffset(o int64) {
	b.Offset = o
}

// GetTime returns the time of the event
func (b *Base) GetTime() time.Time {
	return b.Time
}

// GetSymbol returns the symbol the event relates to
func (b *Base) GetSymbol() string {
	return b.Symbol
}

// GetReason returns the why of the event
func (b *Base) GetReason() string {
	return strings.Join(b.Reasons, ". ")
}

// AppendReason adds reasoning to the event for it occurring
func (b *Base) AppendReason(y string) {
	b.Reasons = append(b.Reasons, y)
}

// AppendReasonf adds formatted reasoning to the event for it occurring
func (b *Base) AppendReasonf(y string, addons ...interface{}) {
	b.Reasons = append(b.Reasons, fmt.Sprintf(y, addons...))
}
