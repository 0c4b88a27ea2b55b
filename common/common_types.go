package common

import (
	"errors"
	"time"
)

// SimpleTimeFormat is the layout used for dates in configs and logs
const SimpleTimeFormat = "2006-01-02"

// Direction describes which way a signal, order or fill points
type Direction string

const (
	// Long is a signal instructing the portfolio to gain exposure
	Long Direction = "LONG"
	// Short is a signal instructing the portfolio to reduce or invert exposure
	Short Direction = "SHORT"
	// Buy is an order or fill purchasing units
	Buy Direction = "BUY"
	// Sell is an order or fill disposing of units
	Sell Direction = "SELL"
	// DoNothing is an explicit signal for the backtester to not perform an action
	// based upon indicator results
	DoNothing Direction = "DO NOTHING"
)

// OrderKind differentiates how an order is to be executed
type OrderKind string

const (
	// MarketOrder executes at the prevailing price
	MarketOrder OrderKind = "MARKET"
	// LimitOrder executes at a set price or better
	LimitOrder OrderKind = "LIMIT"
)

var (
	// ErrNilArguments is a common error response to highlight that nils were passed in
	// when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilEvent is a common error for whenever a nil event occurs when it shouldn't have
	ErrNilEvent = errors.New("nil event received")
	// ErrUnknownSymbol is returned when a symbol is not part of the backtest universe
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInvalidDirection is returned when a direction does not fit the consuming event
	ErrInvalidDirection = errors.New("invalid direction")
)

// Event is the shared contract all backtester event kinds satisfy.
// Ordering correctness downstream relies on GetTime and GetOffset
// reflecting the aligned timestamp axis the feed revealed them on
type Event interface {
	GetOffset() int64
	SetOffset(int64)
	GetTime() time.Time
	GetSymbol() string
	GetReason() string
	AppendReason(string)
}

// Directioner dictates the side of an event
type Directioner interface {
	SetDirection(Direction)
	GetDirection() Direction
}
