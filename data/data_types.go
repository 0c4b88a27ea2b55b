package data

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotEnoughData is returned when more revealed history is requested than exists
	ErrNotEnoughData = errors.New("not enough revealed data")
	// ErrNoOverlappingHistory is returned at construction when the universe's
	// series share no common timestamps to align on
	ErrNoOverlappingHistory = errors.New("no overlapping history between symbols")
	// ErrEmptyUniverse is returned when a feed is requested for no symbols
	ErrEmptyUniverse = errors.New("empty universe")
	// ErrInvalidField is returned when a bar field selector is unrecognised
	ErrInvalidField = errors.New("invalid bar field")
)

// Bar is one period's OHLCV price record for a symbol. Immutable once
// produced by the repository; the feed only ever copies and reveals it
type Bar struct {
	Time     time.Time       `json:"timestamp"`
	Symbol   string          `json:"symbol"`
	Open     decimal.Decimal `json:"open"`
	High     decimal.Decimal `json:"high"`
	Low      decimal.Decimal `json:"low"`
	Close    decimal.Decimal `json:"close"`
	AdjClose decimal.Decimal `json:"adj-close"`
	Volume   decimal.Decimal `json:"volume"`
}

// Field selects a single value out of a bar
type Field string

// Bar field selectors
const (
	Open     Field = "open"
	High     Field = "high"
	Low      Field = "low"
	Close    Field = "close"
	AdjClose Field = "adj_close"
	Volume   Field = "volume"
)

// Repository is the external collaborator the feed obtains raw price
// series from. Implementations must return bars ordered by time ascending,
// fail with a not-found error for unknown symbols and with a validation
// error when the date range is inverted
type Repository interface {
	PriceSeries(symbol string, start, end time.Time) ([]Bar, error)
}

// Handler is the read surface the strategy port and portfolio consume.
// All accessors operate over revealed history only
type Handler interface {
	Universe() []string
	CurrentTime() time.Time
	Offset() int64
	LatestBar(symbol string) (Bar, error)
	LatestBars(symbol string, n int) ([]Bar, error)
	LatestBarTime(symbol string) (time.Time, error)
	LatestBarValue(symbol string, field Field) (decimal.Decimal, error)
	LatestBarsValues(symbol string, field Field, n int) ([]decimal.Decimal, error)
}

// alignedSeries is one symbol's bars reindexed onto the shared timestamp axis
type alignedSeries struct {
	bars     []Bar
	revealed int
}

// Feed advances every symbol's aligned series one timestamp at a time and
// owns the revealed history the accessors serve
type Feed struct {
	universe  []string
	timeline  []time.Time
	series    map[string]*alignedSeries
	offset    int64
	exhausted bool
}
