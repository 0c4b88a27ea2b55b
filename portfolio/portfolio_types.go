package portfolio

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/fill"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/market"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/order"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
)

var (
	// ErrNegativeInitialCapital is returned at construction for a zero or negative bankroll
	ErrNegativeInitialCapital = errors.New("initial capital must be positive")
	// ErrInvalidOrderSize is returned at construction for a zero or negative default order size
	ErrInvalidOrderSize = errors.New("order size must be positive")
	// ErrInvalidFillQuantity is returned for fills with a non-positive quantity
	ErrInvalidFillQuantity = errors.New("fill quantity must be positive")
	// ErrInvalidFillPrice is returned for fills with a non-positive price
	ErrInvalidFillPrice = errors.New("fill price must be positive")
	// ErrNegativeCommission is returned for fills carrying a negative commission
	ErrNegativeCommission = errors.New("fill commission cannot be negative")
)

// Position is one symbol's holding, marked to market at the latest
// revealed adjusted close
type Position struct {
	Symbol      string          `json:"symbol"`
	Quantity    int64           `json:"quantity"`
	MarketValue decimal.Decimal `json:"market-value"`
}

// Snapshot is one append-only row of the ledger. TotalEquity always equals
// Cash plus the sum of position market values
type Snapshot struct {
	Timestamp   time.Time           `json:"timestamp"`
	Offset      int64               `json:"offset"`
	Cash        decimal.Decimal     `json:"cash"`
	Positions   map[string]Position `json:"positions"`
	TotalEquity decimal.Decimal     `json:"total-equity"`
}

// Portfolio is the ledger of cash, positions and equity over the run.
// It is mutated only by the simulation loop, one event at a time
type Portfolio struct {
	universe       []string
	initialCapital decimal.Decimal
	orderSize      int64
	snapshots      []Snapshot
}

// Handler contains all functionality expected of the portfolio ledger
type Handler interface {
	OnMarket(market.Event, data.Handler) error
	OnSignal(signal.Event, data.Handler) (*order.Order, error)
	OnFill(fill.Event, data.Handler) error
	Latest() Snapshot
	Snapshots() []Snapshot
	InitialCapital() decimal.Decimal
	Reset()
}
