package backtest

import (
	"errors"

	"github.com/gofrs/uuid"

	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventholder"
	"github.com/webclinic017/EventDrivenTradingSystem/exchange"
	"github.com/webclinic017/EventDrivenTradingSystem/portfolio"
	"github.com/webclinic017/EventDrivenTradingSystem/statistics"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies"
)

var (
	errUnhandledEventType = errors.New("unhandled event type")
	errNotSetup           = errors.New("backtest has not been set up")
)

// BackTest is the top level struct holding all backtest functionality.
// The loop is the sole writer of portfolio state; events are dispatched
// to it one at a time in strict queue order
type BackTest struct {
	RunID      uuid.UUID
	EventQueue eventholder.EventHolder
	Feed       *data.Feed
	Strategy   strategies.Handler
	Portfolio  portfolio.Handler
	Exchange   exchange.ExecutionHandler
	Statistic  statistics.Handler

	shutdown chan struct{}
}
