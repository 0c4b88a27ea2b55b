package signal

import (
	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
)

// Signal is a strategy's verdict on the latest revealed data for one symbol.
// Direction is LONG, SHORT or DO NOTHING; the portfolio decides whether and
// how it becomes an order
type Signal struct {
	*event.Base
	StrategyID string           `json:"strategy-id"`
	Direction  common.Direction `json:"direction"`
}

// Event handler is used for getting trade signal details
type Event interface {
	common.Event
	common.Directioner
	GetStrategyID() string
	IsSignal() bool
}
