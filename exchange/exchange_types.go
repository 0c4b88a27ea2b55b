package exchange

import (
	"errors"

	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/fill"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/order"
)

// ErrInvalidOrderQuantity is returned for orders with a non-positive quantity
var ErrInvalidOrderQuantity = errors.New("order quantity must be positive")

// DefaultExchangeName labels fills when no venue is configured
const DefaultExchangeName = "SIMULATED"

// Exchange is the simulated execution venue. It guarantees exactly one fill
// per accepted order and never fills symbols outside the revealed universe
type Exchange struct {
	Name string
}

// ExecutionHandler is the contract the simulation loop requires of the
// order execution layer
type ExecutionHandler interface {
	ExecuteOrder(order.Event, data.Handler) (*fill.Fill, error)
}
