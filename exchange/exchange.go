package exchange

import (
	"fmt"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/fill"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/order"
)

// ExecuteOrder fills an order at the symbol's latest revealed close with the
// default commission applied. Slippage and order book depth are not simulated
func (e *Exchange) ExecuteOrder(o order.Event, d data.Handler) (*fill.Fill, error) {
	if o == nil {
		return nil, common.ErrNilEvent
	}
	if d == nil {
		return nil, common.ErrNilArguments
	}
	if o.GetQuantity() <= 0 {
		return nil, fmt.Errorf("%w, received %v", ErrInvalidOrderQuantity, o.GetQuantity())
	}
	side, err := common.OrderSide(o.GetDirection())
	if err != nil {
		return nil, err
	}
	price, err := d.LatestBarValue(o.GetSymbol(), data.Close)
	if err != nil {
		return nil, err
	}

	name := e.Name
	if name == "" {
		name = DefaultExchangeName
	}
	return &fill.Fill{
		Base: &event.Base{
			Offset: o.GetOffset(),
			Time:   o.GetTime(),
			Symbol: o.GetSymbol(),
		},
		Exchange:   name,
		Quantity:   o.GetQuantity(),
		Direction:  side,
		Price:      price,
		Commission: fill.DefaultCommission(price, o.GetQuantity()),
	}, nil
}
