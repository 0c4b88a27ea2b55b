package order

import (
	"github.com/webclinic017/EventDrivenTradingSystem/common"
)

// IsOrder returns whether the event is an order event
func (o *Order) IsOrder() bool {
	return true
}

// SetDirection sets the side of the order
func (o *Order) SetDirection(d common.Direction) {
	o.Direction = d
}

// GetDirection returns the side of the order
func (o *Order) GetDirection() common.Direction {
	return o.Direction
}

// GetQuantity returns the number of units to transact
func (o *Order) GetQuantity() int64 {
	return o.Quantity
}

// GetKind returns how the order is to be executed
func (o *Order) GetKind() common.OrderKind {
	return o.Kind
}
