package order

import (
	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
)

// Order is a request for the execution layer to transact a positive
// number of units of a symbol
type Order struct {
	*event.Base
	Kind      common.OrderKind `json:"kind"`
	Quantity  int64            `json:"quantity"`
	Direction common.Direction `json:"direction"`
}

// Event holds all functions required to handle an order event
type Event interface {
	common.Event
	common.Directioner
	GetQuantity() int64
	GetKind() common.OrderKind
	IsOrder() bool
}
