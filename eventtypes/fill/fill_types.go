package fill

import (
	"github.com/shopspring/decimal"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
)

// Fill is an event detailing the result of placing an order.
// It is the only event kind that mutates portfolio cash
type Fill struct {
	*event.Base
	Exchange   string           `json:"exchange"`
	Quantity   int64            `json:"quantity"`
	Direction  common.Direction `json:"direction"`
	Price      decimal.Decimal  `json:"price"`
	Commission decimal.Decimal  `json:"commission"`
}

// Event holds all functions required to handle a fill event
type Event interface {
	common.Event
	common.Directioner
	GetQuantity() int64
	GetPrice() decimal.Decimal
	GetCommission() decimal.Decimal
	GetExchange() string
	IsFill() bool
}
