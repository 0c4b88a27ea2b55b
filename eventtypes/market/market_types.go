package market

import (
	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
)

// Market signals that the feed has revealed a new aligned timestamp.
// It carries no payload; the latest bars are queryable from the feed.
// The embedded base's symbol is empty as the advance covers the
// entire universe at once
type Market struct {
	*event.Base
}

// Event is a market data availability event
type Event interface {
	common.Event
	IsMarket() bool
}
