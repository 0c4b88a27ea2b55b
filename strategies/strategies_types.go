package strategies

import (
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
)

// Handler is the port the simulation loop consumes strategies through.
// OnSignal may return zero signals on most steps; any error it returns
// aborts the run
type Handler interface {
	Name() string
	Description() string
	OnSignal(data.Handler) ([]signal.Event, error)
	SetCustomSettings(map[string]any) error
	SetDefaults()
}
