package buyandhold

import (
	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies/base"
)

const (
	// Name is the strategy name
	Name        = "buyandhold"
	description = `Goes long every symbol in the universe on the first bar and then does nothing for the rest of the run`
)

// Strategy is an implementation of the Handler interface
type Strategy struct {
	base.Strategy
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnSignal goes long each symbol when its first bar is revealed and stays
// silent afterwards
func (s *Strategy) OnSignal(d data.Handler) ([]signal.Event, error) {
	if d == nil {
		return nil, common.ErrNilArguments
	}
	if d.Offset() != 1 {
		return nil, nil
	}

	universe := d.Universe()
	resp := make([]signal.Event, 0, len(universe))
	for i := range universe {
		es, err := s.GetBaseSignal(d, Name, universe[i])
		if err != nil {
			return nil, err
		}
		es.SetDirection(common.Long)
		es.AppendReason("first revealed bar, buying and holding")
		resp = append(resp, &es)
	}
	return resp, nil
}
