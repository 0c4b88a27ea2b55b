package base

import (
	"errors"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
)

var (
	// ErrCustomSettingsUnsupported used when custom settings are found in the config when they shouldn't be
	ErrCustomSettingsUnsupported = errors.New("custom settings not supported")
	// ErrStrategyNotFound used when the strategy specified in the config does not exist
	ErrStrategyNotFound = errors.New("not found. Please ensure the strategy-settings field 'name' is spelled properly in your config")
	// ErrInvalidCustomSettings used when bad custom settings are found in the config
	ErrInvalidCustomSettings = errors.New("invalid custom settings in config")
	// ErrTooMuchBadData used when there is too much missing data
	ErrTooMuchBadData = errors.New("backtesting cannot continue as there is too much invalid data. Please review your dataset")
)

// Strategy is the base implementation shared by strategy handlers
type Strategy struct{}

// GetBaseSignal returns a do-nothing signal seeded from the latest revealed
// bar for a symbol, for the concrete strategy to set a direction on
func (s *Strategy) GetBaseSignal(d data.Handler, strategyID, symbol string) (signal.Signal, error) {
	if d == nil {
		return signal.Signal{}, common.ErrNilArguments
	}
	latest, err := d.LatestBar(symbol)
	if err != nil {
		return signal.Signal{}, err
	}
	return signal.Signal{
		Base: &event.Base{
			Offset: d.Offset(),
			Time:   latest.Time,
			Symbol: symbol,
		},
		StrategyID: strategyID,
		Direction:  common.DoNothing,
	}, nil
}

// SetCustomSettings rejects any custom setting by default; strategies that
// take parameters override this
func (s *Strategy) SetCustomSettings(settings map[string]any) error {
	if len(settings) > 0 {
		return ErrCustomSettingsUnsupported
	}
	return nil
}

// SetDefaults is a no-op for strategies without parameters
func (s *Strategy) SetDefaults() {}
