package rsi

import (
	"fmt"

	"github.com/thrasher-corp/gct-ta/indicators"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies/base"
)

const (
	// Name is the strategy name
	Name         = "rsi"
	rsiPeriodKey = "rsi-period"
	rsiLowKey    = "rsi-low"
	rsiHighKey   = "rsi-high"
	description  = `The relative strength index is a technical indicator used in the analysis of financial markets. It is intended to chart the current and historical strength or weakness of a stock or market based on the closing prices of a recent trading period`
)

// Strategy is an implementation of the Handler interface
type Strategy struct {
	base.Strategy
	rsiPeriod int
	rsiLow    float64
	rsiHigh   float64
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnSignal goes long a symbol when its RSI is at or below the low bound and
// short when it is at or above the high bound
func (s *Strategy) OnSignal(d data.Handler) ([]signal.Event, error) {
	if d == nil {
		return nil, common.ErrNilArguments
	}
	if d.Offset() <= int64(s.rsiPeriod) {
		// not enough revealed history for signal generation
		return nil, nil
	}

	universe := d.Universe()
	resp := make([]signal.Event, 0, len(universe))
	for i := range universe {
		closes, err := d.LatestBarsValues(universe[i], data.AdjClose, int(d.Offset()))
		if err != nil {
			return nil, err
		}
		series := make([]float64, len(closes))
		for j := range closes {
			series[j] = closes[j].InexactFloat64()
		}
		rsiValues := indicators.RSI(series, s.rsiPeriod)
		latestRSIValue := rsiValues[len(rsiValues)-1]

		es, err := s.GetBaseSignal(d, Name, universe[i])
		if err != nil {
			return nil, err
		}
		switch {
		case latestRSIValue >= s.rsiHigh:
			es.SetDirection(common.Short)
		case latestRSIValue <= s.rsiLow:
			es.SetDirection(common.Long)
		default:
			es.SetDirection(common.DoNothing)
		}
		es.AppendReasonf("RSI at %.2f", latestRSIValue)
		resp = append(resp, &es)
	}
	return resp, nil
}

// SetCustomSettings allows a user to modify the RSI limits in their config
func (s *Strategy) SetCustomSettings(customSettings map[string]any) error {
	for k, v := range customSettings {
		switch k {
		case rsiHighKey:
			rsiHigh, ok := v.(float64)
			if !ok || rsiHigh <= 0 {
				return fmt.Errorf("%w provided rsi-high value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiHigh = rsiHigh
		case rsiLowKey:
			rsiLow, ok := v.(float64)
			if !ok || rsiLow <= 0 {
				return fmt.Errorf("%w provided rsi-low value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiLow = rsiLow
		case rsiPeriodKey:
			rsiPeriod, ok := v.(float64)
			if !ok || rsiPeriod <= 0 {
				return fmt.Errorf("%w provided rsi-period value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiPeriod = int(rsiPeriod)
		default:
			return fmt.Errorf("%w unrecognised custom setting key %v with value %v. Cannot apply", base.ErrInvalidCustomSettings, k, v)
		}
	}

	return nil
}

// SetDefaults sets the custom settings to their default values
func (s *Strategy) SetDefaults() {
	s.rsiHigh = 70
	s.rsiLow = 30
	s.rsiPeriod = 14
}
