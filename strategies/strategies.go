package strategies

import (
	"fmt"
	"strings"

	"github.com/webclinic017/EventDrivenTradingSystem/strategies/base"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies/buyandhold"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies/rsi"
)

// LoadStrategyByName returns the strategy registered under name with its
// default parameters applied
func LoadStrategyByName(name string) (Handler, error) {
	strats := GetStrategies()
	for i := range strats {
		if !strings.EqualFold(name, strats[i].Name()) {
			continue
		}
		strats[i].SetDefaults()
		return strats[i], nil
	}
	return nil, fmt.Errorf("strategy '%v' %w", name, base.ErrStrategyNotFound)
}

// GetStrategies returns every registered strategy
func GetStrategies() []Handler {
	return []Handler{
		new(buyandhold.Strategy),
		new(rsi.Strategy),
	}
}
