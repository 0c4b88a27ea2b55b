package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies/base"
)

// ReadConfigFromFile will take a config from a path
func ReadConfigFromFile(path string) (*Config, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(fileData)
}

// LoadConfig unmarshalls byte data into a config struct
func LoadConfig(data []byte) (resp *Config, err error) {
	err = json.Unmarshal(data, &resp)
	return resp, err
}

// Validate checks all config settings before the run starts; a config error
// is fatal, the loop never begins
func (c *Config) Validate() error {
	if err := c.validateDate(); err != nil {
		return err
	}
	if err := c.validateUniverse(); err != nil {
		return err
	}
	if err := c.validateStrategySettings(); err != nil {
		return err
	}
	return c.validatePortfolioSettings()
}

// Dates parses and returns the configured date range
func (c *Config) Dates() (start, end time.Time, err error) {
	start, err = time.ParseInLocation(common.SimpleTimeFormat, c.DataSettings.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("could not parse start date: %w", err)
	}
	end, err = time.ParseInLocation(common.SimpleTimeFormat, c.DataSettings.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("could not parse end date: %w", err)
	}
	return start, end, nil
}

// validateDate checks whether someone has set a date poorly in their config
func (c *Config) validateDate() error {
	if c.DataSettings.StartDate == "" || c.DataSettings.EndDate == "" {
		return errStartEndUnset
	}
	start, end, err := c.Dates()
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: %v >= %v", errBadDate, c.DataSettings.StartDate, c.DataSettings.EndDate)
	}
	return nil
}

func (c *Config) validateUniverse() error {
	if c.DataSettings.DatabasePath == "" {
		return errNoDatabasePath
	}
	if len(c.DataSettings.Universe) == 0 {
		return errEmptyUniverse
	}
	seen := make(map[string]struct{}, len(c.DataSettings.Universe))
	for i := range c.DataSettings.Universe {
		s := c.DataSettings.Universe[i]
		if _, ok := seen[s]; ok {
			return fmt.Errorf("%w: %v", errDuplicateSymbol, s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

func (c *Config) validateStrategySettings() error {
	if c.StrategySettings.Name == "" {
		return errUnsetStrategy
	}
	strats := strategies.GetStrategies()
	for i := range strats {
		if strings.EqualFold(strats[i].Name(), c.StrategySettings.Name) {
			return nil
		}
	}
	return fmt.Errorf("strategy '%v' %w", c.StrategySettings.Name, base.ErrStrategyNotFound)
}

func (c *Config) validatePortfolioSettings() error {
	if !c.PortfolioSettings.InitialCapital.IsPositive() {
		return fmt.Errorf("%w, received %v", errBadInitialCapital, c.PortfolioSettings.InitialCapital)
	}
	if c.PortfolioSettings.OrderSize <= 0 {
		return fmt.Errorf("%w, received %v", errBadOrderSize, c.PortfolioSettings.OrderSize)
	}
	if c.StatisticSettings.AnnualizationPeriods < 0 {
		return fmt.Errorf("%w, received %v", errNegativePeriods, c.StatisticSettings.AnnualizationPeriods)
	}
	return nil
}
