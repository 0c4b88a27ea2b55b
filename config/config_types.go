package config

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	errStartEndUnset     = errors.New("start and end dates must be set")
	errBadDate           = errors.New("start date must be before the end date")
	errEmptyUniverse     = errors.New("universe must contain at least one symbol")
	errDuplicateSymbol   = errors.New("universe contains a duplicate symbol")
	errBadInitialCapital = errors.New("initial capital must be positive")
	errBadOrderSize      = errors.New("order size must be positive")
	errUnsetStrategy     = errors.New("strategy name must be set")
	errNoDatabasePath    = errors.New("database path must be set")
	errNegativePeriods   = errors.New("annualization periods cannot be negative")
)

// Config defines a backtest run: what to trade, over which dates, with
// which strategy and how much capital
type Config struct {
	StrategySettings  StrategySettings  `json:"strategy-settings"`
	DataSettings      DataSettings      `json:"data-settings"`
	PortfolioSettings PortfolioSettings `json:"portfolio-settings"`
	StatisticSettings StatisticSettings `json:"statistic-settings"`
}

// StrategySettings names the strategy to run along with any custom settings
// it supports
type StrategySettings struct {
	Name           string         `json:"name"`
	CustomSettings map[string]any `json:"custom-settings,omitempty"`
}

// DataSettings locates the price repository and selects what to load from it.
// Dates use the simple YYYY-MM-DD layout
type DataSettings struct {
	DatabasePath string   `json:"database-path"`
	Universe     []string `json:"universe"`
	StartDate    string   `json:"start-date"`
	EndDate      string   `json:"end-date"`
}

// PortfolioSettings seeds the ledger
type PortfolioSettings struct {
	InitialCapital decimal.Decimal `json:"initial-capital"`
	OrderSize      int64           `json:"order-size"`
}

// StatisticSettings parameterises the performance report
type StatisticSettings struct {
	AnnualizationPeriods float64 `json:"annualization-periods"`
	RiskFreeRate         float64 `json:"risk-free-rate"`
}
