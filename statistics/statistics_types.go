package statistics

import (
	"time"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/fill"
	"github.com/webclinic017/EventDrivenTradingSystem/portfolio"
)

// EquityPoint is the total portfolio value at one aligned timestamp along
// with its period-over-period return
type EquityPoint struct {
	Timestamp    time.Time `json:"timestamp"`
	Equity       float64   `json:"equity"`
	EquityReturn float64   `json:"equity-return"`
}

// Statistic tracks events and the equity curve over a run and derives the
// performance report once the run completes
type Statistic struct {
	StrategyName string
	Periods      float64
	RiskFreeRate float64

	EventHistory       []common.Event
	TransactionHistory []fill.Event
	Equity             []EquityPoint
}

// Results is the summary handed to downstream reporting
type Results struct {
	StrategyName     string    `json:"strategy-name"`
	StartTime        time.Time `json:"start-time"`
	EndTime          time.Time `json:"end-time"`
	InitialCapital   float64   `json:"initial-capital"`
	FinalEquity      float64   `json:"final-equity"`
	Transactions     int       `json:"transactions"`
	CAGR             float64   `json:"cagr"`
	AnnualVolatility float64   `json:"annual-volatility"`
	SharpeRatio      float64   `json:"sharpe-ratio"`
	SharpeUndefined  bool      `json:"sharpe-undefined"`
	MaxDrawdown      float64   `json:"max-drawdown"`
}

// Handler contains all functionality expected of a statistics tracker
type Handler interface {
	TrackEvent(common.Event)
	TrackTransaction(fill.Event)
	Update(portfolio.Snapshot)
	Returns() []float64
	CalculateResults() (Results, error)
	PrintResult()
	Reset()
}
