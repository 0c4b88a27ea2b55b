package statistics

import (
	"errors"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/fill"
	"github.com/webclinic017/EventDrivenTradingSystem/log"
	"github.com/webclinic017/EventDrivenTradingSystem/portfolio"
)

// TrackEvent records every event the loop processed, in processing order
func (s *Statistic) TrackEvent(e common.Event) {
	s.EventHistory = append(s.EventHistory, e)
}

// TrackTransaction records a fill applied to the ledger
func (s *Statistic) TrackTransaction(f fill.Event) {
	if f == nil {
		return
	}
	s.TransactionHistory = append(s.TransactionHistory, f)
}

// Update appends an equity point for a ledger snapshot. Call once for the
// opening snapshot and once per market event so returns are measured per
// aligned timestamp
func (s *Statistic) Update(snap portfolio.Snapshot) {
	point := EquityPoint{
		Timestamp: snap.Timestamp,
		Equity:    snap.TotalEquity.InexactFloat64(),
	}
	if len(s.Equity) > 0 {
		prev := s.Equity[len(s.Equity)-1].Equity
		if prev != 0 {
			point.EquityReturn = (point.Equity - prev) / prev
		}
	}
	s.Equity = append(s.Equity, point)
}

// Returns is the period-over-period fractional change of total equity,
// excluding the opening snapshot's zero placeholder
func (s *Statistic) Returns() []float64 {
	if len(s.Equity) <= 1 {
		return nil
	}
	resp := make([]float64, 0, len(s.Equity)-1)
	for i := 1; i < len(s.Equity); i++ {
		resp = append(resp, s.Equity[i].EquityReturn)
	}
	return resp
}

// CalculateResults derives the performance report from the tracked equity
// curve. An undefined sharpe ratio is reported as such rather than failing
// the whole report
func (s *Statistic) CalculateResults() (Results, error) {
	returns := s.Returns()
	if len(returns) == 0 {
		return Results{}, ErrNoReturns
	}
	periods := s.Periods
	if periods == 0 {
		periods = DefaultPeriods
	}

	results := Results{
		StrategyName:   s.StrategyName,
		StartTime:      s.Equity[0].Timestamp,
		EndTime:        s.Equity[len(s.Equity)-1].Timestamp,
		InitialCapital: s.Equity[0].Equity,
		FinalEquity:    s.Equity[len(s.Equity)-1].Equity,
		Transactions:   len(s.TransactionHistory),
	}

	var err error
	if results.CAGR, err = CAGR(returns, periods); err != nil {
		return Results{}, err
	}
	if results.AnnualVolatility, err = AnnualVolatility(returns, periods); err != nil {
		return Results{}, err
	}
	results.SharpeRatio, err = SharpeRatio(returns, periods, s.RiskFreeRate)
	if err != nil {
		if !errors.Is(err, ErrZeroVolatility) {
			return Results{}, err
		}
		results.SharpeUndefined = true
	}
	if results.MaxDrawdown, err = MaxDrawdown(returns); err != nil {
		return Results{}, err
	}
	return results, nil
}

// PrintResult logs the performance report for the completed run
func (s *Statistic) PrintResult() {
	results, err := s.CalculateResults()
	if err != nil {
		log.Errorf(log.Statistics, "could not calculate results: %v", err)
		return
	}
	log.Infof(log.Statistics, "strategy: %v", results.StrategyName)
	log.Infof(log.Statistics, "from %v to %v over %v events and %v transactions",
		results.StartTime.Format(common.SimpleTimeFormat),
		results.EndTime.Format(common.SimpleTimeFormat),
		len(s.EventHistory),
		results.Transactions)
	log.Infof(log.Statistics, "initial capital: %.2f", results.InitialCapital)
	log.Infof(log.Statistics, "final equity: %.2f", results.FinalEquity)
	log.Infof(log.Statistics, "CAGR: %.4f%%", results.CAGR*100)
	log.Infof(log.Statistics, "annual volatility: %.4f%%", results.AnnualVolatility*100)
	if results.SharpeUndefined {
		log.Warn(log.Statistics, "sharpe ratio: undefined, returns had zero volatility")
	} else {
		log.Infof(log.Statistics, "sharpe ratio: %.4f", results.SharpeRatio)
	}
	log.Infof(log.Statistics, "max drawdown: %.4f%%", results.MaxDrawdown*100)
}

// Reset returns the tracker to a pre-run state
func (s *Statistic) Reset() {
	s.EventHistory = nil
	s.TransactionHistory = nil
	s.Equity = nil
}
