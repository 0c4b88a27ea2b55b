package backtest

import (
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/config"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/database"
	"github.com/webclinic017/EventDrivenTradingSystem/eventholder"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/fill"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/market"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/order"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
	"github.com/webclinic017/EventDrivenTradingSystem/exchange"
	"github.com/webclinic017/EventDrivenTradingSystem/log"
	"github.com/webclinic017/EventDrivenTradingSystem/portfolio"
	"github.com/webclinic017/EventDrivenTradingSystem/statistics"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies"
)

// New returns a new BackTest instance
func New() (*BackTest, error) {
	runID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &BackTest{
		RunID:      runID,
		EventQueue: &eventholder.Holder{},
		shutdown:   make(chan struct{}),
	}, nil
}

// NewFromConfig assembles a ready-to-run backtest from a validated config:
// repository connection, aligned feed, ledger, strategy and tracker
func NewFromConfig(cfg *config.Config) (*BackTest, error) {
	if cfg == nil {
		return nil, common.ErrNilArguments
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bt, err := New()
	if err != nil {
		return nil, err
	}

	start, end, err := cfg.Dates()
	if err != nil {
		return nil, err
	}
	repo, err := database.Connect(cfg.DataSettings.DatabasePath)
	if err != nil {
		return nil, err
	}
	bt.Feed, err = data.Setup(repo, cfg.DataSettings.Universe, start, end)
	if err != nil {
		return nil, err
	}
	bt.Portfolio, err = portfolio.Setup(
		cfg.DataSettings.Universe,
		start,
		cfg.PortfolioSettings.InitialCapital,
		cfg.PortfolioSettings.OrderSize)
	if err != nil {
		return nil, err
	}
	bt.Strategy, err = strategies.LoadStrategyByName(cfg.StrategySettings.Name)
	if err != nil {
		return nil, err
	}
	if err = bt.Strategy.SetCustomSettings(cfg.StrategySettings.CustomSettings); err != nil {
		return nil, err
	}
	periods := cfg.StatisticSettings.AnnualizationPeriods
	if periods == 0 {
		periods = statistics.DefaultPeriods
	}
	bt.Exchange = &exchange.Exchange{}
	bt.Statistic = &statistics.Statistic{
		StrategyName: bt.Strategy.Name(),
		Periods:      periods,
		RiskFreeRate: cfg.StatisticSettings.RiskFreeRate,
	}
	return bt, nil
}

// Reset BackTest values to default
func (bt *BackTest) Reset() {
	bt.EventQueue.Reset()
	bt.Portfolio.Reset()
	bt.Statistic.Reset()
}

// Stop requests the run end before its next step
func (bt *BackTest) Stop() {
	select {
	case <-bt.shutdown:
	default:
		close(bt.shutdown)
	}
}

func (bt *BackTest) hasShutdown() bool {
	select {
	case <-bt.shutdown:
		return true
	default:
		return false
	}
}

// Run executes the backtest: the queue is drained completely between feed
// advances so every state transition for one aligned timestamp settles
// before the next is revealed. Runs until the feed is exhausted, a stop is
// requested or an event handler fails
func (bt *BackTest) Run() error {
	if bt.EventQueue == nil || bt.Feed == nil || bt.Portfolio == nil ||
		bt.Strategy == nil || bt.Exchange == nil || bt.Statistic == nil {
		return errNotSetup
	}
	log.Infof(log.BackTester, "running backtest %v with strategy '%v'", bt.RunID, bt.Strategy.Name())

	bt.Statistic.Update(bt.Portfolio.Latest())
	for ev := bt.EventQueue.NextEvent(); ; ev = bt.EventQueue.NextEvent() {
		if bt.hasShutdown() {
			log.Warnf(log.BackTester, "backtest %v stopped before completion", bt.RunID)
			return nil
		}
		if ev == nil {
			m, ok := bt.Feed.Next()
			if !ok {
				break
			}
			bt.EventQueue.AppendEvent(m)
			continue
		}

		if err := bt.handleEvent(ev); err != nil {
			return err
		}
		bt.Statistic.TrackEvent(ev)
	}
	log.Infof(log.BackTester, "backtest %v complete, feed exhausted after %v timestamps", bt.RunID, bt.Feed.Offset())

	return nil
}

// handleEvent is the single dispatch point converting each event kind into
// its state transition. The match is exhaustive; an unknown kind is a bug
func (bt *BackTest) handleEvent(ev common.Event) error {
	switch e := ev.(type) {
	case market.Event:
		return bt.processMarketEvent(e)
	case signal.Event:
		return bt.processSignalEvent(e)
	case order.Event:
		return bt.processOrderEvent(e)
	case fill.Event:
		return bt.processFillEvent(e)
	default:
		return fmt.Errorf("%w %T", errUnhandledEventType, ev)
	}
}

func (bt *BackTest) processMarketEvent(ev market.Event) error {
	if err := bt.Portfolio.OnMarket(ev, bt.Feed); err != nil {
		return err
	}
	bt.Statistic.Update(bt.Portfolio.Latest())

	signals, err := bt.Strategy.OnSignal(bt.Feed)
	if err != nil {
		// a misbehaving strategy must not corrupt the ledger silently
		return fmt.Errorf("strategy '%v' failed: %w", bt.Strategy.Name(), err)
	}
	for i := range signals {
		if signals[i] == nil {
			continue
		}
		bt.EventQueue.AppendEvent(signals[i])
	}
	return nil
}

func (bt *BackTest) processSignalEvent(ev signal.Event) error {
	o, err := bt.Portfolio.OnSignal(ev, bt.Feed)
	if err != nil {
		return err
	}
	if o != nil {
		bt.EventQueue.AppendEvent(o)
	}
	return nil
}

func (bt *BackTest) processOrderEvent(ev order.Event) error {
	f, err := bt.Exchange.ExecuteOrder(ev, bt.Feed)
	if err != nil {
		return err
	}
	bt.EventQueue.AppendEvent(f)
	return nil
}

func (bt *BackTest) processFillEvent(ev fill.Event) error {
	if err := bt.Portfolio.OnFill(ev, bt.Feed); err != nil {
		return err
	}
	bt.Statistic.TrackTransaction(ev)
	return nil
}
