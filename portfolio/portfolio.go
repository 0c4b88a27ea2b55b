package portfolio

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/fill"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/market"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/order"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
	"github.com/webclinic017/EventDrivenTradingSystem/log"
)

// Setup creates a portfolio with flat positions and one opening snapshot
// recorded at the start date, before any event has been processed
func Setup(universe []string, startDate time.Time, initialCapital decimal.Decimal, orderSize int64) (*Portfolio, error) {
	if len(universe) == 0 {
		return nil, data.ErrEmptyUniverse
	}
	if initialCapital.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNegativeInitialCapital
	}
	if orderSize <= 0 {
		return nil, ErrInvalidOrderSize
	}

	positions := make(map[string]Position, len(universe))
	for i := range universe {
		positions[universe[i]] = Position{Symbol: universe[i]}
	}
	p := &Portfolio{
		universe:       append([]string(nil), universe...),
		initialCapital: initialCapital,
		orderSize:      orderSize,
	}
	p.append(Snapshot{
		Timestamp:   startDate,
		Cash:        initialCapital,
		Positions:   positions,
		TotalEquity: initialCapital,
	})
	return p, nil
}

// OnMarket re-marks every position at the latest revealed adjusted close and
// appends a snapshot at the feed's current aligned timestamp. This is the
// only place market values are refreshed
func (p *Portfolio) OnMarket(ev market.Event, d data.Handler) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	if d == nil {
		return common.ErrNilArguments
	}

	next := p.cloneLatest()
	next.Timestamp = ev.GetTime()
	next.Offset = ev.GetOffset()
	for i := range p.universe {
		price, err := d.LatestBarValue(p.universe[i], data.AdjClose)
		if err != nil {
			return err
		}
		pos := next.Positions[p.universe[i]]
		pos.MarketValue = decimal.NewFromInt(pos.Quantity).Mul(price)
		next.Positions[p.universe[i]] = pos
	}
	next.TotalEquity = next.Cash.Add(p.sumMarketValue(next.Positions))
	p.append(next)
	return nil
}

// OnSignal converts a strategy signal into an order request of the
// configured size. A DO NOTHING signal produces no order
func (p *Portfolio) OnSignal(s signal.Event, d data.Handler) (*order.Order, error) {
	if s == nil {
		return nil, common.ErrNilEvent
	}
	if s.GetDirection() == common.DoNothing {
		return nil, nil
	}
	if !p.inUniverse(s.GetSymbol()) {
		return nil, fmt.Errorf("%w '%v'", common.ErrUnknownSymbol, s.GetSymbol())
	}
	side, err := common.OrderSide(s.GetDirection())
	if err != nil {
		return nil, err
	}
	o := &order.Order{
		Base: &event.Base{
			Offset: s.GetOffset(),
			Time:   s.GetTime(),
			Symbol: s.GetSymbol(),
		},
		Kind:      common.MarketOrder,
		Quantity:  p.orderSize,
		Direction: side,
	}
	o.AppendReason(s.GetReason())
	return o, nil
}

// OnFill applies a trade to the ledger. The position is revalued with the
// last known price only; no new price information arrives with a fill, and
// all transaction costs flow through cash. The update is all-or-nothing:
// an invalid fill leaves the ledger untouched
func (p *Portfolio) OnFill(f fill.Event, d data.Handler) error {
	if f == nil {
		return common.ErrNilEvent
	}
	if d == nil {
		return common.ErrNilArguments
	}
	if !p.inUniverse(f.GetSymbol()) {
		return fmt.Errorf("%w '%v'", common.ErrUnknownSymbol, f.GetSymbol())
	}
	if f.GetQuantity() <= 0 {
		return fmt.Errorf("%w, received %v", ErrInvalidFillQuantity, f.GetQuantity())
	}
	if f.GetPrice().LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w, received %v", ErrInvalidFillPrice, f.GetPrice())
	}
	if f.GetCommission().IsNegative() {
		return fmt.Errorf("%w, received %v", ErrNegativeCommission, f.GetCommission())
	}
	if f.GetDirection() != common.Buy && f.GetDirection() != common.Sell {
		return fmt.Errorf("%w '%v'", common.ErrInvalidDirection, f.GetDirection())
	}
	lastKnown, err := d.LatestBarValue(f.GetSymbol(), data.AdjClose)
	if err != nil {
		return err
	}

	var sign int64 = 1
	if f.GetDirection() == common.Sell {
		sign = -1
	}

	next := p.cloneLatest()
	next.Timestamp = f.GetTime()
	next.Offset = f.GetOffset()
	pos := next.Positions[f.GetSymbol()]
	pos.Quantity += sign * f.GetQuantity()
	pos.MarketValue = decimal.NewFromInt(pos.Quantity).Mul(lastKnown)
	next.Positions[f.GetSymbol()] = pos

	cashDelta := decimal.NewFromInt(sign * f.GetQuantity()).Mul(f.GetPrice()).Add(f.GetCommission())
	next.Cash = next.Cash.Sub(cashDelta)
	next.TotalEquity = next.Cash.Add(p.sumMarketValue(next.Positions))
	p.append(next)

	log.Debugf(log.Portfolio, "%v %v %v x %v @ %v commission %v cash %v equity %v",
		f.GetTime().Format(common.SimpleTimeFormat),
		f.GetDirection(),
		f.GetQuantity(),
		f.GetSymbol(),
		f.GetPrice(),
		f.GetCommission(),
		next.Cash,
		next.TotalEquity)
	return nil
}

// Latest returns the most recent snapshot
func (p *Portfolio) Latest() Snapshot {
	return p.snapshots[len(p.snapshots)-1]
}

// Snapshots returns the full append-only equity curve, one snapshot per
// processed market or fill event plus the opening row
func (p *Portfolio) Snapshots() []Snapshot {
	resp := make([]Snapshot, len(p.snapshots))
	copy(resp, p.snapshots)
	return resp
}

// InitialCapital returns the configured starting bankroll
func (p *Portfolio) InitialCapital() decimal.Decimal {
	return p.initialCapital
}

// Reset rewinds the ledger to its opening snapshot
func (p *Portfolio) Reset() {
	opening := p.snapshots[0]
	p.snapshots = nil
	p.append(opening)
}

func (p *Portfolio) inUniverse(symbol string) bool {
	_, ok := p.Latest().Positions[symbol]
	return ok
}

func (p *Portfolio) sumMarketValue(positions map[string]Position) decimal.Decimal {
	total := decimal.Zero
	for _, pos := range positions {
		total = total.Add(pos.MarketValue)
	}
	return total
}

// cloneLatest deep copies the latest snapshot so appended rows never share
// position maps
func (p *Portfolio) cloneLatest() Snapshot {
	latest := p.Latest()
	positions := make(map[string]Position, len(latest.Positions))
	for k, v := range latest.Positions {
		positions[k] = v
	}
	latest.Positions = positions
	return latest
}

func (p *Portfolio) append(s Snapshot) {
	p.snapshots = append(p.snapshots, s)
}
