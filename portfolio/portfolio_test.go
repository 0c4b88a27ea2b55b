package portfolio

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/event"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/fill"
	"github.com/webclinic017/EventDrivenTradingSystem/eventtypes/signal"
)

type fakeRepository struct {
	series map[string][]data.Bar
}

func (r *fakeRepository) PriceSeries(symbol string, _, _ time.Time) ([]data.Bar, error) {
	s, ok := r.series[symbol]
	if !ok {
		return nil, fmt.Errorf("%w '%v'", common.ErrUnknownSymbol, symbol)
	}
	return s, nil
}

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func testBar(symbol string, t time.Time, closePrice, adjClose float64) data.Bar {
	c := decimal.NewFromFloat(closePrice)
	return data.Bar{
		Time:     t,
		Symbol:   symbol,
		Open:     c,
		High:     c,
		Low:      c,
		Close:    c,
		AdjClose: decimal.NewFromFloat(adjClose),
		Volume:   decimal.NewFromInt(1000),
	}
}

func testFeed(t *testing.T) *data.Feed {
	t.Helper()
	repo := &fakeRepository{series: map[string][]data.Bar{
		"AAPL": {
			testBar("AAPL", day(1), 100, 100),
			testBar("AAPL", day(2), 106, 105),
		},
	}}
	f, err := data.Setup(repo, []string{"AAPL"}, day(1), day(2))
	require.NoError(t, err)
	return f
}

func buyFill(quantity int64, price, commission float64) *fill.Fill {
	return &fill.Fill{
		Base:       &event.Base{Offset: 1, Time: day(1), Symbol: "AAPL"},
		Exchange:   "SIMULATED",
		Quantity:   quantity,
		Direction:  common.Buy,
		Price:      decimal.NewFromFloat(price),
		Commission: decimal.NewFromFloat(commission),
	}
}

// requireBalanced asserts the ledger identity for every snapshot
func requireBalanced(t *testing.T, p *Portfolio) {
	t.Helper()
	for _, s := range p.Snapshots() {
		sum := decimal.Zero
		for _, pos := range s.Positions {
			sum = sum.Add(pos.MarketValue)
		}
		require.True(t, s.TotalEquity.Equal(s.Cash.Add(sum)),
			"snapshot at %v offset %v: equity %v != cash %v + market value %v",
			s.Timestamp, s.Offset, s.TotalEquity, s.Cash, sum)
	}
}

func TestSetupValidation(t *testing.T) {
	t.Parallel()
	_, err := Setup(nil, day(1), decimal.NewFromInt(10000), 10)
	assert.ErrorIs(t, err, data.ErrEmptyUniverse)

	_, err = Setup([]string{"AAPL"}, day(1), decimal.Zero, 10)
	assert.ErrorIs(t, err, ErrNegativeInitialCapital)

	_, err = Setup([]string{"AAPL"}, day(1), decimal.NewFromInt(10000), 0)
	assert.ErrorIs(t, err, ErrInvalidOrderSize)
}

func TestOpeningSnapshot(t *testing.T) {
	t.Parallel()
	p, err := Setup([]string{"AAPL"}, day(1), decimal.NewFromInt(10000), 100)
	require.NoError(t, err)

	opening := p.Latest()
	assert.Equal(t, day(1), opening.Timestamp)
	assert.True(t, opening.Cash.Equal(decimal.NewFromInt(10000)))
	assert.True(t, opening.TotalEquity.Equal(decimal.NewFromInt(10000)))
	assert.Zero(t, opening.Positions["AAPL"].Quantity)
	requireBalanced(t, p)
}

func TestOnFillBuyThenRemark(t *testing.T) {
	t.Parallel()
	f := testFeed(t)
	p, err := Setup([]string{"AAPL"}, day(1), decimal.NewFromInt(10000), 100)
	require.NoError(t, err)

	ev, ok := f.Next()
	require.True(t, ok)
	require.NoError(t, p.OnMarket(ev, f))

	// buy 10 at 100 with a 10 commission: cash drops by 1010
	require.NoError(t, p.OnFill(buyFill(10, 100, 10), f))
	latest := p.Latest()
	assert.True(t, latest.Cash.Equal(decimal.NewFromInt(8990)), "expected cash 8990 received %v", latest.Cash)
	assert.Equal(t, int64(10), latest.Positions["AAPL"].Quantity)
	assert.True(t, latest.Positions["AAPL"].MarketValue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, latest.TotalEquity.Equal(decimal.NewFromInt(9990)))

	// the next market event re-marks the position at adjusted close 105
	ev, ok = f.Next()
	require.True(t, ok)
	require.NoError(t, p.OnMarket(ev, f))
	latest = p.Latest()
	assert.True(t, latest.Positions["AAPL"].MarketValue.Equal(decimal.NewFromInt(1050)))
	assert.True(t, latest.TotalEquity.Equal(decimal.NewFromInt(10040)), "expected equity 10040 received %v", latest.TotalEquity)
	requireBalanced(t, p)
}

func TestOnFillSell(t *testing.T) {
	t.Parallel()
	f := testFeed(t)
	p, err := Setup([]string{"AAPL"}, day(1), decimal.NewFromInt(10000), 100)
	require.NoError(t, err)
	ev, ok := f.Next()
	require.True(t, ok)
	require.NoError(t, p.OnMarket(ev, f))
	require.NoError(t, p.OnFill(buyFill(10, 100, 10), f))

	sell := buyFill(10, 100, 10)
	sell.Direction = common.Sell
	require.NoError(t, p.OnFill(sell, f))

	// round trip pays commission twice and nothing else
	latest := p.Latest()
	assert.Zero(t, latest.Positions["AAPL"].Quantity)
	assert.True(t, latest.Positions["AAPL"].MarketValue.IsZero())
	assert.True(t, latest.Cash.Equal(decimal.NewFromInt(9980)))
	assert.True(t, latest.TotalEquity.Equal(decimal.NewFromInt(9980)))
	requireBalanced(t, p)
}

func TestOnFillRejectsInvalidFills(t *testing.T) {
	t.Parallel()
	f := testFeed(t)
	p, err := Setup([]string{"AAPL"}, day(1), decimal.NewFromInt(10000), 100)
	require.NoError(t, err)
	ev, ok := f.Next()
	require.True(t, ok)
	require.NoError(t, p.OnMarket(ev, f))
	before := len(p.Snapshots())

	err = p.OnFill(nil, f)
	assert.ErrorIs(t, err, common.ErrNilEvent)

	bad := buyFill(0, 100, 10)
	assert.ErrorIs(t, p.OnFill(bad, f), ErrInvalidFillQuantity)

	bad = buyFill(10, 0, 10)
	assert.ErrorIs(t, p.OnFill(bad, f), ErrInvalidFillPrice)

	bad = buyFill(10, 100, -1)
	assert.ErrorIs(t, p.OnFill(bad, f), ErrNegativeCommission)

	bad = buyFill(10, 100, 10)
	bad.Direction = common.DoNothing
	assert.ErrorIs(t, p.OnFill(bad, f), common.ErrInvalidDirection)

	bad = buyFill(10, 100, 10)
	bad.Symbol = "TSLA"
	assert.ErrorIs(t, p.OnFill(bad, f), common.ErrUnknownSymbol)

	// rejected fills leave the ledger untouched
	assert.Len(t, p.Snapshots(), before)
	requireBalanced(t, p)
}

func TestOnSignal(t *testing.T) {
	t.Parallel()
	f := testFeed(t)
	p, err := Setup([]string{"AAPL"}, day(1), decimal.NewFromInt(10000), 100)
	require.NoError(t, err)
	_, ok := f.Next()
	require.True(t, ok)

	s := &signal.Signal{
		Base:       &event.Base{Offset: 1, Time: day(1), Symbol: "AAPL"},
		StrategyID: "buyandhold",
		Direction:  common.DoNothing,
	}
	o, err := p.OnSignal(s, f)
	require.NoError(t, err)
	assert.Nil(t, o, "a do nothing signal must not produce an order")

	s.Direction = common.Long
	o, err = p.OnSignal(s, f)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, common.Buy, o.GetDirection())
	assert.Equal(t, common.MarketOrder, o.GetKind())
	assert.Equal(t, int64(100), o.GetQuantity())
	assert.Equal(t, "AAPL", o.GetSymbol())

	s.Direction = common.Short
	o, err = p.OnSignal(s, f)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, common.Sell, o.GetDirection())

	s.Symbol = "TSLA"
	_, err = p.OnSignal(s, f)
	assert.ErrorIs(t, err, common.ErrUnknownSymbol)
}

func TestReset(t *testing.T) {
	t.Parallel()
	f := testFeed(t)
	p, err := Setup([]string{"AAPL"}, day(1), decimal.NewFromInt(10000), 100)
	require.NoError(t, err)
	ev, ok := f.Next()
	require.True(t, ok)
	require.NoError(t, p.OnMarket(ev, f))
	require.NoError(t, p.OnFill(buyFill(10, 100, 10), f))
	require.Len(t, p.Snapshots(), 3)

	p.Reset()
	require.Len(t, p.Snapshots(), 1)
	assert.True(t, p.Latest().Cash.Equal(decimal.NewFromInt(10000)))
	assert.Zero(t, p.Latest().Positions["AAPL"].Quantity)
}
