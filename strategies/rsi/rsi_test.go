package rsi

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/strategies/base"
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

// trendingFeed builds a feed whose single symbol moves by step every bar
func trendingFeed(t *testing.T, bars int, start, step float64) *data.Feed {
	t.Helper()
	series := make([]data.Bar, bars)
	for i := range series {
		price := decimal.NewFromFloat(start + step*float64(i))
		series[i] = data.Bar{
			Time:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Symbol:   "AAPL",
			Open:     price,
			High:     price,
			Low:      price,
			Close:    price,
			AdjClose: price,
		}
	}
	repo := &fakeRepository{series: map[string][]data.Bar{"AAPL": series}}
	f, err := data.Setup(repo, []string{"AAPL"}, time.Time{}, time.Time{})
	require.NoError(t, err)
	return f
}

func advance(t *testing.T, f *data.Feed, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, ok := f.Next()
		require.True(t, ok)
	}
}

func TestName(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	assert.Equal(t, Name, s.Name())
	assert.NotEmpty(t, s.Description())
}

func TestOnSignalInsufficientHistory(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	_, err := s.OnSignal(nil)
	assert.ErrorIs(t, err, common.ErrNilArguments)

	f := trendingFeed(t, 20, 100, 1)
	advance(t, f, 14)

	// exactly the rsi period revealed is still one bar short
	signals, err := s.OnSignal(f)
	require.NoError(t, err)
	assert.Empty(t, signals)
}

func TestOnSignalOverbought(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	f := trendingFeed(t, 20, 100, 1)
	advance(t, f, 20)

	// a relentless uptrend drives RSI to the high bound
	signals, err := s.OnSignal(f)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, common.Short, signals[0].GetDirection())
	assert.Equal(t, Name, signals[0].GetStrategyID())
}

func TestOnSignalOversold(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	f := trendingFeed(t, 20, 100, -1)
	advance(t, f, 20)

	signals, err := s.OnSignal(f)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, common.Long, signals[0].GetDirection())
}

func TestSetCustomSettings(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()

	err := s.SetCustomSettings(map[string]any{
		"rsi-period": float64(20),
		"rsi-low":    float64(25),
		"rsi-high":   float64(75),
	})
	require.NoError(t, err)
	assert.Equal(t, 20, s.rsiPeriod)
	assert.Equal(t, 25.0, s.rsiLow)
	assert.Equal(t, 75.0, s.rsiHigh)

	err = s.SetCustomSettings(map[string]any{"rsi-period": "fourteen"})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)

	err = s.SetCustomSettings(map[string]any{"rsi-low": float64(-1)})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)

	err = s.SetCustomSettings(map[string]any{"unknown-key": float64(1)})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)
}
