package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webclinic017/EventDrivenTradingSystem/data"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "securities.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	require.NoError(t, db.CreateTables())
	return db
}

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func testBars(symbol string, days ...int) []data.Bar {
	resp := make([]data.Bar, len(days))
	for i, d := range days {
		price := decimal.NewFromInt(int64(100 + d))
		resp[i] = data.Bar{
			Time:     day(d),
			Symbol:   symbol,
			Open:     price,
			High:     price.Add(decimal.NewFromInt(1)),
			Low:      price.Sub(decimal.NewFromInt(1)),
			Close:    price,
			AdjClose: price,
			Volume:   decimal.NewFromInt(1000),
		}
	}
	return resp
}

func TestConnect(t *testing.T) {
	t.Parallel()
	_, err := Connect("")
	assert.ErrorIs(t, err, ErrNoDatabaseProvided)

	db, err := Connect(filepath.Join(t.TempDir(), "securities.db"))
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

func TestLookups(t *testing.T) {
	t.Parallel()
	db := testDB(t)

	_, err := db.AssetID("AAPL")
	assert.ErrorIs(t, err, ErrAssetNotFound)
	_, err = db.VendorID("yahoo")
	assert.ErrorIs(t, err, ErrVendorNotFound)
	_, err = db.ExchangeID("NYSE")
	assert.ErrorIs(t, err, ErrExchangeNotFound)

	assetID, err := db.InsertAsset("AAPL", "Apple Inc.")
	require.NoError(t, err)
	vendorID, err := db.InsertVendor("yahoo")
	require.NoError(t, err)
	exchangeID, err := db.InsertExchange("NYSE", "New York Stock Exchange")
	require.NoError(t, err)

	id, err := db.AssetID("AAPL")
	require.NoError(t, err)
	assert.Equal(t, assetID, id)
	id, err = db.VendorID("yahoo")
	require.NoError(t, err)
	assert.Equal(t, vendorID, id)
	id, err = db.ExchangeID("NYSE")
	require.NoError(t, err)
	assert.Equal(t, exchangeID, id)
}

func TestInsertDailyPrices(t *testing.T) {
	t.Parallel()
	db := testDB(t)

	err := db.InsertDailyPrices("AAPL", testBars("AAPL", 1))
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = db.InsertAsset("AAPL", "Apple Inc.")
	require.NoError(t, err)
	require.NoError(t, db.InsertDailyPrices("AAPL", testBars("AAPL", 1, 2, 3)))

	// the asset/date pair is unique, a duplicate insert rolls back entirely
	err = db.InsertDailyPrices("AAPL", testBars("AAPL", 4, 3))
	require.Error(t, err)
	bars, err := db.PriceSeries("AAPL", day(1), day(31))
	require.NoError(t, err)
	assert.Len(t, bars, 3)
}

func TestPriceSeries(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	_, err := db.InsertAsset("AAPL", "Apple Inc.")
	require.NoError(t, err)
	require.NoError(t, db.InsertDailyPrices("AAPL", testBars("AAPL", 3, 1, 2, 5)))

	_, err = db.PriceSeries("AAPL", day(5), day(1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = db.PriceSeries("MSFT", day(1), day(5))
	assert.ErrorIs(t, err, ErrAssetNotFound)

	// range is inclusive on both ends and ordered ascending regardless of
	// insertion order
	bars, err := db.PriceSeries("AAPL", day(2), day(5))
	require.NoError(t, err)
	require.Len(t, bars, 3)
	assert.Equal(t, day(2), bars[0].Time)
	assert.Equal(t, day(3), bars[1].Time)
	assert.Equal(t, day(5), bars[2].Time)
	assert.Equal(t, "AAPL", bars[0].Symbol)
	assert.True(t, bars[0].Close.Equal(decimal.NewFromInt(102)))
	assert.True(t, bars[0].Volume.Equal(decimal.NewFromInt(1000)))

	bars, err = db.PriceSeries("AAPL", day(20), day(31))
	require.NoError(t, err)
	assert.Empty(t, bars)
}
