package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	// import sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/webclinic017/EventDrivenTradingSystem/common"
	"github.com/webclinic017/EventDrivenTradingSystem/data"
	"github.com/webclinic017/EventDrivenTradingSystem/log"
)

// Connect opens a connection to the sqlite securities master
func Connect(path string) (*DB, error) {
	if path == "" {
		return nil, ErrNoDatabaseProvided
	}
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	if _, err = conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, err
	}
	return &DB{conn: conn}, nil
}

// Close releases the underlying connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// CreateTables bootstraps the securities master schema. Existing tables
// are left untouched
func (db *DB) CreateTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exchange (
			id INTEGER PRIMARY KEY,
			abbrev TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS data_vendor (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS assets (
			id INTEGER PRIMARY KEY,
			exchange_id INTEGER REFERENCES exchange(id),
			symbol TEXT NOT NULL UNIQUE,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS daily_price (
			id INTEGER PRIMARY KEY,
			asset_id INTEGER NOT NULL REFERENCES assets(id),
			data_vendor_id INTEGER REFERENCES data_vendor(id),
			date TEXT NOT NULL,
			open REAL, high REAL, low REAL, close REAL,
			adj_close REAL, volume REAL,
			UNIQUE(asset_id, date)
		)`,
	}
	for i := range stmts {
		if _, err := db.conn.Exec(stmts[i]); err != nil {
			return err
		}
	}
	return nil
}

// AssetID returns the asset id for a symbol
func (db *DB) AssetID(symbol string) (int64, error) {
	var id int64
	err := db.conn.QueryRow("SELECT id FROM assets WHERE symbol = ?", symbol).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: '%v'", ErrAssetNotFound, symbol)
	}
	return id, err
}

// VendorID returns the data vendor id for a vendor name
func (db *DB) VendorID(name string) (int64, error) {
	var id int64
	err := db.conn.QueryRow("SELECT id FROM data_vendor WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: '%v'", ErrVendorNotFound, name)
	}
	return id, err
}

// ExchangeID returns the exchange id for a commonly used abbreviation eg NYSE
func (db *DB) ExchangeID(abbrev string) (int64, error) {
	var id int64
	err := db.conn.QueryRow("SELECT id FROM exchange WHERE abbrev = ?", abbrev).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: '%v'", ErrExchangeNotFound, abbrev)
	}
	return id, err
}

// InsertAsset registers a symbol in the securities master and returns its id
func (db *DB) InsertAsset(symbol, name string) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO assets (symbol, name) VALUES (?, ?)", symbol, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertVendor registers a data vendor and returns its id
func (db *DB) InsertVendor(name string) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO data_vendor (name) VALUES (?)", name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertExchange registers an exchange under its common abbreviation eg
// NYSE and returns its id
func (db *DB) InsertExchange(abbrev, name string) (int64, error) {
	res, err := db.conn.Exec("INSERT INTO exchange (abbrev, name) VALUES (?, ?)", abbrev, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertDailyPrices stores end of day bars for a symbol
func (db *DB) InsertDailyPrices(symbol string, bars []data.Bar) error {
	assetID, err := db.AssetID(symbol)
	if err != nil {
		return err
	}
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO daily_price
		(asset_id, date, open, high, low, close, adj_close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for i := range bars {
		_, err = stmt.Exec(
			assetID,
			bars[i].Time.Format(common.SimpleTimeFormat),
			bars[i].Open.InexactFloat64(),
			bars[i].High.InexactFloat64(),
			bars[i].Low.InexactFloat64(),
			bars[i].Close.InexactFloat64(),
			bars[i].AdjClose.InexactFloat64(),
			bars[i].Volume.InexactFloat64())
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// PriceSeries returns the end of day bars for a symbol between two dates
// inclusive, ordered by date ascending. Implements the feed's repository
// contract
func (db *DB) PriceSeries(symbol string, start, end time.Time) ([]data.Bar, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: %v > %v",
			ErrInvalidDateRange,
			start.Format(common.SimpleTimeFormat),
			end.Format(common.SimpleTimeFormat))
	}
	assetID, err := db.AssetID(symbol)
	if err != nil {
		return nil, err
	}

	rows, err := db.conn.Query(`SELECT date, open, high, low, close, adj_close, volume
		FROM daily_price
		WHERE asset_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC`,
		assetID,
		start.Format(common.SimpleTimeFormat),
		end.Format(common.SimpleTimeFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resp []data.Bar
	for rows.Next() {
		var (
			date                        string
			open, high, low, closePrice float64
			adjClose, volume            float64
		)
		err = rows.Scan(&date, &open, &high, &low, &closePrice, &adjClose, &volume)
		if err != nil {
			return nil, err
		}
		t, err := time.ParseInLocation(common.SimpleTimeFormat, date, time.UTC)
		if err != nil {
			return nil, err
		}
		resp = append(resp, data.Bar{
			Time:     t,
			Symbol:   symbol,
			Open:     decimal.NewFromFloat(open),
			High:     decimal.NewFromFloat(high),
			Low:      decimal.NewFromFloat(low),
			Close:    decimal.NewFromFloat(closePrice),
			AdjClose: decimal.NewFromFloat(adjClose),
			Volume:   decimal.NewFromFloat(volume),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	log.Debugf(log.Database, "loaded %v daily bars for %v", len(resp), symbol)
	return resp, nil
}
