package database

import (
	"database/sql"
	"errors"
)

var (
	// ErrNoDatabaseProvided is returned when a connection is requested without a path
	ErrNoDatabaseProvided = errors.New("no database path provided")
	// ErrAssetNotFound is returned when a symbol does not exist in the securities master
	ErrAssetNotFound = errors.New("asset does not exist in the database")
	// ErrVendorNotFound is returned when a data vendor name is unknown
	ErrVendorNotFound = errors.New("vendor does not exist in the database")
	// ErrExchangeNotFound is returned when an exchange abbreviation is unknown
	ErrExchangeNotFound = errors.New("exchange does not exist in the database")
	// ErrInvalidDateRange is returned when the start date is after the end date
	ErrInvalidDateRange = errors.New("start date is after end date")
)

// DB wraps the sqlite securities master holding assets, vendors,
// exchanges and daily price history
type DB struct {
	conn *sql.DB
}
