package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens or creates the SQLite file at path and applies the schema.
// ":memory:" works too since the pool holds a single connection.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec("PRAGMA " + pragma + ";"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set PRAGMA %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

var pragmas = []string{
	"journal_mode = WAL",
	"foreign_keys = ON",
	"busy_timeout = 5000",
}

const schemaAlertRecords = `
CREATE TABLE IF NOT EXISTS alert_records (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    occurred_at TIMESTAMP NOT NULL,
    target TEXT NOT NULL CHECK (target IN ('CONTROLLER', 'EMAIL')),
    strategy TEXT NOT NULL,
    label TEXT,
    temp_c REAL NOT NULL,
    breach TEXT NOT NULL CHECK (breach IN ('NORMAL', 'TOO_LOW', 'TOO_HIGH'))
);
`

const indexAlertRecordsTime = `
CREATE INDEX IF NOT EXISTS idx_alert_records_occurred_at ON alert_records (occurred_at);
`

const schemaDeviceProfiles = `
CREATE TABLE IF NOT EXISTS device_profiles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    label TEXT NOT NULL CHECK (length(label) <= 48),
    strategy TEXT NOT NULL CHECK (strategy IN ('PASSIVE', 'HIGH_ACTIVE', 'MEDIUM_ACTIVE'))
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'viewer' CHECK (role IN ('viewer', 'operator')),
    created_at TIMESTAMP NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range []string{
		schemaAlertRecords,
		indexAlertRecordsTime,
		schemaDeviceProfiles,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
