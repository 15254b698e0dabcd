// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database of the given type and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver, dsn string
	switch dbType {
	case TypeSQLite:
		driver, dsn = "sqlite", sqliteDSN(url)
	case TypePostgres:
		driver, dsn = "postgres", url
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}
	if dbType == TypeSQLite {
		// A single connection keeps :memory: databases shared and writes serialized.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

func sqliteDSN(url string) string {
	if url == ":memory:" || strings.Contains(url, "?") {
		return url
	}
	return url + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Hosted election
CREATE TABLE IF NOT EXISTS election (
    id TEXT PRIMARY KEY,
    admin TEXT NOT NULL,
    created_at TEXT NOT NULL
);

-- Event journal
CREATE TABLE IF NOT EXISTS election_event (
    election_id TEXT NOT NULL REFERENCES election(id),
    seq BIGINT NOT NULL,
    type TEXT NOT NULL,
    voter TEXT NOT NULL,
    proposal_id BIGINT NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    previous_status INTEGER NOT NULL DEFAULT 0,
    next_status INTEGER NOT NULL DEFAULT 0,
    recorded_at TEXT NOT NULL,
    PRIMARY KEY (election_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_election_event_type ON election_event(election_id, type);
`
