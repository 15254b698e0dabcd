// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the election
event journal.

# Connections

Open supports SQLite (modernc.org/sqlite, pure Go) and PostgreSQL (lib/pq):

	conn, err := db.Open(db.TypeSQLite, "quickly-vote.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite files are opened in WAL mode with a single connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election: the hosted election and its administrator
  - election_event: the append-only event journal, keyed by (election_id, seq)

# Journal

EventStore implements election.Journal. Each operation's events are written
in one transaction; Load returns them in sequence order for replay:

	id, err := db.EnsureElection(ctx, conn, admin)
	store := db.NewEventStore(conn, id)
	events, err := store.Load(ctx)
	e, err := election.Replay(admin, events, election.WithJournal(store))
*/
package db
