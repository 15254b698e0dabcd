// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/election"
)

const timeFormat = time.RFC3339Nano

var (
	ErrAdminMismatch = errors.New("configured admin does not match the stored election")
	ErrNoElection    = errors.New("no election in database")
)

// ElectionRecord is the stored row describing the hosted election.
type ElectionRecord struct {
	ID        string
	Admin     common.Address
	CreatedAt time.Time
}

// LoadElection reads the election hosted in this database.
func LoadElection(ctx context.Context, db *sql.DB) (ElectionRecord, error) {
	var rec ElectionRecord
	var admin, createdAt string
	err := db.QueryRowContext(ctx, `SELECT id, admin, created_at FROM election LIMIT 1`).Scan(&rec.ID, &admin, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ElectionRecord{}, ErrNoElection
	}
	if err != nil {
		return ElectionRecord{}, fmt.Errorf("failed to query election: %w", err)
	}
	if !common.IsHexAddress(admin) {
		return ElectionRecord{}, fmt.Errorf("stored admin %q is not an address", admin)
	}
	rec.Admin = common.HexToAddress(admin)
	if rec.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return ElectionRecord{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return rec, nil
}

// EnsureElection returns the id of the election hosted in this database,
// creating it for admin on first start. The administrator is fixed at
// creation; a different admin on a later start is an error.
func EnsureElection(ctx context.Context, db *sql.DB, admin common.Address) (string, error) {
	rec, err := LoadElection(ctx, db)
	if err == nil {
		if rec.Admin != admin {
			return "", fmt.Errorf("%w: stored %s, configured %s", ErrAdminMismatch, rec.Admin.Hex(), admin.Hex())
		}
		return rec.ID, nil
	}
	if !errors.Is(err, ErrNoElection) {
		return "", err
	}

	id := auth.GenerateID()
	_, err = db.ExecContext(ctx, `
		INSERT INTO election (id, admin, created_at)
		VALUES ($1, $2, $3)
	`, id, admin.Hex(), time.Now().UTC().Format(timeFormat))
	if err != nil {
		return "", fmt.Errorf("failed to insert election: %w", err)
	}
	return id, nil
}

// EventStore is the SQL-backed journal of one election.
type EventStore struct {
	db         *sql.DB
	electionID string
}

func NewEventStore(db *sql.DB, electionID string) *EventStore {
	return &EventStore{db: db, electionID: electionID}
}

// Append writes the events of one operation in a single transaction.
func (s *EventStore) Append(ctx context.Context, events []election.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ev := range events {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO election_event
				(election_id, seq, type, voter, proposal_id, description, previous_status, next_status, recorded_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, s.electionID, int64(ev.Seq), string(ev.Type), ev.Voter.Hex(), ev.ProposalID, ev.Description,
			int(ev.Previous), int(ev.Next), ev.RecordedAt.UTC().Format(timeFormat))
		if err != nil {
			return fmt.Errorf("failed to insert event %d: %w", ev.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit events: %w", err)
	}
	return nil
}

// Load returns the journal in sequence order.
func (s *EventStore) Load(ctx context.Context) ([]election.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, type, voter, proposal_id, description, previous_status, next_status, recorded_at
		FROM election_event
		WHERE election_id = $1
		ORDER BY seq
	`, s.electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []election.Event{}
	for rows.Next() {
		var (
			ev             election.Event
			seq            int64
			typ, voter, at string
			prevSt, nextSt int
		)
		if err := rows.Scan(&seq, &typ, &voter, &ev.ProposalID, &ev.Description, &prevSt, &nextSt, &at); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		recordedAt, err := time.Parse(timeFormat, at)
		if err != nil {
			return nil, fmt.Errorf("event %d: bad timestamp %q: %w", seq, at, err)
		}
		ev.Seq = uint64(seq)
		ev.Type = election.EventType(typ)
		ev.Voter = common.HexToAddress(voter)
		ev.Previous = election.Status(prevSt)
		ev.Next = election.Status(nextSt)
		ev.RecordedAt = recordedAt
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}

var _ election.Journal = (*EventStore)(nil)
