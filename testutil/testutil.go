// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/election"
	"github.com/danielhkuo/quickly-vote/models"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB opens a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(admin common.Address) cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
		AdminAddress: admin.Hex(),
	}
}

// Key is a test identity able to sign requests
type Key struct {
	Private *ecdsa.PrivateKey
	Address common.Address
}

// NewKey generates a fresh signing identity
func NewKey(t *testing.T) Key {
	t.Helper()
	priv, addr, err := auth.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	return Key{Private: priv, Address: addr}
}

// QuietLogger discards everything
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateTestElection creates an election journaled to db and returns it with its id
func CreateTestElection(t *testing.T, conn *sql.DB, admin common.Address) (*election.Election, string) {
	t.Helper()

	id, err := db.EnsureElection(context.Background(), conn, admin)
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}
	e := election.New(admin,
		election.WithJournal(db.NewEventStore(conn, id)),
		election.WithLogger(QuietLogger()),
	)
	return e, id
}

// AdvanceTo drives e forward to target as admin
func AdvanceTo(t *testing.T, e *election.Election, admin common.Address, target election.Status) {
	t.Helper()

	ctx := context.Background()
	steps := map[election.Status]func(context.Context, common.Address) error{
		election.ProposalsRegistrationStarted: e.StartProposalsRegistering,
		election.ProposalsRegistrationEnded:   e.EndProposalsRegistering,
		election.VotingSessionStarted:         e.StartVotingSession,
		election.VotingSessionEnded:           e.EndVotingSession,
		election.VotesTallied: func(ctx context.Context, caller common.Address) error {
			_, err := e.TallyVotes(ctx, caller)
			return err
		},
	}
	for s := e.Status() + 1; s <= target; s++ {
		if err := steps[s](ctx, admin); err != nil {
			t.Fatalf("Failed to advance to %s: %v", s, err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeSignedRequest creates an HTTP test request signed by key.
// A []byte body is sent as is; anything else is JSON encoded.
func MakeSignedRequest(t *testing.T, key Key, method, path string, body interface{}) *http.Request {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		raw = b
	default:
		var err error
		if raw, err = json.Marshal(b); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}

	signedAt := time.Now().Unix()
	sig, err := auth.SignRequest(key.Private, method, path, signedAt, raw)
	if err != nil {
		t.Fatalf("Failed to sign request: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(models.HeaderAddress, key.Address.Hex())
	req.Header.Set(models.HeaderSignedAt, strconv.FormatInt(signedAt, 10))
	req.Header.Set(models.HeaderSignature, sig)
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status and the error message of a failed response
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)
	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Message != message {
		t.Errorf("Expected message %q, got %q", message, resp.Message)
	}
}
