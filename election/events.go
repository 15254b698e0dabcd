// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

type EventType string

const (
	EventVoterRegistered      EventType = "voter_registered"
	EventWorkflowStatusChange EventType = "workflow_status_change"
	EventProposalRegistered   EventType = "proposal_registered"
	EventVoted                EventType = "voted"
)

// Event is a notification emitted by a successful mutation. The ordered
// list of events is sufficient to rebuild the election.
type Event struct {
	Seq         uint64         `json:"seq"`
	Type        EventType      `json:"type"`
	Voter       common.Address `json:"voter"`
	ProposalID  int            `json:"proposal_id"`
	Description string         `json:"description,omitempty"`
	Previous    Status         `json:"previous_status"`
	Next        Status         `json:"next_status"`
	RecordedAt  time.Time      `json:"recorded_at"`
}

func voterRegistered(voter common.Address) Event {
	return Event{Type: EventVoterRegistered, Voter: voter}
}

func statusChanged(prev, next Status) Event {
	return Event{Type: EventWorkflowStatusChange, Previous: prev, Next: next}
}

func proposalRegistered(id int, description string) Event {
	return Event{Type: EventProposalRegistered, ProposalID: id, Description: description}
}

func voted(voter common.Address, proposalID int) Event {
	return Event{Type: EventVoted, Voter: voter, ProposalID: proposalID}
}

func (ev Event) String() string {
	switch ev.Type {
	case EventVoterRegistered:
		return fmt.Sprintf("#%d VoterRegistered(%s)", ev.Seq, ev.Voter.Hex())
	case EventWorkflowStatusChange:
		return fmt.Sprintf("#%d WorkflowStatusChange(%d,%d)", ev.Seq, ev.Previous, ev.Next)
	case EventProposalRegistered:
		return fmt.Sprintf("#%d ProposalRegistered(%d)", ev.Seq, ev.ProposalID)
	case EventVoted:
		return fmt.Sprintf("#%d Voted(%s,%d)", ev.Seq, ev.Voter.Hex(), ev.ProposalID)
	}
	return fmt.Sprintf("#%d %s", ev.Seq, ev.Type)
}

// digestEntry is the canonical form of an event inside Digest.
type digestEntry struct {
	Seq         uint64         `json:"seq"`
	Type        EventType      `json:"type"`
	Voter       common.Address `json:"voter"`
	ProposalID  int            `json:"proposal_id"`
	Description string         `json:"description"`
	Previous    Status         `json:"previous_status"`
	Next        Status         `json:"next_status"`
}

// Digest returns the Keccak-256 hash of the event sequence written as JSON
// lines: one object per event, newline terminated, keys in the order seq,
// type, voter, proposal_id, description, previous_status, next_status, no
// HTML escaping. Voter is lowercase 0x hex and statuses are numbers.
// RecordedAt is excluded so the digest survives storage round trips.
func Digest(events []Event) common.Hash {
	h := sha3.NewLegacyKeccak256()
	enc := json.NewEncoder(h)
	enc.SetEscapeHTML(false)
	for _, ev := range events {
		// Encoding plain fields into a hash cannot fail.
		_ = enc.Encode(digestEntry{
			Seq:         ev.Seq,
			Type:        ev.Type,
			Voter:       ev.Voter,
			ProposalID:  ev.ProposalID,
			Description: ev.Description,
			Previous:    ev.Previous,
			Next:        ev.Next,
		})
	}
	return common.BytesToHash(h.Sum(nil))
}
