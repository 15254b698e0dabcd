// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// apply folds one event into the state, rejecting events that would break
// an invariant. Replay uses it directly; live operations run validate and
// mutate separately so the journal sees the event in between.
func (e *Election) apply(ev Event) error {
	if err := e.validate(ev); err != nil {
		return err
	}
	e.mutate(ev)
	return nil
}

// validate checks ev against the current state without changing it.
func (e *Election) validate(ev Event) error {
	if want := uint64(len(e.events)) + 1; ev.Seq != want {
		return fmt.Errorf("%w: event seq %d, want %d", ErrCorruptJournal, ev.Seq, want)
	}

	switch ev.Type {
	case EventVoterRegistered:
		if e.status != RegisteringVoters {
			return fmt.Errorf("%w: %s during %s", ErrCorruptJournal, ev, e.status)
		}
		if e.voters[ev.Voter].IsRegistered {
			return fmt.Errorf("%w: %s: %v", ErrCorruptJournal, ev, ErrAlreadyRegistered)
		}

	case EventWorkflowStatusChange:
		if ev.Previous != e.status || !CanTransition(ev.Previous, ev.Next) {
			return fmt.Errorf("%w: %s from %s", ErrCorruptJournal, ev, e.status)
		}

	case EventProposalRegistered:
		if e.status != ProposalsRegistrationStarted {
			return fmt.Errorf("%w: %s during %s", ErrCorruptJournal, ev, e.status)
		}
		if ev.ProposalID != len(e.proposals) || ev.Description == "" {
			return fmt.Errorf("%w: %s out of order", ErrCorruptJournal, ev)
		}

	case EventVoted:
		v := e.voters[ev.Voter]
		if e.status != VotingSessionStarted || !v.IsRegistered || v.HasVoted {
			return fmt.Errorf("%w: %s rejected during %s", ErrCorruptJournal, ev, e.status)
		}
		if ev.ProposalID < 0 || ev.ProposalID >= len(e.proposals) {
			return fmt.Errorf("%w: %s: %v", ErrCorruptJournal, ev, ErrInvalidID)
		}

	default:
		return fmt.Errorf("%w: unknown event type %q", ErrCorruptJournal, ev.Type)
	}
	return nil
}

// mutate applies an event that validate accepted. It cannot fail.
func (e *Election) mutate(ev Event) {
	switch ev.Type {
	case EventVoterRegistered:
		e.voters[ev.Voter] = Voter{IsRegistered: true}

	case EventWorkflowStatusChange:
		e.status = ev.Next
		switch ev.Next {
		case ProposalsRegistrationStarted:
			e.proposals = append(e.proposals, Proposal{})
		case VotesTallied:
			e.winningProposalID = tally(e.proposals)
		}

	case EventProposalRegistered:
		e.proposals = append(e.proposals, Proposal{Description: ev.Description})

	case EventVoted:
		e.proposals[ev.ProposalID].VoteCount++
		e.voters[ev.Voter] = Voter{IsRegistered: true, HasVoted: true, VotedProposalID: ev.ProposalID}
	}

	e.events = append(e.events, ev)
}

// Replay rebuilds an election from its event history. Options are applied
// after the history is loaded, so a journal passed here only sees new events.
func Replay(admin common.Address, events []Event, opts ...Option) (*Election, error) {
	e := New(admin)
	for _, ev := range events {
		if err := e.apply(ev); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// State is a point-in-time copy of the whole aggregate.
type State struct {
	Admin             common.Address           `json:"admin"`
	Status            Status                   `json:"status"`
	Voters            map[common.Address]Voter `json:"voters"`
	Proposals         []Proposal               `json:"proposals"`
	WinningProposalID int                      `json:"winning_proposal_id"`
}

// Snapshot returns a copy of the full state without access checks. It is
// meant for operators and tests, not for callers of the voting API.
func (e *Election) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	voters := make(map[common.Address]Voter, len(e.voters))
	for k, v := range e.voters {
		voters[k] = v
	}
	proposals := make([]Proposal, len(e.proposals))
	copy(proposals, e.proposals)

	return State{
		Admin:             e.admin,
		Status:            e.status,
		Voters:            voters,
		Proposals:         proposals,
		WinningProposalID: e.winningProposalID,
	}
}

// Summary is the public view of the election: no voter records.
type Summary struct {
	Admin             common.Address
	Status            Status
	ProposalCount     int
	WinningProposalID int
}

// Summary reads the public fields under one lock.
func (e *Election) Summary() Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Summary{
		Admin:             e.admin,
		Status:            e.status,
		ProposalCount:     len(e.proposals),
		WinningProposalID: e.winningProposalID,
	}
}

// Result reads the winner, whether it is final, and the digest of the
// history it was computed from, all under one lock. The digest is zero
// until the election is tallied.
func (e *Election) Result() (winner int, final bool, digest common.Hash) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.status != VotesTallied {
		return e.winningProposalID, false, common.Hash{}
	}
	return e.winningProposalID, true, Digest(e.events)
}
