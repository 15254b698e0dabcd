// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// Status is the single global workflow phase of an election.
type Status uint8

const (
	RegisteringVoters Status = iota
	ProposalsRegistrationStarted
	ProposalsRegistrationEnded
	VotingSessionStarted
	VotingSessionEnded
	VotesTallied
)

var statusNames = [...]string{
	RegisteringVoters:            "RegisteringVoters",
	ProposalsRegistrationStarted: "ProposalsRegistrationStarted",
	ProposalsRegistrationEnded:   "ProposalsRegistrationEnded",
	VotingSessionStarted:         "VotingSessionStarted",
	VotingSessionEnded:           "VotingSessionEnded",
	VotesTallied:                 "VotesTallied",
}

func (s Status) String() string {
	if s.Valid() {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Valid reports whether s is one of the six defined phases.
func (s Status) Valid() bool {
	return int(s) < len(statusNames)
}

// ParseStatus maps a phase name back to its Status.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown workflow status %q", name)
}

// transition is one legal edge of the workflow. reason is reported when
// the edge is attempted from any state other than from.
type transition struct {
	from   Status
	to     Status
	reason string
}

// transitions lists every edge the workflow allows, keyed by target phase.
var transitions = map[Status]transition{
	ProposalsRegistrationStarted: {RegisteringVoters, ProposalsRegistrationStarted, "Registering proposals can't be started now"},
	ProposalsRegistrationEnded:   {ProposalsRegistrationStarted, ProposalsRegistrationEnded, "Registering proposals haven't started yet"},
	VotingSessionStarted:         {ProposalsRegistrationEnded, VotingSessionStarted, "Registering proposals phase is not finished"},
	VotingSessionEnded:           {VotingSessionStarted, VotingSessionEnded, "Voting session hasn't started yet"},
	VotesTallied:                 {VotingSessionEnded, VotesTallied, "Current status is not voting session ended"},
}

// Predecessor returns the only phase from which to can be entered.
// The initial phase has no predecessor.
func Predecessor(to Status) (Status, bool) {
	t, ok := transitions[to]
	return t.from, ok
}

// CanTransition reports whether the workflow may move from one phase to another.
func CanTransition(from, to Status) bool {
	t, ok := transitions[to]
	return ok && t.from == from
}
