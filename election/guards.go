// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "github.com/ethereum/go-ethereum/common"

// guard is a precondition evaluated before any mutation. Guards run in the
// order given and the first failure is returned.
type guard func(e *Election, caller common.Address) error

func (e *Election) check(caller common.Address, guards ...guard) error {
	for _, g := range guards {
		if err := g(e, caller); err != nil {
			return err
		}
	}
	return nil
}

func onlyAdmin(e *Election, caller common.Address) error {
	if caller != e.admin {
		return ErrAccessDenied
	}
	return nil
}

func onlyVoters(e *Election, caller common.Address) error {
	if !e.voters[caller].IsRegistered {
		return ErrNotAVoter
	}
	return nil
}

func inPhase(required Status, reason string) guard {
	return func(e *Election, _ common.Address) error {
		if e.status != required {
			return &PhaseError{Current: e.status, Required: required, Reason: reason}
		}
		return nil
	}
}

func notRegistered(voter common.Address) guard {
	return func(e *Election, _ common.Address) error {
		if e.voters[voter].IsRegistered {
			return ErrAlreadyRegistered
		}
		return nil
	}
}

func notVoted(e *Election, caller common.Address) error {
	if e.voters[caller].HasVoted {
		return ErrAlreadyVoted
	}
	return nil
}

func nonEmpty(description string) guard {
	return func(*Election, common.Address) error {
		if description == "" {
			return ErrEmptyProposal
		}
		return nil
	}
}

func validProposal(id int) guard {
	return func(e *Election, _ common.Address) error {
		if id < 0 || id >= len(e.proposals) {
			return ErrInvalidID
		}
		return nil
	}
}
