// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

var (
	ErrAccessDenied      = errors.New("caller is not the administrator")
	ErrNotAVoter         = errors.New("You're not a voter")
	ErrInvalidPhase      = errors.New("operation not allowed in the current phase")
	ErrAlreadyRegistered = errors.New("Already registered")
	ErrAlreadyVoted      = errors.New("You have already voted")
	ErrInvalidID         = errors.New("Proposal not found")
	ErrEmptyProposal     = errors.New("You must propose something")
	ErrCorruptJournal    = errors.New("corrupt event journal")
)

// PhaseError is returned when an operation is attempted outside its phase.
// It matches ErrInvalidPhase with errors.Is.
type PhaseError struct {
	Current  Status
	Required Status
	Reason   string
}

func (e *PhaseError) Error() string {
	return e.Reason
}

func (e *PhaseError) Unwrap() error {
	return ErrInvalidPhase
}
