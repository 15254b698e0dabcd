// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request headers for signed requests
const (
	HeaderAddress   = "X-Voter-Address"
	HeaderSignedAt  = "X-Signed-At"
	HeaderSignature = "X-Signature"
)

// Request types

type AddVoterRequest struct {
	Address string `json:"address"`
}

type AddProposalRequest struct {
	Description string `json:"description"`
}

type SetVoteRequest struct {
	ProposalID *int `json:"proposal_id"`
}

// Response types

type ElectionResponse struct {
	ID                string `json:"id"`
	Admin             string `json:"admin"`
	Status            string `json:"status"`
	StatusCode        int    `json:"status_code"`
	ProposalCount     int    `json:"proposal_count"`
	WinningProposalID int    `json:"winning_proposal_id"`
	Final             bool   `json:"final"`
}

type VoterResponse struct {
	Address         string `json:"address"`
	IsRegistered    bool   `json:"is_registered"`
	HasVoted        bool   `json:"has_voted"`
	VotedProposalID int    `json:"voted_proposal_id"`
}

type ProposalResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

type AddProposalResponse struct {
	ProposalID int `json:"proposal_id"`
}

type StatusChangeResponse struct {
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
}

type WinnerResponse struct {
	WinningProposalID int    `json:"winning_proposal_id"`
	Final             bool   `json:"final"`
	InputsHash        string `json:"inputs_hash,omitempty"` // Keccak digest of the event journal
}

type EventResponse struct {
	Seq         uint64    `json:"seq"`
	Type        string    `json:"type"`
	Voter       string    `json:"voter,omitempty"`
	ProposalID  *int      `json:"proposal_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Previous    string    `json:"previous_status,omitempty"`
	Next        string    `json:"new_status,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
