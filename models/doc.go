// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddVoterRequest: address
  - AddProposalRequest: description
  - SetVoteRequest: proposal_id (required, 0 is GENESIS)

# Response Types

Types for JSON responses:

  - ElectionResponse: id, admin, status, proposal_count, winning_proposal_id, final
  - VoterResponse: address, is_registered, has_voted, voted_proposal_id
  - ProposalResponse: id, description, vote_count
  - AddProposalResponse: proposal_id
  - StatusChangeResponse: previous_status, new_status
  - WinnerResponse: winning_proposal_id, final, inputs_hash
  - EventResponse: one journal entry
  - ErrorResponse: error, message

# Headers

Signed requests carry:

	HeaderAddress   = "X-Voter-Address"
	HeaderSignedAt  = "X-Signed-At"
	HeaderSignature = "X-Signature"

Domain types (Voter, Proposal, Status, Event) live in package election.
*/
package models
