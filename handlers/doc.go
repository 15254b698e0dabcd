// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct around the hosted *election.Election:

  - ElectionHandler: Election state, voter registry, workflow transitions
  - VotingHandler: Proposal registration, proposal lookup, votes
  - ResultsHandler: Winner and event history

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(e, electionID)

# Workflow

The election moves strictly forward through six phases:

	RegisteringVoters → ProposalsRegistrationStarted → ProposalsRegistrationEnded
	→ VotingSessionStarted → VotingSessionEnded → VotesTallied

Each transition is its own admin-only POST endpoint.

# Authentication

Signed handlers read the caller recovered by middleware.WithSignature.
A request that reaches them without one gets 401.

# Errors

Election errors map to status codes and keep their reason as the message:

	AccessDenied, NotAVoter                       → 403
	InvalidPhase, AlreadyRegistered, AlreadyVoted → 409
	InvalidId                                     → 404
	EmptyProposal                                 → 400

Anything else, such as a journal write failure, is logged and returned as 500.
*/
package handlers
