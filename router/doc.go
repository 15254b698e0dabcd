// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(e, electionID)

# Endpoints

Health and public state:

	GET /health
	GET /election        - Phase, admin, proposal count, winner
	GET /election/winner - Winning proposal id, final flag, inputs hash

Voter registry (signed):

	POST /election/voters           - Register voter (admin)
	GET  /election/voters/{address} - Voter record (voters)

Workflow (signed, admin):

	POST /election/proposals/start
	POST /election/proposals/end
	POST /election/voting/start
	POST /election/voting/end
	POST /election/tally

Proposals and votes (signed, voters):

	POST /election/proposals      - Register proposal
	GET  /election/proposals/{id} - Proposal details
	POST /election/votes          - Cast the caller's single vote
	GET  /election/events         - Event history

# Handler Initialization

All handlers share the one hosted election:

	electionHandler := handlers.NewElectionHandler(e, electionID)
	votingHandler := handlers.NewVotingHandler(e, electionID)
	resultsHandler := handlers.NewResultsHandler(e, electionID)

Signed routes are wrapped in middleware.WithSignature, which authenticates
the caller before the handler runs.
*/
package router
