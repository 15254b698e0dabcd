// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/election"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
)

func NewRouter(e *election.Election, electionID string) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(e, electionID)
	votingHandler := handlers.NewVotingHandler(e, electionID)
	resultsHandler := handlers.NewResultsHandler(e, electionID)

	signed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSignature(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election state (public)
	mux.HandleFunc("GET /election", middleware.WithLogging(electionHandler.GetElection))
	mux.HandleFunc("GET /election/winner", middleware.WithLogging(resultsHandler.GetWinner))

	// Voter registry
	mux.HandleFunc("POST /election/voters", signed(electionHandler.AddVoter))
	mux.HandleFunc("GET /election/voters/{address}", signed(electionHandler.GetVoter))

	// Workflow (admin operations)
	mux.HandleFunc("POST /election/proposals/start", signed(electionHandler.StartProposals))
	mux.HandleFunc("POST /election/proposals/end", signed(electionHandler.EndProposals))
	mux.HandleFunc("POST /election/voting/start", signed(electionHandler.StartVoting))
	mux.HandleFunc("POST /election/voting/end", signed(electionHandler.EndVoting))
	mux.HandleFunc("POST /election/tally", signed(electionHandler.Tally))

	// Proposals and votes (registered voters)
	mux.HandleFunc("POST /election/proposals", signed(votingHandler.AddProposal))
	mux.HandleFunc("GET /election/proposals/{id}", signed(votingHandler.GetProposal))
	mux.HandleFunc("POST /election/votes", signed(votingHandler.SetVote))
	mux.HandleFunc("GET /election/events", signed(resultsHandler.GetEvents))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
