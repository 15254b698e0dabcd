// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/election"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

type ElectionHandler struct {
	election   *election.Election
	electionID string
}

func NewElectionHandler(e *election.Election, electionID string) *ElectionHandler {
	return &ElectionHandler{election: e, electionID: electionID}
}

// GetElection handles GET /election
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	summary := h.election.Summary()
	middleware.JSONResponse(w, http.StatusOK, models.ElectionResponse{
		ID:                h.electionID,
		Admin:             summary.Admin.Hex(),
		Status:            summary.Status.String(),
		StatusCode:        int(summary.Status),
		ProposalCount:     summary.ProposalCount,
		WinningProposalID: summary.WinningProposalID,
		Final:             summary.Status == election.VotesTallied,
	})
}

// AddVoter handles POST /election/voters
func (h *ElectionHandler) AddVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req models.AddVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Address == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}
	voter, err := auth.ParseAddress(req.Address)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.election.AddVoter(r.Context(), caller, voter); err != nil {
		electionError(w, "voter", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, voterResponse(voter, election.Voter{IsRegistered: true}))
}

// GetVoter handles GET /election/voters/{address}
func (h *ElectionHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	voter, err := auth.ParseAddress(r.PathValue("address"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.election.GetVoter(caller, voter)
	if err != nil {
		electionError(w, "voter", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voterResponse(voter, record))
}

// StartProposals handles POST /election/proposals/start
func (h *ElectionHandler) StartProposals(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, election.ProposalsRegistrationStarted, h.election.StartProposalsRegistering)
}

// EndProposals handles POST /election/proposals/end
func (h *ElectionHandler) EndProposals(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, election.ProposalsRegistrationEnded, h.election.EndProposalsRegistering)
}

// StartVoting handles POST /election/voting/start
func (h *ElectionHandler) StartVoting(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, election.VotingSessionStarted, h.election.StartVotingSession)
}

// EndVoting handles POST /election/voting/end
func (h *ElectionHandler) EndVoting(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, election.VotingSessionEnded, h.election.EndVotingSession)
}

// Tally handles POST /election/tally
func (h *ElectionHandler) Tally(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, election.VotesTallied, func(ctx context.Context, caller common.Address) error {
		_, err := h.election.TallyVotes(ctx, caller)
		return err
	})
}

// transition runs one workflow step. Phases only move forward one at a
// time, so a successful step always came from the target's predecessor.
func (h *ElectionHandler) transition(w http.ResponseWriter, r *http.Request, next election.Status, step func(context.Context, common.Address) error) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := step(r.Context(), caller); err != nil {
		electionError(w, "status change", err)
		return
	}
	previous, _ := election.Predecessor(next)

	middleware.JSONResponse(w, http.StatusOK, models.StatusChangeResponse{
		PreviousStatus: previous.String(),
		NewStatus:      next.String(),
	})
}

func voterResponse(addr common.Address, v election.Voter) models.VoterResponse {
	return models.VoterResponse{
		Address:         addr.Hex(),
		IsRegistered:    v.IsRegistered,
		HasVoted:        v.HasVoted,
		VotedProposalID: v.VotedProposalID,
	}
}
