// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/election"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

type VotingHandler struct {
	election   *election.Election
	electionID string
}

func NewVotingHandler(e *election.Election, electionID string) *VotingHandler {
	return &VotingHandler{election: e, electionID: electionID}
}

// AddProposal handles POST /election/proposals
func (h *VotingHandler) AddProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req models.AddProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.election.AddProposal(r.Context(), caller, req.Description)
	if err != nil {
		electionError(w, "proposal", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddProposalResponse{
		ProposalID: id,
	})
}

// GetProposal handles GET /election/proposals/{id}
func (h *VotingHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal id must be an integer")
		return
	}

	proposal, err := h.election.GetOneProposal(caller, id)
	if err != nil {
		electionError(w, "proposal", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProposalResponse{
		ID:          id,
		Description: proposal.Description,
		VoteCount:   proposal.VoteCount,
	})
}

// SetVote handles POST /election/votes
func (h *VotingHandler) SetVote(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req models.SetVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ProposalID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal_id is required")
		return
	}

	if err := h.election.SetVote(r.Context(), caller, *req.ProposalID); err != nil {
		electionError(w, "vote", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.VoterResponse{
		Address:         caller.Hex(),
		IsRegistered:    true,
		HasVoted:        true,
		VotedProposalID: *req.ProposalID,
	})
}
