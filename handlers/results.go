// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/election"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

type ResultsHandler struct {
	election   *election.Election
	electionID string
}

func NewResultsHandler(e *election.Election, electionID string) *ResultsHandler {
	return &ResultsHandler{election: e, electionID: electionID}
}

// GetWinner handles GET /election/winner
// Public. The id is only final once votes are tallied; inputs_hash lets
// anyone holding the event history check what the tally was computed from.
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	winner, final, digest := h.election.Result()
	resp := models.WinnerResponse{
		WinningProposalID: winner,
		Final:             final,
	}
	if final {
		resp.InputsHash = digest.Hex()
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetEvents handles GET /election/events
// Registered voters only.
func (h *ResultsHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	if !h.election.IsVoter(caller) {
		middleware.ErrorResponse(w, http.StatusForbidden, election.ErrNotAVoter.Error())
		return
	}

	events := h.election.Events()
	out := make([]models.EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, eventResponse(ev))
	}
	middleware.JSONResponse(w, http.StatusOK, out)
}

func eventResponse(ev election.Event) models.EventResponse {
	resp := models.EventResponse{
		Seq:        ev.Seq,
		Type:       string(ev.Type),
		RecordedAt: ev.RecordedAt,
	}
	switch ev.Type {
	case election.EventVoterRegistered:
		resp.Voter = ev.Voter.Hex()
	case election.EventProposalRegistered:
		id := ev.ProposalID
		resp.ProposalID = &id
		resp.Description = ev.Description
	case election.EventVoted:
		id := ev.ProposalID
		resp.Voter = ev.Voter.Hex()
		resp.ProposalID = &id
	case election.EventWorkflowStatusChange:
		resp.Previous = ev.Previous.String()
		resp.Next = ev.Next.String()
	}
	return resp
}
