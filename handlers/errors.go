// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-vote/election"
	"github.com/danielhkuo/quickly-vote/middleware"
)

// statusFor maps election errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, election.ErrAccessDenied), errors.Is(err, election.ErrNotAVoter):
		return http.StatusForbidden
	case errors.Is(err, election.ErrInvalidPhase),
		errors.Is(err, election.ErrAlreadyRegistered),
		errors.Is(err, election.ErrAlreadyVoted):
		return http.StatusConflict
	case errors.Is(err, election.ErrInvalidID):
		return http.StatusNotFound
	case errors.Is(err, election.ErrEmptyProposal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// electionError writes err using the election's own reason string.
// Anything unrecognized is a journal or context failure and is not echoed.
func electionError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("election operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, status, "Failed to record "+op)
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}

// callerFrom returns the authenticated caller or writes 401
func callerFrom(w http.ResponseWriter, r *http.Request) (common.Address, bool) {
	caller, ok := middleware.Caller(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Signed request required")
	}
	return caller, ok
}
