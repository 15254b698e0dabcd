// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// GenesisID is the id of the placeholder proposal created when proposal
// registration opens.
const GenesisID = 0

type Voter struct {
	IsRegistered    bool `json:"is_registered"`
	HasVoted        bool `json:"has_voted"`
	VotedProposalID int  `json:"voted_proposal_id"`
}

type Proposal struct {
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

// Journal durably records events before they are applied. If Append
// returns an error the operation is rejected and nothing changes.
type Journal interface {
	Append(ctx context.Context, events []Event) error
}

type Option func(*Election)

func WithJournal(j Journal) Option {
	return func(e *Election) { e.journal = j }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Election) { e.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(e *Election) { e.now = now }
}

// Election is the aggregate root of a single vote. All methods are safe for
// concurrent use; mutations are serialized and either apply every effect
// (journal entry included) or none.
type Election struct {
	mu sync.RWMutex

	admin             common.Address
	status            Status
	voters            map[common.Address]Voter
	proposals         []Proposal
	winningProposalID int
	events            []Event

	journal Journal
	logger  *slog.Logger
	now     func() time.Time
}

// New creates an election administered by admin, in RegisteringVoters.
func New(admin common.Address, opts ...Option) *Election {
	e := &Election{
		admin:  admin,
		status: RegisteringVoters,
		voters: make(map[common.Address]Voter),
		logger: slog.Default(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddVoter registers voter. Administrator only, RegisteringVoters only.
func (e *Election) AddVoter(ctx context.Context, caller, voter common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.check(caller,
		onlyAdmin,
		inPhase(RegisteringVoters, "Voters registration is not open yet"),
		notRegistered(voter),
	)
	if err != nil {
		return err
	}
	if err := e.commit(ctx, voterRegistered(voter)); err != nil {
		return err
	}

	e.logger.Info("voter registered", "voter", voter.Hex())
	return nil
}

// GetVoter returns the record for any identity, an all-default record for
// identities that were never registered. The caller must be a voter.
func (e *Election) GetVoter(caller, voter common.Address) (Voter, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if err := e.check(caller, onlyVoters); err != nil {
		return Voter{}, err
	}
	return e.voters[voter], nil
}

// AddProposal appends a proposal and returns its id.
func (e *Election) AddProposal(ctx context.Context, caller common.Address, description string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.check(caller,
		onlyVoters,
		inPhase(ProposalsRegistrationStarted, "Proposals are not allowed yet"),
		nonEmpty(description),
	)
	if err != nil {
		return 0, err
	}

	id := len(e.proposals)
	if err := e.commit(ctx, proposalRegistered(id, description)); err != nil {
		return 0, err
	}

	e.logger.Info("proposal registered", "proposal_id", id, "voter", caller.Hex())
	return id, nil
}

// GetOneProposal returns the proposal stored under id. The caller must be a voter.
func (e *Election) GetOneProposal(caller common.Address, id int) (Proposal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if err := e.check(caller, onlyVoters, validProposal(id)); err != nil {
		return Proposal{}, err
	}
	return e.proposals[id], nil
}

// SetVote records the caller's single vote for proposalID.
func (e *Election) SetVote(ctx context.Context, caller common.Address, proposalID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.check(caller,
		onlyVoters,
		inPhase(VotingSessionStarted, "Voting session hasn't started yet"),
		notVoted,
		validProposal(proposalID),
	)
	if err != nil {
		return err
	}
	if err := e.commit(ctx, voted(caller, proposalID)); err != nil {
		return err
	}

	e.logger.Info("vote cast", "voter", caller.Hex(), "proposal_id", proposalID)
	return nil
}

func (e *Election) StartProposalsRegistering(ctx context.Context, caller common.Address) error {
	return e.advance(ctx, caller, ProposalsRegistrationStarted)
}

func (e *Election) EndProposalsRegistering(ctx context.Context, caller common.Address) error {
	return e.advance(ctx, caller, ProposalsRegistrationEnded)
}

func (e *Election) StartVotingSession(ctx context.Context, caller common.Address) error {
	return e.advance(ctx, caller, VotingSessionStarted)
}

func (e *Election) EndVotingSession(ctx context.Context, caller common.Address) error {
	return e.advance(ctx, caller, VotingSessionEnded)
}

// TallyVotes closes the election and returns the winning proposal id.
func (e *Election) TallyVotes(ctx context.Context, caller common.Address) (int, error) {
	if err := e.advance(ctx, caller, VotesTallied); err != nil {
		return 0, err
	}
	return e.WinningProposalID(), nil
}

func (e *Election) advance(ctx context.Context, caller common.Address, to Status) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := transitions[to]
	if err := e.check(caller, onlyAdmin, inPhase(t.from, t.reason)); err != nil {
		return err
	}
	if err := e.commit(ctx, statusChanged(t.from, t.to)); err != nil {
		return err
	}

	e.logger.Info("workflow status changed",
		"previous", t.from.String(),
		"next", t.to.String(),
	)
	if to == VotesTallied {
		e.logger.Info("votes tallied", "winning_proposal_id", e.winningProposalID)
	}
	return nil
}

// WinningProposalID is meaningful only once Status is VotesTallied;
// before that it reports GenesisID.
func (e *Election) WinningProposalID() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.winningProposalID
}

func (e *Election) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

func (e *Election) Admin() common.Address {
	return e.admin
}

// IsVoter reports whether id holds a voter record.
func (e *Election) IsVoter(id common.Address) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.voters[id].IsRegistered
}

// Events returns a copy of every event emitted so far, in order.
func (e *Election) Events() []Event {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Event, len(e.events))
	copy(out, e.events)
	return out
}

// Digest hashes the event history; see Digest.
func (e *Election) Digest() common.Hash {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Digest(e.events)
}

// commit stamps ev, validates it, hands it to the journal and then applies
// it to live state. Guards must have passed before commit is called.
func (e *Election) commit(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ev.Seq = uint64(len(e.events)) + 1
	ev.RecordedAt = e.now()

	if err := e.validate(ev); err != nil {
		return err
	}
	if e.journal != nil {
		if err := e.journal.Append(ctx, []Event{ev}); err != nil {
			return fmt.Errorf("append events: %w", err)
		}
	}
	e.mutate(ev)
	return nil
}
