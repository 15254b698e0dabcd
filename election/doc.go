// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements a single-election voting workflow.

# Workflow

An election moves through six phases, in this order only:

	RegisteringVoters → ProposalsRegistrationStarted → ProposalsRegistrationEnded
	  → VotingSessionStarted → VotingSessionEnded → VotesTallied

Each transition is administrator-only and legal from exactly one phase. The
edges live in a single table (see Predecessor and CanTransition).

	e := election.New(admin)
	err := e.AddVoter(ctx, admin, voter)
	err = e.StartProposalsRegistering(ctx, admin)
	id, err := e.AddProposal(ctx, voter, "Proposal 1")

Opening proposal registration creates the GENESIS placeholder at id 0.

# Access Gates

Operations are guarded by composable preconditions evaluated in a fixed
order before any state changes:

  - AddVoter: administrator, phase, duplicate
  - AddProposal: voter, phase, empty description
  - SetVote: voter, phase, already voted, proposal id
  - GetVoter, GetOneProposal: voter (and proposal id)
  - transitions: administrator, phase

Errors match the sentinels in errors.go with errors.Is. Phase failures are
*PhaseError values wrapping ErrInvalidPhase.

# Tally

TallyVotes scans proposals from id 1 and replaces the running winner only on
a strictly greater vote count, so ties resolve to the lowest id.

# Events

Every mutation emits events (VoterRegistered, WorkflowStatusChange,
ProposalRegistered, Voted). A configured Journal receives them before they
are applied; a journal error rejects the call with no state change.
Replay rebuilds an identical election from the event history:

	e, err := election.Replay(admin, events, election.WithJournal(store))

Each event is validated against the live state, written to the journal, and
only then applied, so a rejected write leaves nothing behind.

# Results

Result returns the winner, whether it is final, and the Digest of the event
history in one read. Digest is Keccak-256 over the events as JSON lines:

	{"seq":1,"type":"voter_registered","voter":"0x…","proposal_id":0,"description":"","previous_status":0,"next_status":0}\n

Keys appear in that order, voters are lowercase hex, statuses are numbers,
HTML characters are not escaped and recorded_at is left out. Anyone holding
the event history can recompute it.
*/
package election
