// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote hosts a single election: an administrator registers voters,
voters register proposals and each casts exactly one vote, and the
administrator tallies. Ties go to the lowest proposal id.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_ADDRESS=0x... DATABASE_URL=quickly-vote.db go run .

Or with flags:

	go run . -p 3318 -t sqlite -d quickly-vote.db -admin 0x...

# Configuration

Required settings:

  - ADMIN_ADDRESS (-admin): Administrator's hex address
  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CONFIG_FILE (-c): TOML file with the same settings

Flags override the environment, which overrides the config file. A .env
file in the working directory is loaded if present.

# Startup

On boot the server loads the election's event journal from the database and
replays it, so a restart resumes in the same phase with the same voters,
proposals and votes.

# Architecture

  - election: the state machine, guards, tally and event replay
  - handlers: HTTP request handlers (election, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, signature auth, JSON helpers
  - models: Request/response types
  - auth: Address parsing, keys, request signing and recovery
  - db: Schema creation and the event store
  - cliparse: Configuration parsing
  - cmd/electionctl: Operator CLI

See package documentation for each component.
*/
package main
