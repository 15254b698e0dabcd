// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/election"
	"github.com/danielhkuo/quickly-vote/models"
)

var errUsage = errors.New("usage: electionctl <status|keygen|sign> [flags]")

// runStatus replays the stored journal and prints where the election stands.
func runStatus(ctx context.Context, out io.Writer, args []string) error {
	flags := flag.NewFlagSet("status", flag.ContinueOnError)
	dbType := flags.String("t", envOr("DATABASE_TYPE", db.TypeSQLite), "Database type (sqlite or postgres)")
	dbURL := flags.String("d", os.Getenv("DATABASE_URL"), "Database URL")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *dbURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	conn, err := db.Open(*dbType, *dbURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	rec, err := db.LoadElection(ctx, conn)
	if err != nil {
		return err
	}
	events, err := db.NewEventStore(conn, rec.ID).Load(ctx)
	if err != nil {
		return err
	}
	e, err := election.Replay(rec.Admin, events, election.WithLogger(quietLogger()))
	if err != nil {
		return err
	}

	printStatus(out, rec, e, events, time.Now())
	return nil
}

func printStatus(out io.Writer, rec db.ElectionRecord, e *election.Election, events []election.Event, now time.Time) {
	state := e.Snapshot()

	voted := 0
	for _, v := range state.Voters {
		if v.HasVoted {
			voted++
		}
	}

	fmt.Fprintf(out, "Election %s\n", rec.ID)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  admin:\t%s\n", state.Admin.Hex())
	fmt.Fprintf(tw, "  created:\t%s\n", humanize.RelTime(rec.CreatedAt, now, "ago", "from now"))
	fmt.Fprintf(tw, "  status:\t%s (%d)\n", state.Status, state.Status)
	fmt.Fprintf(tw, "  voters:\t%s registered, %s voted\n",
		humanize.Comma(int64(len(state.Voters))), humanize.Comma(int64(voted)))
	if n := len(events); n > 0 {
		fmt.Fprintf(tw, "  events:\t%s, last %s\n",
			humanize.Comma(int64(n)), humanize.RelTime(events[n-1].RecordedAt, now, "ago", "from now"))
	} else {
		fmt.Fprintf(tw, "  events:\tnone\n")
	}
	tw.Flush()

	if len(state.Proposals) > 0 {
		fmt.Fprintln(out, "Proposals:")
		tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for id, p := range state.Proposals {
			desc := p.Description
			if id == election.GenesisID {
				desc = "(genesis)"
			}
			fmt.Fprintf(tw, "  #%d\t%s\t%s %s\n", id, desc,
				humanize.Comma(int64(p.VoteCount)), plural(p.VoteCount, "vote", "votes"))
		}
		tw.Flush()
	}

	if state.Status == election.VotesTallied {
		winner := state.Proposals[state.WinningProposalID]
		fmt.Fprintf(out, "Winner: #%d %s\n", state.WinningProposalID, winner.Description)
		fmt.Fprintf(out, "Inputs hash: %s\n", e.Digest().Hex())
	}
}

// runKeygen prints a fresh signing key and its address.
func runKeygen(out io.Writer) error {
	key, addr, err := auth.GenerateKey()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "PRIVATE_KEY=%s\n", auth.KeyToHex(key)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "ADDRESS=%s\n", addr.Hex())
	return err
}

// runSign prints the headers authenticating one request.
func runSign(out io.Writer, args []string) error {
	flags := flag.NewFlagSet("sign", flag.ContinueOnError)
	keyHex := flags.String("key", os.Getenv("PRIVATE_KEY"), "Hex private key")
	method := flags.String("method", "GET", "HTTP method")
	path := flags.String("path", "", "Request path, e.g. /election/votes")
	body := flags.String("body", "", "Request body")
	signedAt := flags.Int64("at", 0, "Signing time in unix seconds (default now)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *keyHex == "" {
		return errors.New("private key required (use -key or PRIVATE_KEY env)")
	}
	if *path == "" {
		return errors.New("path required")
	}
	if *signedAt == 0 {
		*signedAt = time.Now().Unix()
	}

	key, err := auth.KeyFromHex(*keyHex)
	if err != nil {
		return err
	}
	sig, err := auth.SignRequest(key, *method, *path, *signedAt, []byte(*body))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %s\n", models.HeaderAddress, auth.KeyAddress(key).Hex())
	fmt.Fprintf(out, "%s: %s\n", models.HeaderSignedAt, strconv.FormatInt(*signedAt, 10))
	_, err = fmt.Fprintf(out, "%s: %s\n", models.HeaderSignature, sig)
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
