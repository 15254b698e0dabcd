// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command electionctl is the operator tool for a quickly-vote deployment.
//
// Usage:
//
//	electionctl status -t sqlite -d quickly-vote.db
//	electionctl keygen
//	electionctl sign -key 0x... -method POST -path /election/votes -body '{"proposal_id":1}'
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "electionctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "status":
		return runStatus(ctx, os.Stdout, args[1:])
	case "keygen":
		return runKeygen(os.Stdout)
	case "sign":
		return runSign(os.Stdout, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}
