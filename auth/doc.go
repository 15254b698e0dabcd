// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides caller authentication and identity utilities.

# Identities

Voters and the administrator are identified by Ethereum-style addresses:

	addr, err := auth.ParseAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")

Keys are secp256k1, the same curve wallets use:

	key, addr, err := auth.GenerateKey()
	key, err = auth.KeyFromHex(os.Getenv("VOTER_KEY"))

# Signed Requests

Every request carries three headers:

  - X-Voter-Address: the caller's address
  - X-Signed-At: unix seconds when the request was signed
  - X-Signature: 65-byte hex signature of RequestDigest

The digest is Keccak-256 over the method, path, signing time and body hash:

	sig, err := auth.SignRequest(key, "POST", "/election/votes", now.Unix(), body)
	caller, err := auth.RecoverCaller("POST", "/election/votes", signedAt, body, addrHeader, sig, time.Now())

Signatures older or newer than MaxClockSkew are rejected. V values of
27/28 (wallet style) are accepted as well as 0/1.

# ID Generation

Random UUIDs for database records:

	id := auth.GenerateID()
*/
package auth
