// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

var (
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrSignerMismatch   = errors.New("signature does not match address")
	ErrStaleSignature   = errors.New("signature timestamp outside allowed window")
)

// MaxClockSkew bounds how far a request's signing time may be from now.
const MaxClockSkew = 5 * time.Minute

// GenerateID creates a random UUID for database records
func GenerateID() string {
	return uuid.NewString()
}

// ParseAddress validates a hex address (with or without 0x prefix)
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// GenerateKey creates a new secp256k1 key and its address
func GenerateKey() (*ecdsa.PrivateKey, common.Address, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, crypto.PubkeyToAddress(key.PublicKey), nil
}

// KeyFromHex restores a private key, accepting an optional 0x prefix
func KeyFromHex(s string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to restore private key: %w", err)
	}
	return key, nil
}

// KeyAddress returns the address controlled by key
func KeyAddress(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}

// KeyToHex encodes a private key as 0x-prefixed hex
func KeyToHex(key *ecdsa.PrivateKey) string {
	return hexutil.Encode(crypto.FromECDSA(key))
}

// RequestDigest is the Keccak-256 hash a caller signs to authenticate a request.
// It binds the method, path, signing time and body.
func RequestDigest(method, path string, signedAt int64, body []byte) []byte {
	return crypto.Keccak256(
		[]byte(method), []byte{'\n'},
		[]byte(path), []byte{'\n'},
		[]byte(strconv.FormatInt(signedAt, 10)), []byte{'\n'},
		crypto.Keccak256(body),
	)
}

// SignRequest signs a request with key and returns the hex signature
func SignRequest(key *ecdsa.PrivateKey, method, path string, signedAt int64, body []byte) (string, error) {
	sig, err := crypto.Sign(RequestDigest(method, path, signedAt, body), key)
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %w", err)
	}
	return hexutil.Encode(sig), nil
}

// RecoverCaller checks that sigHex was produced by claimed over the request
// and returns the caller's address.
func RecoverCaller(method, path string, signedAt int64, body []byte, claimed, sigHex string, now time.Time) (common.Address, error) {
	addr, err := ParseAddress(claimed)
	if err != nil {
		return common.Address{}, err
	}

	skew := now.Sub(time.Unix(signedAt, 0))
	if skew > MaxClockSkew || skew < -MaxClockSkew {
		return common.Address{}, ErrStaleSignature
	}

	sig, err := hexutil.Decode(strings.TrimSpace(sigHex))
	if err != nil || len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}
	// Wallets produce V as 27/28; crypto expects 0/1.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(RequestDigest(method, path, signedAt, body), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if crypto.PubkeyToAddress(*pub) != addr {
		return common.Address{}, ErrSignerMismatch
	}
	return addr, nil
}
