// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package chain derives blockchain-specific addresses from the vault's raw
// Ed25519 public key. A vault record carries one key pair; this package
// answers "what address does that key pair have on chain X", not a
// transaction-signing concern (spec.md Non-goals exclude network protocols).
package chain

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// ErrInvalidAddress is returned when a Solana address string does not decode
// to a 32-byte Ed25519 public key.
var ErrInvalidAddress = errors.New("chain: invalid solana address")

// SolanaAddress returns the base58 Solana address for an Ed25519 public key.
// On Solana, an account's address is simply its public key; there is no
// separate derivation step.
func SolanaAddress(publicKey [32]byte) string {
	return solana.PublicKeyFromBytes(publicKey[:]).String()
}

// ParseSolanaAddress decodes a base58 Solana address back into a public key,
// validating that it is exactly 32 bytes.
func ParseSolanaAddress(address string) ([32]byte, error) {
	var pub [32]byte

	decoded, err := base58.Decode(address)
	if err != nil {
		return pub, ErrInvalidAddress
	}
	if len(decoded) != 32 {
		return pub, ErrInvalidAddress
	}

	copy(pub[:], decoded)
	return pub, nil
}
