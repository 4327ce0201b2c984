// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package mnemonic derives Ed25519 key pairs from BIP-39-style mnemonic
// phrases. Phrase generation and dictionary validation are external
// collaborators (spec.md §1, Out of scope); this package only supplies the
// phrase-to-keypair function the vault calls at creation time.
package mnemonic

import (
	"errors"
)

// Kind identifies a mnemonic derivation scheme. Its string form is stable
// and is what the vault persists as account_type.
type Kind string

const (
	// KindLegacy is the original, pre-BIP39 derivation scheme.
	KindLegacy Kind = "legacy"
	// KindLabs is the BIP39-compatible derivation scheme.
	KindLabs Kind = "labs"
)

// ErrUnsupportedKind is returned when a Deriver does not recognize a Kind.
var ErrUnsupportedKind = errors.New("mnemonic: unsupported kind")

// ErrEmptyPhrase is returned when the phrase is empty or whitespace-only.
var ErrEmptyPhrase = errors.New("mnemonic: empty phrase")

// KeyMaterial is the result of deriving a key pair from a phrase: the
// 32-byte Ed25519 seed (secret scalar seed, not an expanded key) and its
// corresponding public key.
type KeyMaterial struct {
	Seed      [32]byte
	PublicKey [32]byte
}

// Deriver converts a (phrase, kind) pair into Ed25519 key material. The
// vault calls this exactly once, at New, and never retains the phrase
// beyond encrypting it.
type Deriver interface {
	Derive(phrase string, kind Kind) (KeyMaterial, error)
}
