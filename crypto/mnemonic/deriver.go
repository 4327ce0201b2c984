// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package mnemonic

import (
	"crypto/ed25519"
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// seedIterations is the BIP39-style stretching round count for turning a
// phrase into key material. It has no bearing on the vault's own KDF
// iteration count (spec.md §4.1) — this runs once at vault creation, not on
// every password-guarded operation.
const seedIterations = 2048

// kindSalt namespaces the two derivation schemes so the same phrase produces
// different key material under Legacy vs Labs, matching how the original
// wallet's two mnemonic kinds never collide.
var kindSalt = map[Kind][]byte{
	KindLegacy: []byte("keyvault-mnemonic-legacy"),
	KindLabs:   []byte("keyvault-mnemonic-labs"),
}

// StandardDeriver is the default Deriver. It treats the phrase as the PBKDF2
// password and a kind-specific constant as the salt, matching the standard
// BIP39 seed-stretching shape (PBKDF2-HMAC-SHA512) without depending on a
// specific wordlist or checksum — validating that a phrase belongs to a
// dictionary is the external mnemonic generator's job, not the vault's.
type StandardDeriver struct{}

// Derive implements Deriver.
func (StandardDeriver) Derive(phrase string, kind Kind) (KeyMaterial, error) {
	if strings.TrimSpace(phrase) == "" {
		return KeyMaterial{}, ErrEmptyPhrase
	}

	salt, ok := kindSalt[kind]
	if !ok {
		return KeyMaterial{}, ErrUnsupportedKind
	}

	stretched := pbkdf2.Key([]byte(phrase), salt, seedIterations, ed25519.SeedSize, sha512.New)

	var km KeyMaterial
	copy(km.Seed[:], stretched)

	privateKey := ed25519.NewKeyFromSeed(km.Seed[:])
	publicKey := privateKey.Public().(ed25519.PublicKey)
	copy(km.PublicKey[:], publicKey)

	return km, nil
}
