// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package keys

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	sagecrypto "github.com/sage-x-project/keyvault/crypto"
)

// ed25519KeyPair implements the KeyPair interface for Ed25519 keys.
type ed25519KeyPair struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
	id         string
}

// fingerprint derives a short, display-friendly key ID from a public key
// using Keccak-256, matching the fingerprint algorithm the rest of this
// wallet's chain tooling uses for accounts on other curves.
func fingerprint(publicKey []byte) string {
	hash := ethcrypto.Keccak256(publicKey)
	return hex.EncodeToString(hash[:8])
}

// GenerateEd25519KeyPair generates a fresh random Ed25519 key pair. It is
// used by callers that want a throwaway signer (tests, batch-verify demos);
// the vault itself derives its key pair from a mnemonic, not from this.
func GenerateEd25519KeyPair() (sagecrypto.KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	return &ed25519KeyPair{
		privateKey: privateKey,
		publicKey:  publicKey,
		id:         fingerprint(publicKey),
	}, nil
}

// NewEd25519KeyPair builds a key pair from an existing 32-byte seed, the
// exact representation the vault stores encrypted. It recomputes the public
// key from the seed rather than trusting a caller-supplied one.
func NewEd25519KeyPair(seed []byte) (sagecrypto.KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := privateKey.Public().(ed25519.PublicKey)

	return &ed25519KeyPair{
		privateKey: privateKey,
		publicKey:  publicKey,
		id:         fingerprint(publicKey),
	}, nil
}

// PublicKey returns the public key.
func (kp *ed25519KeyPair) PublicKey() crypto.PublicKey {
	return kp.publicKey
}

// Seed returns a copy of the 32-byte secret scalar seed. Callers that do not
// need it should not call this; it exists for the vault and storage layers
// that must round-trip the exact bytes the record persists.
func (kp *ed25519KeyPair) Seed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	copy(seed, kp.privateKey.Seed())
	return seed
}

// Type returns the key type.
func (kp *ed25519KeyPair) Type() sagecrypto.KeyType {
	return sagecrypto.KeyTypeEd25519
}

// Sign signs the given message.
func (kp *ed25519KeyPair) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(kp.privateKey, message), nil
}

// Verify verifies the signature.
func (kp *ed25519KeyPair) Verify(message, signature []byte) error {
	if !ed25519.Verify(kp.publicKey, message, signature) {
		return sagecrypto.ErrInvalidSignature
	}
	return nil
}

// ID returns a unique identifier for this key pair.
func (kp *ed25519KeyPair) ID() string {
	return kp.id
}
