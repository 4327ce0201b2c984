// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package vault

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/sage-x-project/keyvault/crypto/mnemonic"
)

// record is the sole persistent entity (spec.md §3). Field names are the
// stable, on-disk JSON keys; the codec is intentionally versionless — it
// describes this layout only (spec.md §4.7).
type record struct {
	AccountType         mnemonic.Kind
	Name                string
	PubKey              [32]byte
	EncryptedPrivateKey []byte
	PrivateKeyNonce     []byte
	EncryptedSeedPhrase []byte
	SeedPhraseNonce     []byte
	Salt                []byte
}

// wireRecord is the literal JSON shape: every binary field is a lowercase
// hex string (spec.md §4.7).
type wireRecord struct {
	AccountType           string `json:"account_type"`
	Name                  string `json:"name"`
	PubKey                string `json:"pubkey"`
	EncryptedPrivateKey   string `json:"encrypted_private_key"`
	PrivateKeyNonce       string `json:"private_key_nonce"`
	EncryptedSeedPhrase   string `json:"encrypted_seed_phrase"`
	SeedPhraseNonce       string `json:"seed_phrase_nonce"`
	Salt                  string `json:"salt"`
}

// marshal renders the record as the canonical hex-JSON blob.
func (r *record) marshal() (string, error) {
	w := wireRecord{
		AccountType:         string(r.AccountType),
		Name:                r.Name,
		PubKey:              hex.EncodeToString(r.PubKey[:]),
		EncryptedPrivateKey: hex.EncodeToString(r.EncryptedPrivateKey),
		PrivateKeyNonce:     hex.EncodeToString(r.PrivateKeyNonce),
		EncryptedSeedPhrase: hex.EncodeToString(r.EncryptedSeedPhrase),
		SeedPhraseNonce:     hex.EncodeToString(r.SeedPhraseNonce),
		Salt:                hex.EncodeToString(r.Salt),
	}
	out, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("vault: marshal record: %w", err)
	}
	return string(out), nil
}

// unmarshalRecord parses and validates a serialized blob, enforcing the
// length invariants of spec.md §3 and §4.7: nonces must decode to exactly 12
// bytes, the salt to exactly 32, and the public key must be a valid Edwards
// curve point (filippo.io/edwards25519 rejects bit-flip corruption earlier
// than a failed Ed25519 verify would).
func unmarshalRecord(data string) (*record, error) {
	var w wireRecord
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, fmt.Errorf("vault: parse record: %w", err)
	}

	if w.AccountType == "" || w.PubKey == "" || w.EncryptedPrivateKey == "" ||
		w.PrivateKeyNonce == "" || w.EncryptedSeedPhrase == "" || w.SeedPhraseNonce == "" || w.Salt == "" {
		return nil, ErrMissingField
	}

	pubKeyBytes, err := hexDecode(w.PubKey)
	if err != nil {
		return nil, err
	}
	if len(pubKeyBytes) != 32 {
		return nil, ErrInvalidPublicKey
	}
	if _, err := new(edwards25519.Point).SetBytes(pubKeyBytes); err != nil {
		return nil, ErrInvalidPublicKey
	}

	encPrivKey, err := hexDecode(w.EncryptedPrivateKey)
	if err != nil {
		return nil, err
	}

	privNonce, err := hexDecode(w.PrivateKeyNonce)
	if err != nil {
		return nil, err
	}
	if len(privNonce) != nonceLength {
		return nil, ErrInvalidNonceLength
	}

	encSeedPhrase, err := hexDecode(w.EncryptedSeedPhrase)
	if err != nil {
		return nil, err
	}

	seedNonce, err := hexDecode(w.SeedPhraseNonce)
	if err != nil {
		return nil, err
	}
	if len(seedNonce) != nonceLength {
		return nil, ErrInvalidNonceLength
	}

	salt, err := hexDecode(w.Salt)
	if err != nil {
		return nil, err
	}
	if len(salt) != saltLength {
		return nil, ErrInvalidSaltLength
	}

	r := &record{
		AccountType:         mnemonic.Kind(w.AccountType),
		Name:                w.Name,
		EncryptedPrivateKey: encPrivKey,
		PrivateKeyNonce:     privNonce,
		EncryptedSeedPhrase: encSeedPhrase,
		SeedPhraseNonce:     seedNonce,
		Salt:                salt,
	}
	copy(r.PubKey[:], pubKeyBytes)
	return r, nil
}

func hexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidHex
	}
	return b, nil
}
