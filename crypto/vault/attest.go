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
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AttestationTTL bounds how long a possession attestation is valid for.
const AttestationTTL = 60 * time.Second

// Attest proves, to a party that trusts the vault's public key, that the
// caller unlocked the vault with the correct password at this moment — an
// EdDSA-signed JWT standing in for handing over the mnemonic or seed
// (SPEC_FULL.md §5). It decrypts the seed only long enough to sign the
// token and wipes it immediately after.
func (v *Vault) Attest(password, audience string) (string, error) {
	seed, err := v.decryptSeed(password)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()

	privateKey := ed25519.NewKeyFromSeed(seed.Bytes())

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": hexPubKey(v.rec.PubKey),
		"sub": v.rec.Name,
		"aud": audience,
		"iat": now.Unix(),
		"exp": now.Add(AttestationTTL).Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)

	signed, err := token.SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("vault: sign attestation: %w", err)
	}
	return signed, nil
}

// VerifyAttestation checks a token produced by Attest against this vault's
// public key and audience, returning the validated claims on success.
func (v *Vault) VerifyAttestation(tokenString, audience string) (jwt.MapClaims, error) {
	publicKey := ed25519.PublicKey(v.rec.PubKey[:])

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("vault: unexpected signing method %v", t.Header["alg"])
		}
		return publicKey, nil
	}, jwt.WithAudience(audience), jwt.WithIssuer(hexPubKey(v.rec.PubKey)))
	if err != nil {
		return nil, fmt.Errorf("vault: verify attestation: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("vault: invalid attestation token")
	}
	return claims, nil
}

func hexPubKey(pub [32]byte) string {
	return hex.EncodeToString(pub[:])
}
