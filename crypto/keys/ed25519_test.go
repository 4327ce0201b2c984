// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package keys

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sagecrypto "github.com/sage-x-project/keyvault/crypto"
)

func TestGenerateEd25519KeyPair_SignAndVerify(t *testing.T) {
	kp, err := GenerateEd25519KeyPair()
	require.NoError(t, err)
	assert.Equal(t, sagecrypto.KeyTypeEd25519, kp.Type())

	msg := []byte("hello vault")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.NoError(t, kp.Verify(msg, sig))
}

func TestGenerateEd25519KeyPair_VerifyRejectsTamperedMessage(t *testing.T) {
	kp, err := GenerateEd25519KeyPair()
	require.NoError(t, err)

	sig, err := kp.Sign([]byte("original"))
	require.NoError(t, err)

	err = kp.Verify([]byte("tampered"), sig)
	assert.ErrorIs(t, err, sagecrypto.ErrInvalidSignature)
}

func TestNewEd25519KeyPair_RejectsWrongSeedLength(t *testing.T) {
	_, err := NewEd25519KeyPair(make([]byte, 16))
	assert.Error(t, err)
}

func TestNewEd25519KeyPair_RecomputesPublicKeyFromSeed(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	seed := priv.Seed()

	kp, err := NewEd25519KeyPair(seed)
	require.NoError(t, err)

	wantPub := priv.Public().(ed25519.PublicKey)
	assert.Equal(t, ed25519.PublicKey(wantPub), kp.PublicKey())
}

func TestEd25519KeyPair_SeedRoundTrips(t *testing.T) {
	kp, err := GenerateEd25519KeyPair()
	require.NoError(t, err)

	impl, ok := kp.(*ed25519KeyPair)
	require.True(t, ok)

	seed := impl.Seed()
	assert.Len(t, seed, ed25519.SeedSize)

	rebuilt, err := NewEd25519KeyPair(seed)
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey(), rebuilt.PublicKey())
}

func TestEd25519KeyPair_IDIsStableForSameKey(t *testing.T) {
	kp, err := GenerateEd25519KeyPair()
	require.NoError(t, err)

	impl := kp.(*ed25519KeyPair)
	seed := impl.Seed()

	rebuilt, err := NewEd25519KeyPair(seed)
	require.NoError(t, err)

	assert.Equal(t, kp.ID(), rebuilt.ID())
	assert.NotEmpty(t, kp.ID())
}
