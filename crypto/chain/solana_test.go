// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package chain

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolanaAddress_RoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	var key [32]byte
	copy(key[:], pub)

	addr := SolanaAddress(key)
	assert.NotEmpty(t, addr)

	decoded, err := ParseSolanaAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, key, decoded)
}

func TestParseSolanaAddress_Invalid(t *testing.T) {
	_, err := ParseSolanaAddress("not-base58-!!!")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ParseSolanaAddress("2NEpo7TZRRrLZSi2U")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
