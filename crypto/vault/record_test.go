// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package vault

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/keyvault/crypto/mnemonic"
)

func validRecord(t *testing.T) *record {
	t.Helper()
	var pub [32]byte
	pubKey, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	copy(pub[:], pubKey)

	return &record{
		AccountType:         mnemonic.KindLegacy,
		Name:                "Test key",
		PubKey:              pub,
		EncryptedPrivateKey: []byte{1, 2, 3, 4},
		PrivateKeyNonce:     make([]byte, nonceLength),
		EncryptedSeedPhrase: []byte{5, 6, 7, 8},
		SeedPhraseNonce:     make([]byte, nonceLength),
		Salt:                make([]byte, saltLength),
	}
}

func TestRecord_MarshalUnmarshalRoundTrip(t *testing.T) {
	r := validRecord(t)

	blob, err := r.marshal()
	require.NoError(t, err)

	got, err := unmarshalRecord(blob)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestUnmarshalRecord_MissingField(t *testing.T) {
	_, err := unmarshalRecord(`{"account_type":"legacy"}`)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestUnmarshalRecord_InvalidHex(t *testing.T) {
	r := validRecord(t)
	blob, err := r.marshal()
	require.NoError(t, err)

	corrupted := replaceJSONString(blob, "\"salt\":\"", "zz")
	_, err = unmarshalRecord(corrupted)
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestUnmarshalRecord_WrongNonceLength(t *testing.T) {
	r := validRecord(t)
	r.PrivateKeyNonce = make([]byte, nonceLength+1)
	blob, err := r.marshal()
	require.NoError(t, err)

	_, err = unmarshalRecord(blob)
	assert.ErrorIs(t, err, ErrInvalidNonceLength)
}

func TestUnmarshalRecord_WrongSaltLength(t *testing.T) {
	r := validRecord(t)
	r.Salt = make([]byte, saltLength-1)
	blob, err := r.marshal()
	require.NoError(t, err)

	_, err = unmarshalRecord(blob)
	assert.ErrorIs(t, err, ErrInvalidSaltLength)
}

func TestUnmarshalRecord_InvalidPublicKey(t *testing.T) {
	r := validRecord(t)
	blob, err := r.marshal()
	require.NoError(t, err)

	// y = 2 (little-endian, sign bit clear) has no matching x on the curve,
	// so this 32-byte string is not a valid Edwards curve point.
	bad := make([]byte, 32)
	bad[0] = 2
	corrupted := replaceJSONValue(blob, "pubkey", hex.EncodeToString(bad))
	_, err = unmarshalRecord(corrupted)
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

// replaceJSONString corrupts the blob right after the given field prefix by
// inserting invalid hex characters, for tests that need malformed hex rather
// than a well-formed-but-wrong value.
func replaceJSONString(blob, fieldPrefix, insert string) string {
	idx := indexOf(blob, fieldPrefix)
	if idx < 0 {
		return blob
	}
	at := idx + len(fieldPrefix)
	return blob[:at] + insert + blob[at:]
}

func replaceJSONValue(blob, field, newHex string) string {
	prefix := "\"" + field + "\":\""
	start := indexOf(blob, prefix)
	if start < 0 {
		return blob
	}
	valStart := start + len(prefix)
	end := indexOf(blob[valStart:], "\"")
	if end < 0 {
		return blob
	}
	return blob[:valStart] + newHex + blob[valStart+end:]
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
