// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/keyvault/crypto/mnemonic"
)

func TestAttest_VerifyAttestationRoundTrip(t *testing.T) {
	v := newTestVault(t)

	token, err := v.Attest(testPassword, "keyvault-test")
	require.NoError(t, err)

	claims, err := v.VerifyAttestation(token, "keyvault-test")
	require.NoError(t, err)
	assert.Equal(t, v.Name(), claims["sub"])
}

func TestAttest_WrongPasswordFails(t *testing.T) {
	v := newTestVault(t)

	_, err := v.Attest("wrong-password", "keyvault-test")
	assert.ErrorIs(t, err, ErrFailedToDecryptData)
}

func TestVerifyAttestation_WrongAudienceRejected(t *testing.T) {
	v := newTestVault(t)

	token, err := v.Attest(testPassword, "keyvault-test")
	require.NoError(t, err)

	_, err = v.VerifyAttestation(token, "someone-else")
	assert.Error(t, err)
}

func TestVerifyAttestation_WrongVaultRejected(t *testing.T) {
	a := newTestVault(t)
	otherPhrase := "other other other other other other other other other other other other other other other other other other other other other other other other"
	b, err := New("Other key", testPassword, mnemonic.KindLegacy, otherPhrase, mnemonic.StandardDeriver{})
	require.NoError(t, err)

	token, err := a.Attest(testPassword, "keyvault-test")
	require.NoError(t, err)

	_, err = b.VerifyAttestation(token, "keyvault-test")
	assert.Error(t, err)
}
