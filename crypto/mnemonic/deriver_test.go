package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhrase = "canyon stage apple useful bench lazy grass enact canvas like figure help pave reopen betray exotic nose fetch wagon senior acid across salon alley"

func TestStandardDeriver_Deterministic(t *testing.T) {
	d := StandardDeriver{}

	a, err := d.Derive(testPhrase, KindLegacy)
	require.NoError(t, err)

	b, err := d.Derive(testPhrase, KindLegacy)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestStandardDeriver_KindsDiffer(t *testing.T) {
	d := StandardDeriver{}

	legacy, err := d.Derive(testPhrase, KindLegacy)
	require.NoError(t, err)

	labs, err := d.Derive(testPhrase, KindLabs)
	require.NoError(t, err)

	assert.NotEqual(t, legacy.Seed, labs.Seed)
	assert.NotEqual(t, legacy.PublicKey, labs.PublicKey)
}

func TestStandardDeriver_EmptyPhrase(t *testing.T) {
	d := StandardDeriver{}

	_, err := d.Derive("   ", KindLegacy)
	assert.ErrorIs(t, err, ErrEmptyPhrase)
}

func TestStandardDeriver_UnsupportedKind(t *testing.T) {
	d := StandardDeriver{}

	_, err := d.Derive(testPhrase, Kind("unknown"))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}
