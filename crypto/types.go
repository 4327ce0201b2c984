package crypto

import (
	"crypto"
	"errors"
)

// KeyType represents the type of cryptographic key the vault protects.
type KeyType string

// KeyTypeEd25519 is the only key type the vault's data model supports; the
// record's pubkey/encrypted_private_key fields are fixed at 32 bytes each.
const KeyTypeEd25519 KeyType = "Ed25519"

// KeyPair represents a cryptographic key pair capable of signing.
type KeyPair interface {
	// PublicKey returns the public key.
	PublicKey() crypto.PublicKey

	// Type returns the key type.
	Type() KeyType

	// Sign signs the given message.
	Sign(message []byte) ([]byte, error)

	// Verify verifies the signature.
	Verify(message, signature []byte) error

	// ID returns a unique identifier for this key pair, derived from its
	// public key.
	ID() string
}

// Common errors shared across the crypto/* packages.
var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidKeyType   = errors.New("invalid key type")
)
