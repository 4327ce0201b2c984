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
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"
)

// sealWithKey encrypts plaintext under (key, nonce) with ChaCha20-Poly1305,
// appending the authentication tag to the ciphertext (spec.md §4.2). No
// additional associated data is used.
func sealWithKey(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, ErrFailedToEncryptData
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ErrFailedToEncryptData
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// openWithKey decrypts ciphertext under (key, nonce), verifying the tag.
// Any failure — wrong key or corrupted ciphertext — collapses to
// ErrFailedToDecryptData so the two are indistinguishable to the caller
// (spec.md §7).
func openWithKey(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, ErrFailedToDecryptData
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ErrFailedToDecryptData
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrFailedToDecryptData
	}
	return plaintext, nil
}

// randomBytes draws n cryptographically strong random bytes.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, ErrFailedToGenerateRandomBytes
	}
	return b, nil
}
