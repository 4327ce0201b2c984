// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package vault

import "errors"

// Error taxonomy per spec.md §7. FailedToDecryptData deliberately covers
// both a wrong password and a tampered ciphertext — the two must not be
// distinguishable by the error returned, the time taken, or any log line.
var (
	ErrFailedToGenerateRandomBytes = errors.New("vault: failed to generate random bytes")
	ErrInvalidPrivateKey           = errors.New("vault: invalid private key")
	ErrFailedToDecryptData         = errors.New("vault: failed to decrypt data")
	ErrFailedToEncryptData         = errors.New("vault: failed to encrypt data")

	// Codec errors (§4.7, §4.8).
	ErrMissingField       = errors.New("vault: missing field in serialized record")
	ErrInvalidHex         = errors.New("vault: invalid hex encoding")
	ErrInvalidNonceLength = errors.New("vault: nonce must be 12 bytes")
	ErrInvalidSaltLength  = errors.New("vault: salt must be 32 bytes")
	ErrInvalidPublicKey   = errors.New("vault: public key is not a valid point")
)
