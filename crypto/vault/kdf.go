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
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// saltLength is both the KDF salt length and the derived key length
// (spec.md §4.1, §3: "salt length equals the KDF output length").
const saltLength = 32

// nonceLength is the ChaCha20-Poly1305 nonce length (spec.md §4.2).
const nonceLength = 12

// deriveKey runs PBKDF2-HMAC-SHA256 over the password with the given salt,
// producing the 256-bit symmetric key. kdfIterations is a build-time
// constant (kdf_release.go / kdf_debug.go) and is never persisted: it is an
// implicit parameter of this format version (spec.md §4.1, §9).
func deriveKey(password []byte, salt []byte) []byte {
	return pbkdf2.Key(password, salt, kdfIterations, saltLength, sha256.New)
}
