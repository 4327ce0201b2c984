// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package keys

import (
	"fmt"

	circled25519 "github.com/cloudflare/circl/sign/ed25519"
)

// VerifyBatch checks many (public key, message, signature) triples at once.
// A host application that receives a batch of signed transactions from
// several keyvault instances can verify them together instead of one at a
// time. ok reports whether every signature verified; perSignature reports
// the result for each input in order so a caller can isolate the failures.
func VerifyBatch(publicKeys [][]byte, messages, signatures [][]byte) (ok bool, perSignature []bool, err error) {
	if len(publicKeys) != len(messages) || len(messages) != len(signatures) {
		return false, nil, fmt.Errorf("keys/batch: mismatched input lengths: %d keys, %d messages, %d signatures",
			len(publicKeys), len(messages), len(signatures))
	}

	pubs := make([]circled25519.PublicKey, len(publicKeys))
	for i, pk := range publicKeys {
		if len(pk) != circled25519.PublicKeySize {
			return false, nil, fmt.Errorf("keys/batch: public key %d has length %d, want %d", i, len(pk), circled25519.PublicKeySize)
		}
		pubs[i] = circled25519.PublicKey(pk)
	}

	ok, perSignature = circled25519.VerifyBatch(pubs, messages, signatures)
	return ok, perSignature, nil
}
