//go:build vaultdebug

// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package vault

// kdfIterations is pinned to 1 under the vaultdebug build tag so the test
// suite does not pay the full PBKDF2 cost on every sign/decrypt. Records
// written under this tag are not compatible with a release build's KDF and
// must never be persisted outside of tests.
const kdfIterations = 1
