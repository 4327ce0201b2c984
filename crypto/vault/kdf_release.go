//go:build !vaultdebug

// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package vault

// kdfIterations is the PBKDF2 round count used by release builds
// (spec.md §4.1). Build with -tags vaultdebug to drop this to 1 for fast
// test iteration; never ship a binary built with that tag.
const kdfIterations = 100_000
