// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vaultctl",
	Short: "keyvault CLI - encrypted Ed25519 key vault management",
	Long: `vaultctl provides tools for creating, unlocking, and managing
encrypted Ed25519 key vaults.

This tool supports:
- Vault creation from a mnemonic phrase
- Message signing
- Mnemonic and key pair recovery
- Password rotation
- Possession attestation (EdDSA-signed JWT)
- Solana address derivation
- Record storage (memory, file, postgres)
- Batch signature verification
- Prometheus metrics (serve and snapshot)`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Note: commands are registered in their respective files
	// - new.go: newCmd
	// - sign.go: signCmd
	// - mnemonic.go: mnemonicCmd
	// - keypair.go: keypairCmd
	// - passwd.go: passwdCmd
	// - attest.go: attestCmd, verifyAttestCmd
	// - address.go: addressCmd
	// - store.go: storeCmd and its save/load/list/delete subcommands
	// - metrics.go: metricsCmd and its serve/stats subcommands
	// - verify.go: verifyCmd
}
