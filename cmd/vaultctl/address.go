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

	"github.com/spf13/cobra"

	"github.com/sage-x-project/keyvault/crypto/chain"
)

var addressVaultFile string

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Derive the Solana base58 address for a vault's public key",
	Example: `  vaultctl address --vault vault.json`,
	RunE: runAddress,
}

func init() {
	rootCmd.AddCommand(addressCmd)

	addressCmd.Flags().StringVarP(&addressVaultFile, "vault", "v", "", "Vault file (required)")
	_ = addressCmd.MarkFlagRequired("vault")
}

func runAddress(cmd *cobra.Command, args []string) error {
	v, err := loadVaultFile(addressVaultFile)
	if err != nil {
		return err
	}

	fmt.Println(chain.SolanaAddress(v.PublicKey()))
	return nil
}
