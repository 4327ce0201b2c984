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
	"time"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/keyvault/internal/metrics"
)

var mnemonicVaultFile string

var mnemonicCmd = &cobra.Command{
	Use:   "mnemonic",
	Short: "Recover the mnemonic phrase from a vault",
	Example: `  vaultctl mnemonic --vault vault.json`,
	RunE: runMnemonic,
}

func init() {
	rootCmd.AddCommand(mnemonicCmd)

	mnemonicCmd.Flags().StringVarP(&mnemonicVaultFile, "vault", "v", "", "Vault file (required)")
	_ = mnemonicCmd.MarkFlagRequired("vault")
}

func runMnemonic(cmd *cobra.Command, args []string) error {
	v, err := loadVaultFile(mnemonicVaultFile)
	if err != nil {
		return err
	}

	password, err := readPassword("Vault password: ")
	if err != nil {
		return err
	}

	start := time.Now()
	phrase, err := v.GetMnemonic(password)
	metrics.ObserveOperation("get_mnemonic", err, time.Since(start).Seconds())
	metrics.GetGlobalCollector().RecordGetMnemonic(err == nil)
	if err != nil {
		return fmt.Errorf("recover mnemonic: %w", err)
	}

	fmt.Println(phrase)
	return nil
}
