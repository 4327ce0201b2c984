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

	"github.com/sage-x-project/keyvault/crypto/mnemonic"
	"github.com/sage-x-project/keyvault/internal/metrics"
)

var (
	newName    string
	newKind    string
	newPhrase  string
	newOutFile string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new encrypted vault from a mnemonic phrase",
	Example: `  # Create a vault and write it to a file
  vaultctl new --name "main" --kind legacy --phrase "canyon stage apple ..." --output vault.json`,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newName, "name", "n", "", "Human-readable vault name (required)")
	newCmd.Flags().StringVarP(&newKind, "kind", "k", "legacy", "Mnemonic kind (legacy, labs)")
	newCmd.Flags().StringVarP(&newPhrase, "phrase", "p", "", "Mnemonic phrase (prompted if omitted)")
	newCmd.Flags().StringVarP(&newOutFile, "output", "o", "", "Output file (required)")
	_ = newCmd.MarkFlagRequired("name")
	_ = newCmd.MarkFlagRequired("output")
}

func runNew(cmd *cobra.Command, args []string) error {
	kind := mnemonic.Kind(newKind)
	switch kind {
	case mnemonic.KindLegacy, mnemonic.KindLabs:
	default:
		return fmt.Errorf("unsupported kind: %s (must be legacy or labs)", newKind)
	}

	phrase := newPhrase
	if phrase == "" {
		p, err := readPassword("Mnemonic phrase: ")
		if err != nil {
			return err
		}
		phrase = p
	}

	password, err := readPassword("Vault password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	start := time.Now()
	v, err := vaultNew(newName, password, kind, phrase)
	metrics.ObserveOperation("new", err, time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	if err := saveVaultFile(v, newOutFile); err != nil {
		return err
	}

	fmt.Printf("Vault created: %s\n", v.String())
	fmt.Printf("Saved to: %s\n", newOutFile)
	return nil
}
