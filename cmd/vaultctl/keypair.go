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
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sage-x-project/keyvault/internal/metrics"
)

var keypairVaultFile string

var keypairCmd = &cobra.Command{
	Use:   "keypair",
	Short: "Recover the raw Ed25519 seed and public key from a vault",
	Example: `  vaultctl keypair --vault vault.json`,
	RunE: runKeypair,
}

func init() {
	rootCmd.AddCommand(keypairCmd)

	keypairCmd.Flags().StringVarP(&keypairVaultFile, "vault", "v", "", "Vault file (required)")
	_ = keypairCmd.MarkFlagRequired("vault")
}

func runKeypair(cmd *cobra.Command, args []string) error {
	v, err := loadVaultFile(keypairVaultFile)
	if err != nil {
		return err
	}

	password, err := readPassword("Vault password: ")
	if err != nil {
		return err
	}

	start := time.Now()
	seed, pub, err := v.GetKeyPair(password)
	dur := time.Since(start)
	metrics.ObserveOperation("get_key_pair", err, dur.Seconds())
	metrics.GetGlobalCollector().RecordGetKeyPair(err == nil)
	if err != nil {
		return fmt.Errorf("recover key pair: %w", err)
	}
	defer func() {
		for i := range seed {
			seed[i] = 0
		}
	}()

	kp, err := v.KeyPair(password)
	if err != nil {
		return fmt.Errorf("recover key pair: %w", err)
	}

	fmt.Printf("seed:        %s\n", hex.EncodeToString(seed[:]))
	fmt.Printf("public_key:  %s\n", hex.EncodeToString(pub[:]))
	fmt.Printf("fingerprint: %s\n", kp.ID())
	return nil
}
