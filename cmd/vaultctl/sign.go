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

var (
	signVaultFile string
	signMessage   string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a message with a vault's private key",
	Example: `  vaultctl sign --vault vault.json --message "hello"`,
	RunE: runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)

	signCmd.Flags().StringVarP(&signVaultFile, "vault", "v", "", "Vault file (required)")
	signCmd.Flags().StringVarP(&signMessage, "message", "m", "", "Message to sign (required)")
	_ = signCmd.MarkFlagRequired("vault")
	_ = signCmd.MarkFlagRequired("message")
}

func runSign(cmd *cobra.Command, args []string) error {
	v, err := loadVaultFile(signVaultFile)
	if err != nil {
		return err
	}

	password, err := readPassword("Vault password: ")
	if err != nil {
		return err
	}

	start := time.Now()
	sig, err := v.Sign([]byte(signMessage), password)
	metrics.ObserveOperation("sign", err, time.Since(start).Seconds())
	metrics.GetGlobalCollector().RecordSign(time.Since(start))
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	fmt.Println(hex.EncodeToString(sig))
	return nil
}
