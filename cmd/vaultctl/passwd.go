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

var passwdVaultFile string

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change a vault's password",
	Long: `Change a vault's password. Re-encryption is all-or-nothing: if the
old password is wrong, the vault file is left untouched.`,
	Example: `  vaultctl passwd --vault vault.json`,
	RunE:    runPasswd,
}

func init() {
	rootCmd.AddCommand(passwdCmd)

	passwdCmd.Flags().StringVarP(&passwdVaultFile, "vault", "v", "", "Vault file (required)")
	_ = passwdCmd.MarkFlagRequired("vault")
}

func runPasswd(cmd *cobra.Command, args []string) error {
	v, err := loadVaultFile(passwdVaultFile)
	if err != nil {
		return err
	}

	oldPassword, err := readPassword("Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := readPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return fmt.Errorf("new passwords do not match")
	}

	start := time.Now()
	err = v.ChangePassword(oldPassword, newPassword)
	dur := time.Since(start)
	metrics.ObserveOperation("change_password", err, dur.Seconds())
	metrics.GetGlobalCollector().RecordChangePassword(err == nil, dur)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	if err := saveVaultFile(v, passwdVaultFile); err != nil {
		return err
	}

	fmt.Println("Password changed.")
	return nil
}
