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
)

var (
	attestVaultFile string
	attestAudience  string
)

var attestCmd = &cobra.Command{
	Use:   "attest",
	Short: "Produce a signed possession attestation without exporting the key",
	Example: `  vaultctl attest --vault vault.json --audience "example.com"`,
	RunE: runAttest,
}

var (
	verifyAttestVaultFile string
	verifyAttestAudience  string
	verifyAttestToken     string
)

var verifyAttestCmd = &cobra.Command{
	Use:   "verify-attest",
	Short: "Verify a possession attestation token",
	Example: `  vaultctl verify-attest --vault vault.json --audience "example.com" --token "eyJ..."`,
	RunE: runVerifyAttest,
}

func init() {
	rootCmd.AddCommand(attestCmd)
	attestCmd.Flags().StringVarP(&attestVaultFile, "vault", "v", "", "Vault file (required)")
	attestCmd.Flags().StringVarP(&attestAudience, "audience", "a", "", "Intended audience (required)")
	_ = attestCmd.MarkFlagRequired("vault")
	_ = attestCmd.MarkFlagRequired("audience")

	rootCmd.AddCommand(verifyAttestCmd)
	verifyAttestCmd.Flags().StringVarP(&verifyAttestVaultFile, "vault", "v", "", "Vault file (required)")
	verifyAttestCmd.Flags().StringVarP(&verifyAttestAudience, "audience", "a", "", "Expected audience (required)")
	verifyAttestCmd.Flags().StringVarP(&verifyAttestToken, "token", "t", "", "Attestation token (required)")
	_ = verifyAttestCmd.MarkFlagRequired("vault")
	_ = verifyAttestCmd.MarkFlagRequired("audience")
	_ = verifyAttestCmd.MarkFlagRequired("token")
}

func runAttest(cmd *cobra.Command, args []string) error {
	v, err := loadVaultFile(attestVaultFile)
	if err != nil {
		return err
	}

	password, err := readPassword("Vault password: ")
	if err != nil {
		return err
	}

	token, err := v.Attest(password, attestAudience)
	if err != nil {
		return fmt.Errorf("attest: %w", err)
	}

	fmt.Println(token)
	return nil
}

func runVerifyAttest(cmd *cobra.Command, args []string) error {
	v, err := loadVaultFile(verifyAttestVaultFile)
	if err != nil {
		return err
	}

	claims, err := v.VerifyAttestation(verifyAttestToken, verifyAttestAudience)
	if err != nil {
		return fmt.Errorf("verify attestation: %w", err)
	}

	fmt.Println("Attestation valid.")
	for _, key := range []string{"iss", "sub", "aud", "iat", "exp", "jti"} {
		if val, ok := claims[key]; ok {
			fmt.Printf("  %s: %v\n", key, val)
		}
	}
	return nil
}
