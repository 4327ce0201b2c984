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

	"github.com/spf13/cobra"

	"github.com/sage-x-project/keyvault/crypto/keys"
)

var (
	verifyPublicKeys []string
	verifyMessages   []string
	verifySignatures []string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Batch-verify several (pubkey, message, signature) triples at once",
	Long: `Batch-verify several (pubkey, message, signature) triples at once.
Useful for a host application that has collected signed messages from many
keyvault instances and wants to check them together rather than one at a
time. Repeat --pubkey, --message and --signature in matching order.`,
	Example: `  vaultctl verify \
    --pubkey a1b2... --message "hello" --signature 9f8e... \
    --pubkey c3d4... --message "world" --signature 1122...`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringArrayVar(&verifyPublicKeys, "pubkey", nil, "Hex-encoded Ed25519 public key (repeatable)")
	verifyCmd.Flags().StringArrayVar(&verifyMessages, "message", nil, "Message that was signed (repeatable)")
	verifyCmd.Flags().StringArrayVar(&verifySignatures, "signature", nil, "Hex-encoded Ed25519 signature (repeatable)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if len(verifyPublicKeys) == 0 {
		return fmt.Errorf("at least one --pubkey/--message/--signature triple is required")
	}
	if len(verifyPublicKeys) != len(verifyMessages) || len(verifyMessages) != len(verifySignatures) {
		return fmt.Errorf("--pubkey, --message and --signature must be given the same number of times")
	}

	publicKeys := make([][]byte, len(verifyPublicKeys))
	for i, pk := range verifyPublicKeys {
		decoded, err := hex.DecodeString(pk)
		if err != nil {
			return fmt.Errorf("decode pubkey %d: %w", i, err)
		}
		publicKeys[i] = decoded
	}

	messages := make([][]byte, len(verifyMessages))
	for i, m := range verifyMessages {
		messages[i] = []byte(m)
	}

	signatures := make([][]byte, len(verifySignatures))
	for i, sig := range verifySignatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			return fmt.Errorf("decode signature %d: %w", i, err)
		}
		signatures[i] = decoded
	}

	ok, perSignature, err := keys.VerifyBatch(publicKeys, messages, signatures)
	if err != nil {
		return fmt.Errorf("verify batch: %w", err)
	}

	for i, valid := range perSignature {
		fmt.Printf("[%d] %s: %v\n", i, verifyPublicKeys[i], valid)
	}
	if !ok {
		return fmt.Errorf("one or more signatures failed verification")
	}
	fmt.Println("all signatures valid")
	return nil
}
