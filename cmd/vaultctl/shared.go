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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/sage-x-project/keyvault/crypto/mnemonic"
	"github.com/sage-x-project/keyvault/crypto/vault"
)

// vaultNew creates a vault using the standard PBKDF2-HMAC-SHA512 deriver.
func vaultNew(name, password string, kind mnemonic.Kind, phrase string) (*vault.Vault, error) {
	return vault.New(name, password, kind, phrase, mnemonic.StandardDeriver{})
}

// stdinReader is shared by every readPassword call so that buffered input
// for later prompts is not lost between calls.
var stdinReader = bufio.NewReader(os.Stdin)

// readPassword prompts on stderr and reads a password without echoing it.
// Falls back to reading a line from stdin when stdin isn't a terminal (e.g.
// piped input in scripts and tests).
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		line, err := stdinReader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pwBytes), nil
}

// loadVaultFile reads a serialized vault record from path.
func loadVaultFile(path string) (*vault.Vault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vault file: %w", err)
	}
	return vault.FromSerialized(string(data))
}

// saveVaultFile writes v's serialized record to path with owner-only
// permissions, since the file contains an encrypted private key.
func saveVaultFile(v *vault.Vault, path string) error {
	if err := os.WriteFile(path, []byte(v.ToSerialized()), 0600); err != nil {
		return fmt.Errorf("write vault file: %w", err)
	}
	return nil
}
