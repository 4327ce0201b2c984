// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package vault implements the encrypted key vault: a password-protected
// Ed25519 key pair and its mnemonic, persisted as a canonical hex-JSON
// record (spec.md).
package vault

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	sagecrypto "github.com/sage-x-project/keyvault/crypto"
	"github.com/sage-x-project/keyvault/crypto/keys"
	"github.com/sage-x-project/keyvault/crypto/mnemonic"
	"github.com/sage-x-project/keyvault/internal/logger"
)

// Vault owns one encrypted record and exposes password-guarded operations
// on it. It is a value-type object: every operation derives the symmetric
// key fresh from the password, uses the secret it needs, and wipes both
// before returning (spec.md §5).
type Vault struct {
	rec *record
	log logger.Logger
}

// New creates a vault from a mnemonic phrase (spec.md §4.3). The derived
// key pair and the symmetric key used to encrypt it never outlive this call.
func New(name, password string, kind mnemonic.Kind, phrase string, deriver mnemonic.Deriver) (*Vault, error) {
	salt, err := randomBytes(saltLength)
	if err != nil {
		return nil, err
	}
	privNonce, err := randomBytes(nonceLength)
	if err != nil {
		return nil, err
	}
	seedNonce, err := randomBytes(nonceLength)
	if err != nil {
		return nil, err
	}

	key := newSecureBuffer(deriveKey([]byte(password), salt))
	defer key.Wipe()

	material, err := deriver.Derive(phrase, kind)
	if err != nil {
		return nil, err
	}
	seed := newSecureBuffer(material.Seed[:])
	defer seed.Wipe()

	encPrivKey, err := sealWithKey(key.Bytes(), privNonce, seed.Bytes())
	if err != nil {
		return nil, err
	}

	encPhrase, err := sealWithKey(key.Bytes(), seedNonce, []byte(phrase))
	if err != nil {
		return nil, err
	}

	v := &Vault{
		rec: &record{
			AccountType:         kind,
			Name:                name,
			PubKey:              material.PublicKey,
			EncryptedPrivateKey: encPrivKey,
			PrivateKeyNonce:     privNonce,
			EncryptedSeedPhrase: encPhrase,
			SeedPhraseNonce:     seedNonce,
			Salt:                salt,
		},
		log: logger.GetDefaultLogger().WithFields(logger.String("component", "vault")),
	}
	v.log.Info("vault created", logger.String("name", name), logger.String("account_type", string(kind)))
	return v, nil
}

// FromSerialized parses the canonical hex-JSON blob produced by
// ToSerialized (spec.md §4.7).
func FromSerialized(data string) (*Vault, error) {
	rec, err := unmarshalRecord(data)
	if err != nil {
		return nil, err
	}
	return &Vault{
		rec: rec,
		log: logger.GetDefaultLogger().WithFields(logger.String("component", "vault")),
	}, nil
}

// ToSerialized renders the vault's current record as the canonical
// hex-JSON blob. It never fails (spec.md §6).
func (v *Vault) ToSerialized() string {
	s, err := v.rec.marshal()
	if err != nil {
		// marshal only fails if json.Marshal itself fails on plain
		// strings/byte slices, which cannot happen for this shape.
		panic(fmt.Sprintf("vault: unreachable marshal failure: %v", err))
	}
	return s
}

// decryptSeed derives K from password and the record's salt, decrypts the
// private-key seed, and returns it as a secure buffer the caller must Wipe.
func (v *Vault) decryptSeed(password string) (*secureBuffer, error) {
	key := newSecureBuffer(deriveKey([]byte(password), v.rec.Salt))
	defer key.Wipe()

	plain, err := openWithKey(key.Bytes(), v.rec.PrivateKeyNonce, v.rec.EncryptedPrivateKey)
	if err != nil {
		v.log.Warn("decrypt failed", logger.String("op", "decrypt_private_key"))
		return nil, err
	}
	if len(plain) != ed25519.SeedSize {
		zero(plain)
		return nil, ErrInvalidPrivateKey
	}
	return newSecureBuffer(plain), nil
}

// Sign decrypts the private key under password, signs data, and wipes the
// decrypted seed before returning (spec.md §4.4).
func (v *Vault) Sign(data []byte, password string) ([]byte, error) {
	seed, err := v.decryptSeed(password)
	if err != nil {
		return nil, err
	}
	defer seed.Wipe()

	privateKey := ed25519.NewKeyFromSeed(seed.Bytes())
	sig := ed25519.Sign(privateKey, data)
	v.log.Info("signed", logger.String("name", v.rec.Name))
	return sig, nil
}

// GetKeyPair decrypts and returns the raw (seed, public key) pair
// (spec.md §6). The caller owns the returned seed and is responsible for
// wiping it once done; the vault does not retain a copy.
func (v *Vault) GetKeyPair(password string) (seed [32]byte, publicKey [32]byte, err error) {
	sb, err := v.decryptSeed(password)
	if err != nil {
		return seed, publicKey, err
	}
	defer sb.Wipe()

	copy(seed[:], sb.Bytes())
	publicKey = v.rec.PubKey
	return seed, publicKey, nil
}

// KeyPair decrypts the private key under password and returns it as a
// crypto.KeyPair — the same narrow signer surface crypto/keys' batch
// verification and any future hardware- or derived-key-backed signer
// implementation consume (spec.md §9 redesign). Unlike GetKeyPair, the raw
// seed never leaves this call; the returned value only signs and verifies.
func (v *Vault) KeyPair(password string) (sagecrypto.KeyPair, error) {
	seed, err := v.decryptSeed(password)
	if err != nil {
		return nil, err
	}
	defer seed.Wipe()

	return keys.NewEd25519KeyPair(seed.Bytes())
}

// GetMnemonic decrypts and returns the original mnemonic phrase
// (spec.md §4.5). A non-UTF-8 plaintext is treated as corruption, not a
// distinct error kind.
func (v *Vault) GetMnemonic(password string) (string, error) {
	key := newSecureBuffer(deriveKey([]byte(password), v.rec.Salt))
	defer key.Wipe()

	plain, err := openWithKey(key.Bytes(), v.rec.SeedPhraseNonce, v.rec.EncryptedSeedPhrase)
	if err != nil {
		v.log.Warn("decrypt failed", logger.String("op", "decrypt_seed_phrase"))
		return "", err
	}
	defer zero(plain)

	if !utf8.Valid(plain) {
		return "", ErrFailedToDecryptData
	}
	return string(plain), nil
}

// ChangePassword re-encrypts the private key and mnemonic under a new
// password with fresh salt and nonces (spec.md §4.6). It is all-or-nothing:
// the in-memory record is only swapped after both re-encryptions succeed, so
// a failure at any step leaves v byte-identical to its pre-call state.
func (v *Vault) ChangePassword(oldPassword, newPassword string) error {
	newSalt, err := randomBytes(saltLength)
	if err != nil {
		return err
	}
	newPrivNonce, err := randomBytes(nonceLength)
	if err != nil {
		return err
	}
	newSeedNonce, err := randomBytes(nonceLength)
	if err != nil {
		return err
	}

	oldKey := newSecureBuffer(deriveKey([]byte(oldPassword), v.rec.Salt))
	defer oldKey.Wipe()
	newKey := newSecureBuffer(deriveKey([]byte(newPassword), newSalt))
	defer newKey.Wipe()

	seed, err := openWithKey(oldKey.Bytes(), v.rec.PrivateKeyNonce, v.rec.EncryptedPrivateKey)
	if err != nil {
		return err
	}
	seedBuf := newSecureBuffer(seed)
	defer seedBuf.Wipe()

	newEncPrivKey, err := sealWithKey(newKey.Bytes(), newPrivNonce, seedBuf.Bytes())
	if err != nil {
		return err
	}

	phrase, err := openWithKey(oldKey.Bytes(), v.rec.SeedPhraseNonce, v.rec.EncryptedSeedPhrase)
	if err != nil {
		return err
	}
	phraseBuf := newSecureBuffer(phrase)
	defer phraseBuf.Wipe()

	newEncPhrase, err := sealWithKey(newKey.Bytes(), newSeedNonce, phraseBuf.Bytes())
	if err != nil {
		return err
	}

	// Both re-encryptions succeeded: swap the record atomically. Nothing
	// above this line mutates v.rec.
	v.rec.Salt = newSalt
	v.rec.EncryptedPrivateKey = newEncPrivKey
	v.rec.PrivateKeyNonce = newPrivNonce
	v.rec.EncryptedSeedPhrase = newEncPhrase
	v.rec.SeedPhraseNonce = newSeedNonce

	v.log.Info("password changed", logger.String("name", v.rec.Name))
	return nil
}

// Name returns the vault's human-readable label.
func (v *Vault) Name() string { return v.rec.Name }

// PublicKey returns the Ed25519 public key.
func (v *Vault) PublicKey() [32]byte { return v.rec.PubKey }

// AccountType returns the mnemonic kind this vault was created from.
func (v *Vault) AccountType() mnemonic.Kind { return v.rec.AccountType }

// String renders only the public key, never secret fields — matching the
// original implementation's Debug formatting (spec.md §5 supplement).
func (v *Vault) String() string {
	return fmt.Sprintf("Vault{pubkey=%s}", hex.EncodeToString(v.rec.PubKey[:]))
}
