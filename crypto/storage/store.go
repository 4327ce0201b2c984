// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package storage persists serialized vault records (spec.md §4.7) behind a
// common interface, with in-memory, filesystem, and PostgreSQL-backed
// implementations.
package storage

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned by Load/Delete when id has no stored record.
var ErrRecordNotFound = errors.New("storage: record not found")

// RecordStore persists the canonical hex-JSON blob a Vault produces via
// ToSerialized. It never parses the blob — only the vault package knows how
// to interpret it — so a store never needs to be rebuilt when the vault's
// internal record shape changes.
type RecordStore interface {
	Save(ctx context.Context, id string, serialized string) error
	Load(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}
