// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package postgres stores serialized vault records in a PostgreSQL table,
// keyed by an opaque id (github.com/google/uuid in the common case).
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sage-x-project/keyvault/crypto/storage"
)

// Config holds the PostgreSQL connection parameters.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// Store implements storage.RecordStore backed by a `vault_records` table:
//
//	CREATE TABLE vault_records (
//	    id         TEXT PRIMARY KEY,
//	    serialized TEXT NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type Store struct {
	pool *pgxpool.Pool
}

// NewStore opens a connection pool and verifies it with a ping.
func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	connString := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("storage/postgres: create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage/postgres: ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Save upserts the serialized record for id.
func (s *Store) Save(ctx context.Context, id string, serialized string) error {
	const query = `
		INSERT INTO vault_records (id, serialized, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET serialized = EXCLUDED.serialized, updated_at = now()
	`
	if _, err := s.pool.Exec(ctx, query, id, serialized); err != nil {
		return fmt.Errorf("storage/postgres: save record: %w", err)
	}
	return nil
}

// Load returns the serialized record for id.
func (s *Store) Load(ctx context.Context, id string) (string, error) {
	const query = `SELECT serialized FROM vault_records WHERE id = $1`

	var serialized string
	err := s.pool.QueryRow(ctx, query, id).Scan(&serialized)
	if err == pgx.ErrNoRows {
		return "", storage.ErrRecordNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage/postgres: load record: %w", err)
	}
	return serialized, nil
}

// Delete removes the record for id.
func (s *Store) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM vault_records WHERE id = $1`

	result, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("storage/postgres: delete record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrRecordNotFound
	}
	return nil
}

// List returns every stored record id, most recently updated first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	const query = `SELECT id FROM vault_records ORDER BY updated_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("storage/postgres: list records: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage/postgres: scan record id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage/postgres: iterate records: %w", err)
	}
	return ids, nil
}
