// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// MemoryStore implements RecordStore with an in-memory map. Concurrent
// Load calls for the same id are coalesced through a singleflight.Group so a
// burst of readers for one record only pays the map lookup once.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]string
	sf      singleflight.Group
}

// NewMemoryStore creates an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]string)}
}

// NewID generates a new opaque record identifier.
func NewID() string {
	return uuid.NewString()
}

// Save stores serialized under id, overwriting any existing record.
func (s *MemoryStore) Save(_ context.Context, id string, serialized string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = serialized
	return nil
}

// Load returns the serialized record for id.
func (s *MemoryStore) Load(_ context.Context, id string) (string, error) {
	v, err, _ := s.sf.Do(id, func() (interface{}, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		rec, ok := s.records[id]
		if !ok {
			return "", ErrRecordNotFound
		}
		return rec, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Delete removes the record for id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrRecordNotFound
	}
	delete(s.records, id)
	return nil
}

// List returns all stored ids in sorted order.
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
