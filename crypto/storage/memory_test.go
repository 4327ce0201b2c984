// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("SaveAndLoad", func(t *testing.T) {
		id := NewID()
		require.NoError(t, store.Save(ctx, id, "blob-1"))

		got, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "blob-1", got)
	})

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := store.Load(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		id := NewID()
		require.NoError(t, store.Save(ctx, id, "first"))
		require.NoError(t, store.Save(ctx, id, "second"))

		got, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		err := store.Delete(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("ListSorted", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Save(ctx, "b", "x"))
		require.NoError(t, s.Save(ctx, "a", "x"))
		require.NoError(t, s.Save(ctx, "c", "x"))

		ids, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, ids)
	})
}
