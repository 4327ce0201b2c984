// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FallsBackToDefaultsWithoutAnyFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(LoaderOptions{ConfigDir: dir, Environment: "test"})
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "memory", cfg.Storage.Backend)
}

func TestLoad_PrefersEnvironmentSpecificFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveToFile(&Config{
		Environment: "test",
		Storage:     &StorageConfig{Backend: "file", FilePath: "/data/test"},
	}, filepath.Join(dir, "test.yaml")))
	require.NoError(t, SaveToFile(&Config{
		Environment: "test",
		Storage:     &StorageConfig{Backend: "postgres"},
	}, filepath.Join(dir, "default.yaml")))

	cfg, err := Load(LoaderOptions{ConfigDir: dir, Environment: "test"})
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "/data/test", cfg.Storage.FilePath)
}

func TestLoad_FallsBackToDefaultYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveToFile(&Config{
		Storage: &StorageConfig{Backend: "postgres"},
	}, filepath.Join(dir, "default.yaml")))

	cfg, err := Load(LoaderOptions{ConfigDir: dir, Environment: "test"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Storage.Backend)
}

func TestLoad_EnvironmentOverrideWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveToFile(&Config{
		Storage: &StorageConfig{Backend: "memory"},
	}, filepath.Join(dir, "test.yaml")))

	t.Setenv("KEYVAULT_STORAGE_BACKEND", "file")
	t.Setenv("KEYVAULT_STORAGE_PATH", "/override/path")

	cfg, err := Load(LoaderOptions{ConfigDir: dir, Environment: "test"})
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "/override/path", cfg.Storage.FilePath)
}

func TestLoad_InvalidBackendFailsValidation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveToFile(&Config{
		Storage: &StorageConfig{Backend: "carrier-pigeon"},
	}, filepath.Join(dir, "test.yaml")))

	_, err := Load(LoaderOptions{ConfigDir: dir, Environment: "test"})
	assert.Error(t, err)
}

func TestLoad_SkipValidationAllowsInvalidBackend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveToFile(&Config{
		Storage: &StorageConfig{Backend: "carrier-pigeon"},
	}, filepath.Join(dir, "test.yaml")))

	cfg, err := Load(LoaderOptions{ConfigDir: dir, Environment: "test", SkipValidation: true})
	require.NoError(t, err)
	assert.Equal(t, "carrier-pigeon", cfg.Storage.Backend)
}

func TestMustLoad_PanicsOnValidationFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveToFile(&Config{
		Storage: &StorageConfig{Backend: "carrier-pigeon"},
	}, filepath.Join(dir, "test.yaml")))

	assert.Panics(t, func() {
		MustLoad(LoaderOptions{ConfigDir: dir, Environment: "test"})
	})
}

func TestLoadForEnvironment(t *testing.T) {
	// LoadForEnvironment always reads from "config", which may not exist in
	// the test working directory; it must still fall back to defaults.
	cfg, err := LoadForEnvironment("production")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
}
