// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	assert.Equal(t, "development", cfg.Environment)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.FilePath)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, ":9090", cfg.Metrics.Address)
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestSetDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		Environment: "production",
		Storage:     &StorageConfig{Backend: "postgres"},
		Logging:     &LoggingConfig{Level: "debug"},
	}
	setDefaults(cfg)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format) // untouched field still defaulted
}

func TestLoadFromFile_YAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	original := &Config{
		Environment: "staging",
		Storage: &StorageConfig{
			Backend:  "file",
			FilePath: "/var/lib/keyvault",
		},
		Metrics: &MetricsConfig{Enabled: true, Address: ":9100", Path: "/metrics"},
		Logging: &LoggingConfig{Level: "warn", Format: "json", Output: "stdout"},
	}

	require.NoError(t, SaveToFile(original, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, original.Environment, loaded.Environment)
	assert.Equal(t, original.Storage.Backend, loaded.Storage.Backend)
	assert.Equal(t, original.Storage.FilePath, loaded.Storage.FilePath)
	assert.Equal(t, original.Metrics.Address, loaded.Metrics.Address)
	assert.Equal(t, original.Logging.Level, loaded.Logging.Level)
}

func TestLoadFromFile_JSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	original := &Config{
		Environment: "production",
		Storage:     &StorageConfig{Backend: "memory"},
	}

	require.NoError(t, SaveToFile(original, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "production", loaded.Environment)
	assert.Equal(t, "memory", loaded.Storage.Backend)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}
