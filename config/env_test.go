// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars_UsesEnvValueWhenSet(t *testing.T) {
	t.Setenv("KV_TEST_HOST", "db.internal")
	assert.Equal(t, "db.internal", SubstituteEnvVars("${KV_TEST_HOST}"))
}

func TestSubstituteEnvVars_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "localhost", SubstituteEnvVars("${KV_TEST_UNSET:localhost}"))
}

func TestSubstituteEnvVars_EmptyWithoutDefault(t *testing.T) {
	assert.Equal(t, "", SubstituteEnvVars("${KV_TEST_UNSET_NODEFAULT}"))
}

func TestSubstituteEnvVarsInConfig_RewritesStorageAndLogging(t *testing.T) {
	t.Setenv("KV_TEST_DB_HOST", "postgres.internal")

	cfg := &Config{
		Storage: &StorageConfig{
			Backend: "postgres",
			Postgres: &PostgresConfig{
				Host: "${KV_TEST_DB_HOST}",
			},
		},
		Logging: &LoggingConfig{Level: "${KV_TEST_UNSET:info}"},
	}

	SubstituteEnvVarsInConfig(cfg)

	assert.Equal(t, "postgres.internal", cfg.Storage.Postgres.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSubstituteEnvVarsInConfig_NilConfigIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		SubstituteEnvVarsInConfig(nil)
	})
}

func TestGetEnvironment_DefaultsToDevelopment(t *testing.T) {
	assert.Equal(t, "development", GetEnvironment())
}

func TestGetEnvironment_ReadsKeyvaultEnv(t *testing.T) {
	t.Setenv("KEYVAULT_ENV", "Production")
	assert.Equal(t, "production", GetEnvironment())
	assert.True(t, IsProduction())
	assert.False(t, IsDevelopment())
}

func TestIsDevelopment_TreatsLocalAsDevelopment(t *testing.T) {
	t.Setenv("KEYVAULT_ENV", "local")
	assert.True(t, IsDevelopment())
}
