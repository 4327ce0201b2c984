// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBaseConfig() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func TestValidateConfiguration_DefaultsAreValid(t *testing.T) {
	issues := ValidateConfiguration(validBaseConfig())
	for _, issue := range issues {
		assert.NotEqual(t, "error", issue.Level, issue.String())
	}
}

func TestValidateConfiguration_UnknownBackendIsError(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Storage.Backend = "carrier-pigeon"

	issues := ValidateConfiguration(cfg)
	assert.Condition(t, func() bool {
		for _, i := range issues {
			if i.Field == "storage.backend" && i.Level == "error" {
				return true
			}
		}
		return false
	})
}

func TestValidateConfiguration_PostgresRequiresHostAndDatabase(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Storage.Backend = "postgres"
	cfg.Storage.Postgres = &PostgresConfig{}

	issues := ValidateConfiguration(cfg)
	var fields []string
	for _, i := range issues {
		fields = append(fields, i.Field)
	}
	assert.Contains(t, fields, "storage.postgres.host")
	assert.Contains(t, fields, "storage.postgres.database")
}

func TestValidateConfiguration_MetricsEnabledRequiresAddress(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Address = ""

	issues := ValidateConfiguration(cfg)
	found := false
	for _, i := range issues {
		if i.Field == "metrics.address" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateConfiguration_NilConfigIsError(t *testing.T) {
	issues := ValidateConfiguration(nil)
	assert.Len(t, issues, 1)
	assert.Equal(t, "error", issues[0].Level)
}
