// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoaderOptions configures the configuration loader
type LoaderOptions struct {
	// ConfigDir is the directory containing config files (default: ./config)
	ConfigDir string
	// Environment overrides automatic environment detection
	Environment string
	// SkipEnvSubstitution disables environment variable substitution
	SkipEnvSubstitution bool
	// SkipValidation disables configuration validation
	SkipValidation bool
}

// DefaultLoaderOptions returns default loader options
func DefaultLoaderOptions() LoaderOptions {
	return LoaderOptions{
		ConfigDir:           "config",
		Environment:         "",
		SkipEnvSubstitution: false,
		SkipValidation:      false,
	}
}

// Load loads configuration with automatic environment detection. It falls
// back through <env>.yaml, default.yaml, config.yaml, and finally an
// all-defaults Config, so a vault-backed service never fails to start for
// lack of a config file.
func Load(opts ...LoaderOptions) (*Config, error) {
	options := DefaultLoaderOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	env := options.Environment
	if env == "" {
		env = GetEnvironment()
	}

	envConfigPath := filepath.Join(options.ConfigDir, fmt.Sprintf("%s.yaml", env))
	cfg, err := loadConfigFile(envConfigPath)
	if err != nil {
		defaultConfigPath := filepath.Join(options.ConfigDir, "default.yaml")
		cfg, err = loadConfigFile(defaultConfigPath)
		if err != nil {
			configPath := filepath.Join(options.ConfigDir, "config.yaml")
			cfg, err = loadConfigFile(configPath)
			if err != nil {
				cfg = &Config{}
			}
		}
	}

	if cfg.Environment == "" {
		cfg.Environment = env
	}

	setDefaults(cfg)

	if !options.SkipEnvSubstitution {
		SubstituteEnvVarsInConfig(cfg)
	}

	applyEnvironmentOverrides(cfg)

	if !options.SkipValidation {
		issues := ValidateConfiguration(cfg)
		for _, issue := range issues {
			if issue.Level == "error" {
				return nil, fmt.Errorf("configuration validation failed: %s", issue)
			}
		}
	}

	return cfg, nil
}

// loadConfigFile loads a single config file
func loadConfigFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return LoadFromFile(path)
}

// applyEnvironmentOverrides overrides config with environment variables,
// which take priority over both file values and ${VAR} substitution.
func applyEnvironmentOverrides(cfg *Config) {
	if backend := os.Getenv("KEYVAULT_STORAGE_BACKEND"); backend != "" && cfg.Storage != nil {
		cfg.Storage.Backend = backend
	}
	if path := os.Getenv("KEYVAULT_STORAGE_PATH"); path != "" && cfg.Storage != nil {
		cfg.Storage.FilePath = path
	}
	if cfg.Storage != nil && cfg.Storage.Backend == "postgres" {
		if cfg.Storage.Postgres == nil {
			cfg.Storage.Postgres = &PostgresConfig{}
		}
		if host := os.Getenv("KEYVAULT_POSTGRES_HOST"); host != "" {
			cfg.Storage.Postgres.Host = host
		}
		if user := os.Getenv("KEYVAULT_POSTGRES_USER"); user != "" {
			cfg.Storage.Postgres.User = user
		}
		if password := os.Getenv("KEYVAULT_POSTGRES_PASSWORD"); password != "" {
			cfg.Storage.Postgres.Password = password
		}
		if db := os.Getenv("KEYVAULT_POSTGRES_DATABASE"); db != "" {
			cfg.Storage.Postgres.Database = db
		}
	}

	if logLevel := os.Getenv("KEYVAULT_LOG_LEVEL"); logLevel != "" && cfg.Logging != nil {
		cfg.Logging.Level = logLevel
	}
	if logFormat := os.Getenv("KEYVAULT_LOG_FORMAT"); logFormat != "" && cfg.Logging != nil {
		cfg.Logging.Format = logFormat
	}

	if os.Getenv("KEYVAULT_METRICS_ENABLED") == "true" && cfg.Metrics != nil {
		cfg.Metrics.Enabled = true
	}
	if os.Getenv("KEYVAULT_METRICS_ENABLED") == "false" && cfg.Metrics != nil {
		cfg.Metrics.Enabled = false
	}
	if addr := os.Getenv("KEYVAULT_METRICS_ADDRESS"); addr != "" && cfg.Metrics != nil {
		cfg.Metrics.Address = addr
	}
}

// LoadForEnvironment loads configuration for a specific environment
func LoadForEnvironment(environment string) (*Config, error) {
	return Load(LoaderOptions{
		ConfigDir:   "config",
		Environment: environment,
	})
}

// MustLoad loads configuration or panics on error
func MustLoad(opts ...LoaderOptions) *Config {
	cfg, err := Load(opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}
	return cfg
}
