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
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

// envVarPattern matches ${VAR} or ${VAR:default}
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// LoadDotEnv best-effort loads a .env file into the process environment.
// A missing file is not an error: most deployments set env vars directly
// and never ship a .env.
func LoadDotEnv(path string) {
	if path == "" {
		path = ".env"
	}
	_ = godotenv.Load(path)
}

// SubstituteEnvVars replaces ${VAR} or ${VAR:default} with environment variable values
func SubstituteEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		defaultValue := ""
		if len(parts) > 2 {
			defaultValue = parts[2]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}

// SubstituteEnvVarsInConfig recursively substitutes environment variables in config
func SubstituteEnvVarsInConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Storage != nil {
		cfg.Storage.Backend = SubstituteEnvVars(cfg.Storage.Backend)
		cfg.Storage.FilePath = SubstituteEnvVars(cfg.Storage.FilePath)
		if cfg.Storage.Postgres != nil {
			cfg.Storage.Postgres.Host = SubstituteEnvVars(cfg.Storage.Postgres.Host)
			cfg.Storage.Postgres.User = SubstituteEnvVars(cfg.Storage.Postgres.User)
			cfg.Storage.Postgres.Password = SubstituteEnvVars(cfg.Storage.Postgres.Password)
			cfg.Storage.Postgres.Database = SubstituteEnvVars(cfg.Storage.Postgres.Database)
			cfg.Storage.Postgres.SSLMode = SubstituteEnvVars(cfg.Storage.Postgres.SSLMode)
		}
	}

	if cfg.Logging != nil {
		cfg.Logging.Level = SubstituteEnvVars(cfg.Logging.Level)
		cfg.Logging.Format = SubstituteEnvVars(cfg.Logging.Format)
		cfg.Logging.Output = SubstituteEnvVars(cfg.Logging.Output)
	}

	if cfg.Metrics != nil {
		cfg.Metrics.Address = SubstituteEnvVars(cfg.Metrics.Address)
		cfg.Metrics.Path = SubstituteEnvVars(cfg.Metrics.Path)
	}
}

// GetEnvironment returns the current environment from KEYVAULT_ENV or defaults to development
func GetEnvironment() string {
	env := os.Getenv("KEYVAULT_ENV")
	if env == "" {
		env = os.Getenv("ENVIRONMENT")
	}
	if env == "" {
		env = "development"
	}
	return strings.ToLower(env)
}

// IsProduction returns true if running in production environment
func IsProduction() bool {
	return GetEnvironment() == "production"
}

// IsDevelopment returns true if running in development or local environment
func IsDevelopment() bool {
	env := GetEnvironment()
	return env == "development" || env == "local"
}
