// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VaultOperations tracks vault operation invocations by kind and outcome.
	VaultOperations = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "operations_total",
			Help:      "Total number of vault operations",
		},
		[]string{"operation", "outcome"}, // new/sign/get_mnemonic/get_key_pair/change_password, ok/error
	)

	// VaultDecryptFailures tracks decryptions that failed, which covers both
	// a wrong password and a corrupted record (spec.md §7 intentionally does
	// not distinguish the two).
	VaultDecryptFailures = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "decrypt_failures_total",
			Help:      "Total number of failed vault decryption attempts",
		},
	)

	// VaultOperationDuration tracks how long each password-guarded operation
	// takes, dominated by the PBKDF2 cost (spec.md §4.1).
	VaultOperationDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "vault",
			Name:      "operation_duration_seconds",
			Help:      "Vault operation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
		},
		[]string{"operation"},
	)
)

// ObserveOperation records a single vault operation's outcome and duration
// in one call, for call sites that wrap a vault method.
func ObserveOperation(operation string, err error, seconds float64) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	VaultOperations.WithLabelValues(operation, outcome).Inc()
	VaultOperationDuration.WithLabelValues(operation).Observe(seconds)
}
