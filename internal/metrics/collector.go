// SAGE - Secure Agent Guarantee Engine
// Copyright (C) 2025 SAGE-X-project
//
// This file is part of SAGE.
//
// SAGE is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SAGE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with SAGE. If not, see <https://www.gnu.org/licenses/>.

package metrics

import (
	"sync"
	"time"
)

// MetricsCollector accumulates in-process vault metrics for callers that
// want a cheap snapshot without scraping Prometheus (e.g. a CLI printing a
// summary on exit). The Prometheus metrics in vault.go are the source of
// truth for anything exported; this is a convenience mirror.
type MetricsCollector struct {
	mu sync.RWMutex

	SignCount           int64
	GetMnemonicCount     int64
	GetKeyPairCount      int64
	ChangePasswordCount  int64
	DecryptFailures      int64

	SignTimes           []int64
	ChangePasswordTimes []int64

	startTime time.Time

	maxTimingSamples int
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		startTime:        time.Now(),
		maxTimingSamples: 1000,
	}
}

// RecordSign records a Sign operation.
func (mc *MetricsCollector) RecordSign(duration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.SignCount++
	mc.recordTiming(&mc.SignTimes, duration)
}

// RecordGetMnemonic records a GetMnemonic operation.
func (mc *MetricsCollector) RecordGetMnemonic(success bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.GetMnemonicCount++
	if !success {
		mc.DecryptFailures++
	}
}

// RecordGetKeyPair records a GetKeyPair operation.
func (mc *MetricsCollector) RecordGetKeyPair(success bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.GetKeyPairCount++
	if !success {
		mc.DecryptFailures++
	}
}

// RecordChangePassword records a ChangePassword operation.
func (mc *MetricsCollector) RecordChangePassword(success bool, duration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.ChangePasswordCount++
	if !success {
		mc.DecryptFailures++
	}
	mc.recordTiming(&mc.ChangePasswordTimes, duration)
}

func (mc *MetricsCollector) recordTiming(timings *[]int64, duration time.Duration) {
	microseconds := duration.Microseconds()
	*timings = append(*timings, microseconds)

	if len(*timings) > mc.maxTimingSamples {
		*timings = (*timings)[len(*timings)-mc.maxTimingSamples:]
	}
}

// GetSnapshot returns a point-in-time snapshot of the collected metrics.
func (mc *MetricsCollector) GetSnapshot() *MetricsSnapshot {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	return &MetricsSnapshot{
		Timestamp:              time.Now(),
		Uptime:                 time.Since(mc.startTime),
		SignCount:              mc.SignCount,
		GetMnemonicCount:       mc.GetMnemonicCount,
		GetKeyPairCount:        mc.GetKeyPairCount,
		ChangePasswordCount:    mc.ChangePasswordCount,
		DecryptFailures:        mc.DecryptFailures,
		AvgSignTime:            calculateAverage(mc.SignTimes),
		AvgChangePasswordTime:  calculateAverage(mc.ChangePasswordTimes),
		P95SignTime:            calculatePercentile(mc.SignTimes, 95),
		P95ChangePasswordTime:  calculatePercentile(mc.ChangePasswordTimes, 95),
	}
}

// Reset clears all collected metrics.
func (mc *MetricsCollector) Reset() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.SignCount = 0
	mc.GetMnemonicCount = 0
	mc.GetKeyPairCount = 0
	mc.ChangePasswordCount = 0
	mc.DecryptFailures = 0

	mc.SignTimes = nil
	mc.ChangePasswordTimes = nil

	mc.startTime = time.Now()
}

// MetricsSnapshot is a point-in-time view of MetricsCollector.
type MetricsSnapshot struct {
	Timestamp time.Time
	Uptime    time.Duration

	SignCount           int64
	GetMnemonicCount    int64
	GetKeyPairCount     int64
	ChangePasswordCount int64
	DecryptFailures     int64

	AvgSignTime           float64
	AvgChangePasswordTime float64

	P95SignTime           int64
	P95ChangePasswordTime int64
}

func calculateAverage(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum int64
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func calculatePercentile(values []int64, percentile int) int64 {
	if len(values) == 0 {
		return 0
	}

	index := len(values) * percentile / 100
	if index >= len(values) {
		index = len(values) - 1
	}

	sorted := make([]int64, len(values))
	copy(sorted, values)

	for i := 0; i < len(sorted)-1; i++ {
		for j := 0; j < len(sorted)-i-1; j++ {
			if sorted[j] > sorted[j+1] {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}

	return sorted[index]
}

// globalCollector is the package-level collector callers reach for when
// they don't want to thread a *MetricsCollector through.
var globalCollector = NewMetricsCollector()

// GetGlobalCollector returns the global metrics collector.
func GetGlobalCollector() *MetricsCollector {
	return globalCollector
}
