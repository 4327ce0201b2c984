// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCollector_RecordsAndSnapshots(t *testing.T) {
	mc := NewMetricsCollector()

	mc.RecordSign(5 * time.Millisecond)
	mc.RecordSign(10 * time.Millisecond)
	mc.RecordGetMnemonic(true)
	mc.RecordGetKeyPair(false)
	mc.RecordChangePassword(true, 20*time.Millisecond)

	snap := mc.GetSnapshot()
	assert.Equal(t, int64(2), snap.SignCount)
	assert.Equal(t, int64(1), snap.GetMnemonicCount)
	assert.Equal(t, int64(1), snap.GetKeyPairCount)
	assert.Equal(t, int64(1), snap.ChangePasswordCount)
	assert.Equal(t, int64(1), snap.DecryptFailures)
	assert.Greater(t, snap.AvgSignTime, 0.0)
}

func TestMetricsCollector_Reset(t *testing.T) {
	mc := NewMetricsCollector()
	mc.RecordSign(time.Millisecond)
	mc.Reset()

	snap := mc.GetSnapshot()
	assert.Equal(t, int64(0), snap.SignCount)
}

func TestObserveOperation_RecordsOutcome(t *testing.T) {
	ObserveOperation("sign", nil, 0.001)
	ObserveOperation("sign", errors.New("boom"), 0.002)

	ok, err := VaultOperations.GetMetricWithLabelValues("sign", "ok")
	assert.NoError(t, err)
	assert.NotNil(t, ok)
}
