// Copyright 2025 go-specfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bessel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-specfunc/sf"
)

func observeWarnings(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	sf.SetLogger(zap.New(core))
	t.Cleanup(func() { sf.SetLogger(nil) })
	return logs
}

func TestValueFunctions(t *testing.T) {
	logs := observeWarnings(t)

	assert.Equal(t, math.Sin(2.0)/2.0, J0Value(2))
	assert.InEpsilon(t, 0.3011686789397568, J1Value(1), 1e-14)
	assert.InEpsilon(t, 0.29863749707573356, J2Value(3), 1e-14)
	assert.InEpsilon(t, 0.06460515449256427, JlValue(10, 10), 1e-12)
	assert.Equal(t, 0, logs.Len())
}

func TestValueFunctionsWarn(t *testing.T) {
	logs := observeWarnings(t)

	assert.Zero(t, JlValue(-2, 1))
	assert.Zero(t, J1Value(1e-310))
	assert.Zero(t, JlValue(200, 1e-3))

	entries := logs.TakeAll()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "bessel.Jl", first["func"])
	assert.Equal(t, sf.Domain.String(), first["status"])
	assert.Equal(t, int64(-2), first["l"])

	assert.Equal(t, "bessel.J1", entries[1].ContextMap()["func"])
	assert.Equal(t, sf.Underflow.String(), entries[2].ContextMap()["status"])
}
