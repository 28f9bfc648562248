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

package sf

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var warnLogger atomic.Pointer[zap.Logger]

func init() {
	warnLogger.Store(zap.NewNop())
}

// SetLogger installs the logger used by Warn. A nil logger restores the
// default no-op logger. It is safe to call concurrently with Warn.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	warnLogger.Store(l)
}

// Logger returns the logger currently used by Warn.
func Logger() *zap.Logger {
	return warnLogger.Load()
}

// Warn records a non-success status from a value-only entry point. Success is
// ignored.
func Warn(fn string, s Status, fields ...zap.Field) {
	if s == Success {
		return
	}
	fs := make([]zap.Field, 0, len(fields)+2)
	fs = append(fs, zap.String("func", fn), zap.Stringer("status", s))
	fs = append(fs, fields...)
	warnLogger.Load().Warn("special function returned non-success status", fs...)
}
