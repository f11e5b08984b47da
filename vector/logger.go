// SPDX-License-Identifier: MIT

package vector

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger     = zap.NewNop()
	packageLogger atomic.Pointer[zap.Logger]
)

// Logger returns the logger used by vectors built without WithLogger.
// It is a no-op logger until SetLogger installs another one.
func Logger() *zap.Logger {
	if l := packageLogger.Load(); l != nil {
		return l
	}

	return nopLogger
}

// SetLogger replaces the package logger. A nil l restores the no-op logger.
// Safe for concurrent use; vectors pick up the change on their next event.
func SetLogger(l *zap.Logger) {
	packageLogger.Store(l)
}
