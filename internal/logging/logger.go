// Package logging holds the process-wide logger shared by the omega packages.
//
// The library never configures logging on its own: until Set is called every
// diagnostic goes to a no-op logger.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the current logger. It is never nil.
func L() *zap.Logger {
	return current.Load()
}

// Set replaces the current logger. A nil logger restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// Named returns a child of the current logger scoped to a component.
func Named(component string) *zap.Logger {
	return L().Named(component)
}
