// Package cancel provides the process-wide stop flag shared between signal
// delivery and the interactive loop.
package cancel

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// Flag starts out running and can be stopped exactly once. It cannot be
// restarted; create a new Flag instead.
type Flag struct {
	stopped   atomic.Bool
	installed atomic.Bool
}

// New returns a running Flag.
func New() *Flag { return &Flag{} }

// Running reports whether Stop has not yet been called.
func (f *Flag) Running() bool { return !f.stopped.Load() }

// Stop flips the flag to stopped. It reports whether this call made the
// transition.
func (f *Flag) Stop() bool { return f.stopped.CompareAndSwap(false, true) }

// SignalSetupError reports a failure to register the interrupt handler.
type SignalSetupError struct {
	Reason string
}

func (e *SignalSetupError) Error() string { return "signal setup: " + e.Reason }

// notify and stopNotify are swapped in tests.
var (
	notify     = signal.Notify
	stopNotify = signal.Stop
)

// Install routes SIGINT and SIGTERM to f.Stop. The delivery goroutine does
// nothing else. The returned func unregisters the handler; it is safe to call
// more than once.
func Install(f *Flag) (func(), error) {
	if f == nil {
		return nil, &SignalSetupError{Reason: "nil flag"}
	}
	if !f.installed.CompareAndSwap(false, true) {
		return nil, &SignalSetupError{Reason: "handler already installed"}
	}
	ch := make(chan os.Signal, 1)
	notify(ch, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				f.Stop()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			stopNotify(ch)
			close(done)
		})
	}, nil
}
