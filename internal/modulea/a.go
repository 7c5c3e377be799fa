// Package modulea owns a counter and bumps it from a short-lived worker goroutine.
// Foo spawns the worker and joins it before returning, so callers observe a
// plain synchronous call.
package modulea

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moderncmake/internal/logging"
)

// Increments is the number of times the worker bumps the counter per Foo call.
const Increments = 10

// LaunchMessage is written each time Foo starts the worker.
const LaunchMessage = "Launch process..."

// A owns a counter mutated only by its worker goroutine.
// A is not safe for concurrent use; Foo must not be called from two goroutines at once.
type A struct {
	value  int
	out    io.Writer
	logger *zap.Logger
}

// Option configures an A.
type Option func(*A)

// WithOutput sets where the launch and value lines are written (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(a *A) {
		if w != nil {
			a.out = w
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *A) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an A with the counter at zero.
func New(opts ...Option) *A {
	a := &A{
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logging.For(a.logger, logging.CategoryModuleA)
	return a
}

// Foo starts the worker and blocks until it finishes.
// The counter is not reset, so every call adds another Increments.
func (a *A) Foo() {
	launchID := uuid.NewString()
	a.logger.Debug("Launching worker", zap.String("launch_id", launchID), zap.Int("value", a.value))
	fmt.Fprintln(a.out, LaunchMessage)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.bar()
	}()
	wg.Wait()

	a.logger.Debug("Worker joined", zap.String("launch_id", launchID), zap.Int("value", a.value))
}

// bar runs on the worker goroutine.
func (a *A) bar() {
	for i := 0; i < Increments; i++ {
		a.value++
	}
	fmt.Fprintf(a.out, "Value: %d\n", a.value)
}

// Value returns the counter. Only meaningful between Foo calls.
func (a *A) Value() int {
	return a.value
}
