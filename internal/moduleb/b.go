// Package moduleb holds a shared handle to a modulea.A and delegates to it.
package moduleb

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"moderncmake/internal/logging"
	"moderncmake/internal/modulea"
)

// DelegationMessage is written by CallFoo before it hands off to A.
const DelegationMessage = "[ModernCMake::B]: Call ModernCMake::A"

// ErrClosed is returned by CallFoo once the handle to A has been released.
var ErrClosed = errors.New("moduleb: handle to A released")

// B owns a handle to one A for its whole lifetime.
type B struct {
	a      *modulea.A
	out    io.Writer
	logger *zap.Logger
}

// Option configures a B.
type Option func(*B)

// WithOutput sets the writer for B's line and the owned A's lines.
func WithOutput(w io.Writer) Option {
	return func(b *B) {
		if w != nil {
			b.out = w
		}
	}
}

// WithLogger sets the logger. The owned A gets the same base logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *B) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a B together with the A it owns.
func New(opts ...Option) *B {
	b := &B{
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.a = modulea.New(modulea.WithOutput(b.out), modulea.WithLogger(b.logger))
	b.logger = logging.For(b.logger, logging.CategoryModuleB)
	return b
}

// CallFoo prints the delegation line and runs A's Foo.
func (b *B) CallFoo() error {
	if b.a == nil {
		return ErrClosed
	}
	fmt.Fprintln(b.out, DelegationMessage)
	b.logger.Debug("Delegating to A")
	b.a.Foo()
	return nil
}

// A returns the shared handle, or nil after Close.
func (b *B) A() *modulea.A {
	return b.a
}

// Close releases the handle to A. Safe to call more than once.
func (b *B) Close() error {
	if b.a != nil {
		b.logger.Debug("Releasing A", zap.Int("value", b.a.Value()))
	}
	b.a = nil
	return nil
}
