package repl

import (
	"log/slog"

	"github.com/smasher164/lamb/lambda"
)

// Option configures a Session created by New.
type Option[T comparable] func(*Session[T])

// WithLimit sets the initial step limit.
func WithLimit[T comparable](limit int) Option[T] {
	return func(s *Session[T]) { s.limit = limit }
}

// WithStrategy replaces normal order reduction.
func WithStrategy[T comparable](strategy lambda.Strategy[T]) Option[T] {
	return func(s *Session[T]) { s.strategy = strategy }
}

// WithLogger sets the logger receiving binding and reduction records.
func WithLogger[T comparable](logger *slog.Logger) Option[T] {
	return func(s *Session[T]) { s.logger = logger }
}

// WithBindings seeds the session with definitions, such as the prelude.
func WithBindings[T comparable](binds lambda.Bindings[T]) Option[T] {
	return func(s *Session[T]) {
		for name, def := range binds {
			s.binds[name] = lambda.Clone(def)
		}
	}
}

// WithFresh renames binders that would capture a reference in reduced terms,
// see lambda.ToClassicFresh.
func WithFresh[T comparable](fresh func(T) T) Option[T] {
	return func(s *Session[T]) { s.fresh = fresh }
}
