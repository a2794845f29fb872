// Package repl holds the state of an interactive lambda calculus session: the
// global bindings, the step limit and the reduction strategy. It executes
// already parsed commands; reading and printing are left to the caller.
package repl

import (
	"fmt"
	"log/slog"

	"github.com/smasher164/lamb/lambda"
)

// Session is the state of one interactive session. It is not safe for
// concurrent use.
type Session[T comparable] struct {
	binds    lambda.Bindings[T]
	limit    int
	strategy lambda.Strategy[T]
	fresh    func(T) T
	logger   *slog.Logger
}

// New returns a session with no bindings, the default step limit and
// normal order reduction, adjusted by opts.
func New[T comparable](opts ...Option[T]) *Session[T] {
	s := &Session[T]{
		binds:    make(lambda.Bindings[T]),
		limit:    lambda.DefaultLimit,
		strategy: lambda.Normal[T]{},
		logger:   slog.Default().With(slog.String("component", "repl")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Limit returns the current step limit.
func (s *Session[T]) Limit() int { return s.limit }

func (s *Session[T]) SetLimit(limit int) {
	s.limit = limit
	s.logger.Debug("reduction limit set", slog.Int("limit", limit))
}

// Names returns the names bound in the session, in no particular order.
func (s *Session[T]) Names() []T {
	return s.binds.Names()
}

// Lookup returns the definition bound to name in classic form.
func (s *Session[T]) Lookup(name T) (lambda.Term[T], bool, error) {
	def, ok := s.binds[name]
	if !ok {
		return nil, false, nil
	}
	t, err := s.classic(def)
	return t, true, err
}

// Reduce rewrites the session's bindings into t and reduces it up to the step
// limit. limitReached reports that the whole limit was used.
func (s *Session[T]) Reduce(t lambda.Term[T]) (r lambda.ReducedTerm[T], limitReached bool, err error) {
	ln := lambda.ToLocallyNameless(t)
	lambda.Rebind(&ln, s.binds)
	n := lambda.ReduceLimit(&ln, s.strategy, s.limit)
	c, err := s.classic(ln)
	if err != nil {
		return r, false, fmt.Errorf("reducing %v: %w", t, err)
	}
	r = lambda.ReducedTerm[T]{Count: n, Term: c}
	s.logger.Debug("term reduced", slog.Int("steps", n), slog.String("term", c.String()))
	if n >= s.limit {
		s.logger.Warn("reduction limit reached", slog.Int("limit", s.limit))
		return r, true, nil
	}
	return r, false, nil
}

// Bind rewrites the session's bindings into t and binds the result to name.
// Later references to name are replaced by this definition; definitions that
// already refer to name keep the previous one.
func (s *Session[T]) Bind(name T, t lambda.Term[T]) (overwritten bool) {
	ln := lambda.ToLocallyNameless(t)
	lambda.Rebind(&ln, s.binds)
	_, overwritten = s.binds[name]
	s.binds[name] = ln
	if overwritten {
		s.logger.Warn("binding overwritten", slog.Any("name", name))
	} else {
		s.logger.Debug("binding added", slog.Any("name", name))
	}
	return overwritten
}

// Exec executes cmd and returns its outcomes in order.
func (s *Session[T]) Exec(cmd Command[T]) ([]Outcome[T], error) {
	switch cmd.Kind {
	case Reduce:
		r, limitReached, err := s.Reduce(cmd.Term)
		if err != nil {
			return nil, err
		}
		outcomes := []Outcome[T]{{Kind: TermReduced, Reduced: r}}
		if limitReached {
			outcomes = append(outcomes, Outcome[T]{Kind: LimitReached, Limit: s.limit})
		}
		return outcomes, nil
	case Exec:
		outcomes := make([]Outcome[T], 0, len(cmd.Statements))
		for _, st := range cmd.Statements {
			kind := BindAdded
			if s.Bind(st.Name, st.Term) {
				kind = BindOverwritten
			}
			outcomes = append(outcomes, Outcome[T]{Kind: kind, Name: st.Name})
		}
		return outcomes, nil
	case GetLimit:
		return []Outcome[T]{{Kind: LimitGot, Limit: s.limit}}, nil
	case SetLimit:
		s.SetLimit(cmd.Limit)
		return []Outcome[T]{{Kind: LimitSet, Limit: cmd.Limit}}, nil
	case Exit:
		return []Outcome[T]{{Kind: Exited}}, nil
	}
	return nil, fmt.Errorf("unknown command kind %d", cmd.Kind)
}

func (s *Session[T]) classic(t lambda.Term[lambda.Ref[T]]) (lambda.Term[T], error) {
	if s.fresh != nil {
		return lambda.ToClassicFresh(t, s.fresh)
	}
	return lambda.ToClassic(t)
}
