// Package lambda implements the untyped lambda calculus: terms generic over
// their identifier type, a locally nameless encoding, capture-avoiding
// substitution and β-reduction under pluggable strategies.
package lambda

import (
	"fmt"

	"github.com/samber/lo"
)

// Term is a lambda calculus expression: a *Var, an *Abs or an *App.
//
// A term is a strict tree. No node is shared between two parents, so a
// subtree may be rewritten in place once it is owned by the caller.
type Term[T comparable] interface {
	isTerm(T)
	String() string
}

// Var is a reference to an identifier, free or bound depending on context.
type Var[T comparable] struct {
	Name T
}

// Abs is a single-parameter function literal.
type Abs[T comparable] struct {
	Param T
	Body  Term[T]
}

// App applies Fn to Arg.
type App[T comparable] struct {
	Fn  Term[T]
	Arg Term[T]
}

func (*Var[T]) isTerm(T) {}
func (*Abs[T]) isTerm(T) {}
func (*App[T]) isTerm(T) {}

// NewVar returns a reference to name.
func NewVar[T comparable](name T) Term[T] {
	return &Var[T]{Name: name}
}

// NewAbs returns the abstraction λparam. body.
func NewAbs[T comparable](param T, body Term[T]) Term[T] {
	return &Abs[T]{Param: param, Body: body}
}

// NewApp returns the application fn arg.
func NewApp[T comparable](fn, arg Term[T]) Term[T] {
	return &App[T]{Fn: fn, Arg: arg}
}

// Lambda builds the curried abstraction λp0. λp1. ... body.
func Lambda[T comparable](params []T, body Term[T]) Term[T] {
	for i := len(params) - 1; i >= 0; i-- {
		body = NewAbs(params[i], body)
	}
	return body
}

// Apply builds the left-associative application fn a0 a1 ... an.
func Apply[T comparable](fn Term[T], args ...Term[T]) Term[T] {
	return lo.Reduce(args, func(acc Term[T], arg Term[T], _ int) Term[T] {
		return NewApp(acc, arg)
	}, fn)
}

func (v *Var[T]) String() string {
	return fmt.Sprint(v.Name)
}

func (a *Abs[T]) String() string {
	return "λ" + fmt.Sprint(a.Param) + ". " + a.Body.String()
}

// String juxtaposes both sides. The function side is parenthesised only when
// it is an abstraction, the argument side when it is an abstraction or an
// application, which is enough for a left-associative parser to read it back.
func (a *App[T]) String() string {
	fn, arg := a.Fn.String(), a.Arg.String()
	if _, ok := a.Fn.(*Abs[T]); ok {
		fn = "(" + fn + ")"
	}
	switch a.Arg.(type) {
	case *Abs[T], *App[T]:
		arg = "(" + arg + ")"
	}
	return fn + " " + arg
}

// Equal reports whether a and b are structurally identical, binder names
// included.
func Equal[T comparable](a, b Term[T]) bool {
	switch a := a.(type) {
	case *Var[T]:
		b, ok := b.(*Var[T])
		return ok && a.Name == b.Name
	case *Abs[T]:
		b, ok := b.(*Abs[T])
		return ok && a.Param == b.Param && Equal(a.Body, b.Body)
	case *App[T]:
		b, ok := b.(*App[T])
		return ok && Equal(a.Fn, b.Fn) && Equal(a.Arg, b.Arg)
	}
	panic("unreachable")
}

// Clone returns a deep copy of t sharing no nodes with it.
func Clone[T comparable](t Term[T]) Term[T] {
	switch t := t.(type) {
	case *Var[T]:
		return NewVar(t.Name)
	case *Abs[T]:
		return NewAbs(t.Param, Clone(t.Body))
	case *App[T]:
		return NewApp(Clone(t.Fn), Clone(t.Arg))
	}
	panic("unreachable")
}
