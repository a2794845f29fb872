package lambda

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// Ref is a variable in locally nameless form: either a de Bruijn index
// counting binders outward from the reference (0 is the nearest), or a free
// identifier kept under its original name.
//
// The parameter slot of an abstraction always holds a free Ref carrying the
// binder's display name.
type Ref[T comparable] struct {
	index int
	name  T
	bound bool
}

// Bound returns a reference to the binder index levels out, 0 being the
// nearest.
func Bound[T comparable](index int) Ref[T] {
	return Ref[T]{index: index, bound: true}
}

// Free returns a reference to the unbound identifier name.
func Free[T comparable](name T) Ref[T] {
	return Ref[T]{name: name}
}

// IsBound reports whether r is a de Bruijn index.
func (r Ref[T]) IsBound() bool { return r.bound }

// Index is the de Bruijn index of a bound Ref and 0 for a free one.
func (r Ref[T]) Index() int { return r.index }

// Name is the identifier of a free Ref and the zero T for a bound one.
func (r Ref[T]) Name() T { return r.name }

func (r Ref[T]) String() string {
	if r.bound {
		return strconv.Itoa(r.index)
	}
	return fmt.Sprint(r.name)
}

// InvalidVarIndexError is returned when a bound variable points past the
// outermost enclosing abstraction.
type InvalidVarIndexError struct {
	Index int
}

func (e *InvalidVarIndexError) Error() string {
	return fmt.Sprintf("invalid variable index %d", e.Index)
}

// InvalidAbsParamError is returned when the parameter of an abstraction is a
// bound index instead of a name.
type InvalidAbsParamError struct {
	Index int
}

func (e *InvalidAbsParamError) Error() string {
	return fmt.Sprintf("invalid abstraction parameter: bound index %d", e.Index)
}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}

// ToLocallyNameless converts t into a freshly allocated locally nameless
// term. A variable resolves to the nearest enclosing binder of the same name;
// unmatched variables stay free.
func ToLocallyNameless[T comparable](t Term[T]) Term[Ref[T]] {
	return toLocallyNameless(t, nil)
}

func toLocallyNameless[T comparable](t Term[T], ctx []T) Term[Ref[T]] {
	switch t := t.(type) {
	case *Var[T]:
		if i := slices.Index(ctx, t.Name); i >= 0 {
			return NewVar(Bound[T](i))
		}
		return NewVar(Free(t.Name))
	case *Abs[T]:
		return NewAbs(Free(t.Param), toLocallyNameless(t.Body, prepend(t.Param, ctx)))
	case *App[T]:
		return NewApp(toLocallyNameless(t.Fn, ctx), toLocallyNameless(t.Arg, ctx))
	}
	panic("unreachable")
}

// ToClassic converts a locally nameless term back into a named term, giving
// each bound variable the display name of its binder.
//
// The result may read ambiguously when reduction has moved a reference under
// a binder of the same name; ToClassicFresh renames such binders.
func ToClassic[T comparable](t Term[Ref[T]]) (Term[T], error) {
	return toClassic(t, nil, nil)
}

// ToClassicFresh is ToClassic, but a binder whose name would capture a
// reference to an outer binder or a free identifier of the same name is
// renamed by applying fresh until the clash disappears. Terms converted by
// ToLocallyNameless and not reduced since never need renaming.
func ToClassicFresh[T comparable](t Term[Ref[T]], fresh func(T) T) (Term[T], error) {
	return toClassic(t, nil, fresh)
}

func toClassic[T comparable](t Term[Ref[T]], ctx []T, fresh func(T) T) (Term[T], error) {
	switch t := t.(type) {
	case *Var[Ref[T]]:
		if !t.Name.bound {
			return NewVar(t.Name.name), nil
		}
		if t.Name.index < 0 || t.Name.index >= len(ctx) {
			return nil, &InvalidVarIndexError{Index: t.Name.index}
		}
		return NewVar(ctx[t.Name.index]), nil
	case *Abs[Ref[T]]:
		if t.Param.bound {
			return nil, &InvalidAbsParamError{Index: t.Param.index}
		}
		param := t.Param.name
		if fresh != nil {
			used := escapingNames(t.Body, 1, ctx)
			for slices.Contains(used, param) {
				param = fresh(param)
			}
		}
		body, err := toClassic(t.Body, prepend(param, ctx), fresh)
		if err != nil {
			return nil, err
		}
		return NewAbs(param, body), nil
	case *App[Ref[T]]:
		fn, err := toClassic(t.Fn, ctx, fresh)
		if err != nil {
			return nil, err
		}
		arg, err := toClassic(t.Arg, ctx, fresh)
		if err != nil {
			return nil, err
		}
		return NewApp(fn, arg), nil
	}
	panic("unreachable")
}

// escapingNames lists the names t refers to outside of its depth innermost
// binders: free identifiers and the names of binders in ctx.
func escapingNames[T comparable](t Term[Ref[T]], depth int, ctx []T) []T {
	switch t := t.(type) {
	case *Var[Ref[T]]:
		switch {
		case !t.Name.bound:
			return []T{t.Name.name}
		case t.Name.index >= depth && t.Name.index-depth < len(ctx):
			return []T{ctx[t.Name.index-depth]}
		}
		return nil
	case *Abs[Ref[T]]:
		return escapingNames(t.Body, depth+1, ctx)
	case *App[Ref[T]]:
		return append(escapingNames(t.Fn, depth, ctx), escapingNames(t.Arg, depth, ctx)...)
	}
	panic("unreachable")
}
