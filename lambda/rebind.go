package lambda

import "github.com/samber/lo"

// Bindings maps global names to locally nameless definitions.
type Bindings[T comparable] map[T]Term[Ref[T]]

// Names returns the bound names in no particular order.
func (b Bindings[T]) Names() []T {
	return lo.Keys(b)
}

// Rebind replaces, in place, every free variable of *t named in binds with a
// clone of its definition. Definitions are spliced in as they are: free names
// inside them are not expanded again.
func Rebind[T comparable](t *Term[Ref[T]], binds Bindings[T]) {
	switch u := (*t).(type) {
	case *Var[Ref[T]]:
		if u.Name.bound {
			return
		}
		if def, ok := binds[u.Name.name]; ok {
			*t = Clone(def)
		}
	case *Abs[Ref[T]]:
		Rebind(&u.Body, binds)
	case *App[Ref[T]]:
		Rebind(&u.Fn, binds)
		Rebind(&u.Arg, binds)
	default:
		panic("unreachable")
	}
}

// FreeNames lists the distinct free identifiers of t in order of first
// occurrence.
func FreeNames[T comparable](t Term[Ref[T]]) []T {
	return lo.Uniq(freeNames(t))
}

func freeNames[T comparable](t Term[Ref[T]]) []T {
	switch t := t.(type) {
	case *Var[Ref[T]]:
		if t.Name.bound {
			return nil
		}
		return []T{t.Name.name}
	case *Abs[Ref[T]]:
		return freeNames(t.Body)
	case *App[Ref[T]]:
		return append(freeNames(t.Fn), freeNames(t.Arg)...)
	}
	panic("unreachable")
}
