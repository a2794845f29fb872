package lambda

// Open substitutes s for the bound index depth throughout *t, in place.
//
// s is read at the nesting level of the binder being consumed: every copy of
// it is shifted by the number of binders it ends up under. Indices above depth
// lose the consumed binder and are decremented; lower indices and free
// variables are left alone. Identifiers are never renamed.
func Open[T comparable](t *Term[Ref[T]], depth int, s Term[Ref[T]]) {
	switch u := (*t).(type) {
	case *Var[Ref[T]]:
		if !u.Name.bound {
			return
		}
		switch {
		case u.Name.index == depth:
			*t = Shift(s, 0, depth)
		case u.Name.index > depth:
			u.Name.index--
		}
	case *Abs[Ref[T]]:
		Open(&u.Body, depth+1, s)
	case *App[Ref[T]]:
		Open(&u.Fn, depth, s)
		Open(&u.Arg, depth, s)
	default:
		panic("unreachable")
	}
}

// Shift returns a copy of t with every bound index at or above depth
// increased by d.
func Shift[T comparable](t Term[Ref[T]], depth, d int) Term[Ref[T]] {
	switch t := t.(type) {
	case *Var[Ref[T]]:
		if t.Name.bound && t.Name.index >= depth {
			return NewVar(Bound[T](t.Name.index + d))
		}
		return NewVar(t.Name)
	case *Abs[Ref[T]]:
		return NewAbs(t.Param, Shift(t.Body, depth+1, d))
	case *App[Ref[T]]:
		return NewApp(Shift(t.Fn, depth, d), Shift(t.Arg, depth, d))
	}
	panic("unreachable")
}
