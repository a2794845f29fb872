package lambda

// Normal is the leftmost-outermost (normal order) strategy.
//
// For a redex (λx. b) a, b is advanced by at most one step of its own before
// the redex is contracted, and the whole counts as the single step reported.
// The body is never driven to normal form inside one Step, so every Step
// terminates and a step limit bounds the reduction of any term.
type Normal[T comparable] struct{}

func (n Normal[T]) Step(t *Term[Ref[T]]) bool {
	switch u := (*t).(type) {
	case *Var[Ref[T]]:
		return false
	case *Abs[Ref[T]]:
		return n.Step(&u.Body)
	case *App[Ref[T]]:
		if abs, ok := u.Fn.(*Abs[Ref[T]]); ok {
			n.Step(&abs.Body)
			Open(&abs.Body, 0, u.Arg)
			*t = abs.Body
			return true
		}
		fn := n.Step(&u.Fn)
		arg := n.Step(&u.Arg)
		return fn || arg
	}
	panic("unreachable")
}
