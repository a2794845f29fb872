package lambda

// CallByValue is the weak call-by-value strategy: the function side of an
// application is reduced first, then the argument, and a redex is contracted
// only once its argument is an abstraction or cannot be reduced further.
// Abstraction bodies are never reduced.
type CallByValue[T comparable] struct{}

func (c CallByValue[T]) Step(t *Term[Ref[T]]) bool {
	app, ok := (*t).(*App[Ref[T]])
	if !ok {
		return false
	}
	abs, ok := app.Fn.(*Abs[Ref[T]])
	if !ok {
		return c.Step(&app.Fn) || c.Step(&app.Arg)
	}
	if !isVal(app.Arg) && c.Step(&app.Arg) {
		return true
	}
	Open(&abs.Body, 0, app.Arg)
	*t = abs.Body
	return true
}

func isVal[T comparable](t Term[T]) (isAbs bool) {
	_, isAbs = t.(*Abs[T])
	return
}
