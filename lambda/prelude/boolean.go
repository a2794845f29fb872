package prelude

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/lamb/lambda"
)

// False is λt. λf. f.
func False() term {
	return lam("t f", v("f"))
}

// True is λt. λf. t.
func True() term {
	return lam("t f", v("t"))
}

// IfThenElse is λc. λt. λe. c t e. Church booleans already select between
// their arguments, so this only spells the selection out.
func IfThenElse() term {
	return lam("c t e", app(v("c"), v("t"), v("e")))
}

// Not is λb. if-then-else b false true.
func Not() term {
	return lam("b", app(IfThenElse(), v("b"), False(), True()))
}

// And is λl. λr. l r false.
func And() term {
	return lam("l r", app(v("l"), v("r"), False()))
}

// Or is λl. λr. l true r.
func Or() term {
	return lam("l r", app(v("l"), True(), v("r")))
}

var named = map[string]func() term{
	"compose":    Compose,
	"flip":       Flip,
	"id":         ID,
	"constant":   Constant,
	"app-self":   AppSelf,
	"omega":      Omega,
	"app-rev":    AppRev,
	"sub":        Sub,
	"dup":        Dup,
	"fix-turing": FixTuring,
	"fix-lazy":   FixLazy,
	"fix-strict": FixStrict,
	"universal":  Universal,
	"false":      False,
	"true":       True,
	"if":         IfThenElse,
	"not":        Not,
	"and":        And,
	"or":         Or,
}

// Names returns the names of all prelude terms in sorted order.
func Names() []string {
	names := lo.Keys(named)
	slices.Sort(names)
	return names
}

// Lookup returns a fresh copy of the prelude term called name.
func Lookup(name string) (lambda.Term[string], bool) {
	f, ok := named[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Bindings returns every prelude term in locally nameless form, keyed by
// name, ready to be rebound into other terms.
func Bindings() lambda.Bindings[string] {
	return lo.MapValues(named, func(f func() term, _ string) lambda.Term[lambda.Ref[string]] {
		return lambda.ToLocallyNameless(f())
	})
}
