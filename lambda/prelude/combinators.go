// Package prelude provides standard combinators and Church-encoded booleans.
package prelude

import (
	"strings"

	"github.com/smasher164/lamb/lambda"
)

type term = lambda.Term[string]

func v(name string) term { return lambda.NewVar(name) }

func lam(params string, body term) term {
	return lambda.Lambda(strings.Fields(params), body)
}

func app(fn term, args ...term) term { return lambda.Apply(fn, args...) }

// Compose is B = λf. λg. λx. f (g x).
func Compose() term {
	return lam("f g x", app(v("f"), app(v("g"), v("x"))))
}

// Flip is C = λf. λx. λy. f y x.
func Flip() term {
	return lam("f x y", app(v("f"), v("y"), v("x")))
}

// ID is I = λx. x.
func ID() term {
	return lam("x", v("x"))
}

// Constant is K = λx. λy. x.
func Constant() term {
	return lam("x y", v("x"))
}

// AppSelf is ω = λx. x x.
func AppSelf() term {
	return lam("x", app(v("x"), v("x")))
}

// Omega is Ω = ω ω, which has no normal form.
func Omega() term {
	return app(AppSelf(), AppSelf())
}

// AppRev is R = λx. λy. y x.
func AppRev() term {
	return lam("x y", app(v("y"), v("x")))
}

// Sub is S = λx. λy. λz. x z (y z).
func Sub() term {
	return lam("x y z", app(v("x"), v("z"), app(v("y"), v("z"))))
}

// Dup is W = λf. λx. f x x.
func Dup() term {
	return lam("f x", app(v("f"), v("x"), v("x")))
}

// FixTuring is Turing's Θ = (λx. λy. y (x x y)) (λx. λy. y (x x y)).
func FixTuring() term {
	half := func() term {
		return lam("x y", app(v("y"), app(v("x"), v("x"), v("y"))))
	}
	return app(half(), half())
}

// FixLazy is Y = λf. (λx. f (x x)) (λx. f (x x)).
func FixLazy() term {
	half := func() term {
		return lam("x", app(v("f"), app(v("x"), v("x"))))
	}
	return lam("f", app(half(), half()))
}

// FixStrict is Z = λf. (λx. f (λy. x x y)) (λx. f (λy. x x y)).
func FixStrict() term {
	half := func() term {
		return lam("x", app(v("f"), lam("y", app(v("x"), v("x"), v("y")))))
	}
	return lam("f", app(half(), half()))
}

// Universal is ι = λx. x S K.
func Universal() term {
	return lam("x", app(v("x"), Sub(), Constant()))
}
