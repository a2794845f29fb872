package lambda

// DefaultLimit is the step limit suggested for bounding reductions that may
// not terminate.
const DefaultLimit = 1000

// Strategy is a β-reduction strategy over locally nameless terms.
//
// Step rewrites at most one redex of *t in place, as chosen by the strategy,
// and reports whether it did. It returns false exactly when *t is in normal
// form for the strategy, leaving it untouched. Everything else in this file
// is built on Step alone.
type Strategy[T comparable] interface {
	Step(t *Term[Ref[T]]) bool
}

// Predicate is consulted before every reduction step with the current term and
// the number of steps performed so far. Reduction stops once it returns false.
type Predicate[T comparable] func(t Term[Ref[T]], steps int) bool

// Reduce reduces *t in place until s makes no more progress and returns the
// number of steps performed. It does not return if *t has no normal form.
func Reduce[T comparable](t *Term[Ref[T]], s Strategy[T]) int {
	n := 0
	for s.Step(t) {
		n++
	}
	return n
}

// ReduceWhile reduces *t in place while p holds and s makes progress, and
// returns the number of steps performed.
func ReduceWhile[T comparable](t *Term[Ref[T]], s Strategy[T], p Predicate[T]) int {
	n := 0
	for p(*t, n) && s.Step(t) {
		n++
	}
	return n
}

// ReduceLimit reduces *t in place for at most limit steps. A result equal to
// limit means the term may still be reducible.
func ReduceLimit[T comparable](t *Term[Ref[T]], s Strategy[T], limit int) int {
	return ReduceWhile(t, s, func(_ Term[Ref[T]], n int) bool {
		return n < limit
	})
}

// ReducedTerm pairs a reduced term with the number of steps it took.
type ReducedTerm[T comparable] struct {
	Count int
	Term  Term[T]
}

func (r ReducedTerm[T]) String() string {
	return r.Term.String()
}

// Reduced returns the normal form of t under s. t itself is not modified.
func Reduced[T comparable](t Term[T], s Strategy[T]) ReducedTerm[T] {
	ln := ToLocallyNameless(t)
	n := Reduce(&ln, s)
	return ReducedTerm[T]{Count: n, Term: mustClassic(ln)}
}

// ReducedWhile is Reduced bounded by a predicate, see ReduceWhile.
func ReducedWhile[T comparable](t Term[T], s Strategy[T], p Predicate[T]) ReducedTerm[T] {
	ln := ToLocallyNameless(t)
	n := ReduceWhile(&ln, s, p)
	return ReducedTerm[T]{Count: n, Term: mustClassic(ln)}
}

// ReducedLimit is Reduced bounded to at most limit steps, see ReduceLimit.
func ReducedLimit[T comparable](t Term[T], s Strategy[T], limit int) ReducedTerm[T] {
	ln := ToLocallyNameless(t)
	n := ReduceLimit(&ln, s, limit)
	return ReducedTerm[T]{Count: n, Term: mustClassic(ln)}
}

// mustClassic converts a term produced by ToLocallyNameless and reduction,
// which cannot hold a dangling index.
func mustClassic[T comparable](t Term[Ref[T]]) Term[T] {
	c, err := ToClassic(t)
	if err != nil {
		panic(err)
	}
	return c
}
