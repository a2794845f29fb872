package repl

import (
	"fmt"
	"strconv"

	"github.com/smasher164/lamb/lambda"
)

// Statement binds Term to Name in a session.
type Statement[T comparable] struct {
	Name T
	Term lambda.Term[T]
}

func (s Statement[T]) String() string {
	return fmt.Sprint(s.Name) + " = " + s.Term.String() + ";"
}

type CommandKind int

const (
	// Reduce β-reduces Command.Term up to the session's step limit.
	Reduce CommandKind = iota
	// Exec executes Command.Statements in order.
	Exec
	GetLimit
	// SetLimit replaces the step limit with Command.Limit.
	SetLimit
	Exit
)

// Command is an action executed by a Session. Only the fields used by Kind are
// read.
type Command[T comparable] struct {
	Kind       CommandKind
	Term       lambda.Term[T]
	Statements []Statement[T]
	Limit      int
}

type OutcomeKind int

const (
	TermReduced OutcomeKind = iota
	// LimitReached follows TermReduced when the reduction used up the whole
	// step limit. The term may be divergent or only slow.
	LimitReached
	BindAdded
	// BindOverwritten replaces BindAdded when the name was already bound.
	BindOverwritten
	LimitGot
	LimitSet
	Exited
)

// Outcome is one result of executing a Command.
type Outcome[T comparable] struct {
	Kind    OutcomeKind
	Reduced lambda.ReducedTerm[T]
	Name    T
	Limit   int
}

// Warning reports whether the outcome deserves the user's attention even
// though the command succeeded.
func (o Outcome[T]) Warning() bool {
	return o.Kind == LimitReached || o.Kind == BindOverwritten
}

func (o Outcome[T]) String() string {
	switch o.Kind {
	case TermReduced:
		return "reduced " + strconv.Itoa(o.Reduced.Count) + " times: " + o.Reduced.String()
	case LimitReached:
		return "reduction limit reached: possibly divergent term (current reduction limit is " + strconv.Itoa(o.Limit) + ")"
	case BindAdded:
		return "binding " + fmt.Sprint(o.Name) + " added"
	case BindOverwritten:
		return "binding " + fmt.Sprint(o.Name) + " overwritten"
	case LimitGot:
		return "reduction limit is " + strconv.Itoa(o.Limit)
	case LimitSet:
		return "reduction limit set to " + strconv.Itoa(o.Limit)
	case Exited:
		return "exit"
	}
	panic("unreachable")
}
