package repl

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/smasher164/lamb/lambda"
	"github.com/smasher164/lamb/lambda/prelude"
)

func quiet() Option[string] {
	return WithLogger[string](slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var (
	x        = lambda.NewVar("x")
	identity = lambda.NewAbs("x", lambda.NewVar("x"))
	double   = lambda.NewAbs("n", lambda.NewApp(lambda.NewVar("n"), lambda.NewVar("n")))
)

func TestBindAndReduce(t *testing.T) {
	s := New(quiet())
	if s.Bind("identity", identity) {
		t.Error("first bind of identity reported as overwrite")
	}
	if s.Bind("double", double) {
		t.Error("first bind of double reported as overwrite")
	}
	r, limitReached, err := s.Reduce(lambda.NewApp(lambda.NewVar("double"), lambda.NewVar("identity")))
	if err != nil {
		t.Fatal(err)
	}
	if limitReached || r.Count != 2 || r.String() != "λx. x" {
		t.Errorf("Reduce = %d %v (limit reached %v), want 2 λx. x", r.Count, r.Term, limitReached)
	}
}

func TestBindOverwrite(t *testing.T) {
	s := New(quiet())
	s.Bind("a", x)
	s.Bind("b", lambda.NewVar("a"))
	if !s.Bind("a", identity) {
		t.Error("rebinding a not reported as overwrite")
	}
	// b captured the definition of a at bind time.
	r, _, err := s.Reduce(lambda.NewVar("b"))
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "x" {
		t.Errorf("b = %v, want x", r.Term)
	}
	def, ok, err := s.Lookup("a")
	if err != nil || !ok || !lambda.Equal(def, identity) {
		t.Errorf("Lookup(a) = %v %v %v", def, ok, err)
	}
	if _, ok, _ := s.Lookup("c"); ok {
		t.Error("Lookup(c) found a binding")
	}
	if names := s.Names(); len(names) != 2 {
		t.Errorf("Names = %v, want 2 names", names)
	}
}

func TestLimit(t *testing.T) {
	s := New(quiet(), WithLimit[string](5))
	if s.Limit() != 5 {
		t.Fatalf("Limit = %d, want 5", s.Limit())
	}
	r, limitReached, err := s.Reduce(prelude.Omega())
	if err != nil {
		t.Fatal(err)
	}
	if !limitReached || r.Count != 5 {
		t.Errorf("Reduce(Ω) = %d (limit reached %v), want 5 true", r.Count, limitReached)
	}
	s.SetLimit(7)
	r, _, _ = s.Reduce(prelude.Omega())
	if r.Count != 7 {
		t.Errorf("Reduce(Ω) after SetLimit(7) = %d", r.Count)
	}
}

func TestExec(t *testing.T) {
	s := New(quiet(), WithLimit[string](10))
	tests := []struct {
		cmd  Command[string]
		want []OutcomeKind
	}{
		{Command[string]{Kind: Exec, Statements: []Statement[string]{{"id", identity}, {"w", prelude.AppSelf()}}}, []OutcomeKind{BindAdded, BindAdded}},
		{Command[string]{Kind: Exec, Statements: []Statement[string]{{"id", identity}}}, []OutcomeKind{BindOverwritten}},
		{Command[string]{Kind: Reduce, Term: lambda.NewApp(lambda.NewVar("id"), x)}, []OutcomeKind{TermReduced}},
		{Command[string]{Kind: Reduce, Term: lambda.NewApp(lambda.NewVar("w"), lambda.NewVar("w"))}, []OutcomeKind{TermReduced, LimitReached}},
		{Command[string]{Kind: SetLimit, Limit: 3}, []OutcomeKind{LimitSet}},
		{Command[string]{Kind: GetLimit}, []OutcomeKind{LimitGot}},
		{Command[string]{Kind: Exit}, []OutcomeKind{Exited}},
	}
	for _, tt := range tests {
		got, err := s.Exec(tt.cmd)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("Exec(%v) = %v, want kinds %v", tt.cmd.Kind, got, tt.want)
		}
		for i, o := range got {
			if o.Kind != tt.want[i] {
				t.Errorf("Exec(%v)[%d] = %v, want kind %v", tt.cmd.Kind, i, o, tt.want[i])
			}
		}
	}
	if s.Limit() != 3 {
		t.Errorf("Limit = %d, want 3", s.Limit())
	}
	if _, err := s.Exec(Command[string]{Kind: CommandKind(42)}); err == nil {
		t.Error("unknown command kind accepted")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o       Outcome[string]
		want    string
		warning bool
	}{
		{Outcome[string]{Kind: TermReduced, Reduced: lambda.ReducedTerm[string]{Count: 2, Term: identity}}, "reduced 2 times: λx. x", false},
		{Outcome[string]{Kind: LimitReached, Limit: 1000}, "reduction limit reached: possibly divergent term (current reduction limit is 1000)", true},
		{Outcome[string]{Kind: BindAdded, Name: "id"}, "binding id added", false},
		{Outcome[string]{Kind: BindOverwritten, Name: "id"}, "binding id overwritten", true},
		{Outcome[string]{Kind: LimitGot, Limit: 5}, "reduction limit is 5", false},
		{Outcome[string]{Kind: LimitSet, Limit: 5}, "reduction limit set to 5", false},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.o.Warning(); got != tt.warning {
			t.Errorf("%q: Warning() = %v, want %v", tt.want, got, tt.warning)
		}
	}
}

func TestStatementString(t *testing.T) {
	if got, want := (Statement[string]{"id", identity}).String(), "id = λx. x;"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWithStrategyAndBindings(t *testing.T) {
	s := New(quiet(),
		WithStrategy[string](lambda.CallByValue[string]{}),
		WithBindings(prelude.Bindings()),
	)
	// K I Ω diverges under call-by-value but not under normal order.
	term := lambda.Apply(lambda.NewVar("constant"), lambda.NewVar("id"), lambda.NewVar("omega"))
	r, limitReached, err := s.Reduce(term)
	if err != nil {
		t.Fatal(err)
	}
	if !limitReached || r.Count != lambda.DefaultLimit {
		t.Errorf("call-by-value: %d steps (limit reached %v)", r.Count, limitReached)
	}

	s = New(quiet(), WithBindings(prelude.Bindings()))
	r, limitReached, err = s.Reduce(term)
	if err != nil {
		t.Fatal(err)
	}
	if limitReached || r.String() != "λx. x" {
		t.Errorf("normal order: %v (limit reached %v)", r.Term, limitReached)
	}
}

func TestWithFresh(t *testing.T) {
	term := lambda.NewAbs("y", lambda.NewApp(lambda.Lambda([]string{"x", "y"}, x), lambda.NewVar("y")))
	r, _, err := New(quiet()).Reduce(term)
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "λy. λy. y" {
		t.Errorf("plain = %v", r.Term)
	}
	r, _, err = New(quiet(), WithFresh(func(s string) string { return s + "'" })).Reduce(term)
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "λy. λy'. y" {
		t.Errorf("fresh = %v", r.Term)
	}
}

func TestMalformedBinding(t *testing.T) {
	binds := lambda.Bindings[string]{"bad": lambda.NewVar(lambda.Bound[string](3))}
	_, _, err := New(quiet(), WithBindings(binds)).Reduce(lambda.NewVar("bad"))
	var indexErr *lambda.InvalidVarIndexError
	if !errors.As(err, &indexErr) || indexErr.Index != 3 {
		t.Errorf("err = %v, want InvalidVarIndexError(3)", err)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(WithLogger[string](logger), WithLimit[string](2))
	s.Bind("id", identity)
	s.Bind("id", identity)
	s.Reduce(prelude.Omega())
	out := buf.String()
	for _, want := range []string{"binding added", "binding overwritten", "term reduced", "reduction limit reached", "limit=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
