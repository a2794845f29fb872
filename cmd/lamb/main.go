package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/smasher164/lamb/lambda"
	"github.com/smasher164/lamb/lambda/prelude"
	"github.com/smasher164/lamb/repl"
)

var (
	limit    = flag.Int("limit", lambda.DefaultLimit, "maximum number of reduction steps")
	strategy = flag.String("strategy", "normal", "reduction strategy: normal or cbv")
	list     = flag.Bool("list", false, "list the prelude terms and exit")
	verbose  = flag.Bool("v", false, "log every binding and reduction")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: lamb [-limit n] [-strategy normal|cbv] [-v] name...\n")
	fmt.Fprint(os.Stderr, "       lamb -list\n\n")
	fmt.Fprint(os.Stderr, "lamb applies the named terms to each other from left to right and β-reduces the result.\n")
	fmt.Fprint(os.Stderr, "Names from the prelude are replaced by their definitions, other names stay free.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func strategyFor(name string) (lambda.Strategy[string], error) {
	switch name {
	case "normal":
		return lambda.Normal[string]{}, nil
	case "cbv":
		return lambda.CallByValue[string]{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if *list {
		for _, name := range prelude.Names() {
			t, _ := prelude.Lookup(name)
			fmt.Printf("%s = %v;\n", name, t)
		}
		return
	}
	args := flag.Args()
	if len(args) == 0 {
		usage()
	}
	s, err := strategyFor(*strategy)
	if err != nil {
		errExit(err)
	}
	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	session := repl.New(
		repl.WithLimit[string](*limit),
		repl.WithStrategy(s),
		repl.WithBindings(prelude.Bindings()),
		repl.WithLogger[string](logger),
		repl.WithFresh(func(name string) string { return name + "'" }),
	)
	terms := lo.Map(args, func(arg string, _ int) lambda.Term[string] {
		return lambda.NewVar(strings.TrimSpace(arg))
	})
	outcomes, err := session.Exec(repl.Command[string]{
		Kind: repl.Reduce,
		Term: lambda.Apply(terms[0], terms[1:]...),
	})
	if err != nil {
		errExit(err)
	}
	for _, o := range outcomes {
		if o.Kind == repl.TermReduced {
			fmt.Println(o.Reduced)
			fmt.Fprintf(os.Stderr, "reduced %d times\n", o.Reduced.Count)
			continue
		}
		fmt.Fprintln(os.Stderr, "warning:", o)
	}
}
