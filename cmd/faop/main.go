// Command faop loads finite automata from JSON or YAML files, combines them and prints the
// result.
//
//	faop [flags] validate FILE
//	faop [flags] export FILE
//	faop [flags] complete FILE
//	faop [flags] prune FILE
//	faop [flags] complement FILE
//	faop [flags] intersect FILE FILE
//	faop [flags] union FILE FILE
//	faop [flags] difference FILE FILE
//	faop [flags] run FILE [SYMBOL...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	automaton "github.com/geange/automaton-ops"
	"github.com/geange/automaton-ops/internal/config"
	"github.com/geange/automaton-ops/internal/logger"
)

var errUsage = errors.New("usage")

type options struct {
	strategy automaton.UnionStrategy
	complete []automaton.CompleteOption
}

type command struct {
	operands int
	apply    func(o *options, in []*automaton.Automaton) (*automaton.Automaton, error)
}

var commands = map[string]command{
	"validate": {operands: 1},
	"export": {operands: 1, apply: func(_ *options, in []*automaton.Automaton) (*automaton.Automaton, error) {
		return in[0], nil
	}},
	"complete": {operands: 1, apply: func(o *options, in []*automaton.Automaton) (*automaton.Automaton, error) {
		return automaton.Complete(in[0], o.complete...)
	}},
	"prune": {operands: 1, apply: func(_ *options, in []*automaton.Automaton) (*automaton.Automaton, error) {
		return automaton.PruneUnreachable(in[0])
	}},
	"complement": {operands: 1, apply: func(o *options, in []*automaton.Automaton) (*automaton.Automaton, error) {
		return automaton.Complement(in[0], o.complete...)
	}},
	"intersect": {operands: 2, apply: func(_ *options, in []*automaton.Automaton) (*automaton.Automaton, error) {
		return automaton.Intersect(in[0], in[1])
	}},
	"union": {operands: 2, apply: func(o *options, in []*automaton.Automaton) (*automaton.Automaton, error) {
		return o.strategy.Union(in[0], in[1])
	}},
	"difference": {operands: 2, apply: func(o *options, in []*automaton.Automaton) (*automaton.Automaton, error) {
		return automaton.Difference(in[0], in[1], o.complete...)
	}},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("faop", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", cfg.Output, "output format [json|legacy-json|yaml|quintuple|dot]")
	union := fs.String("union", cfg.Union, "union strategy [product|choice]")
	prune := fs.Bool("prune", cfg.Prune, "remove unreachable states from the result")
	logLevel := fs.String("loglevel", cfg.LogLevel, "log level [debug|info|warn|error]")
	fs.Usage = func() {
		names := make([]string, 0, len(commands)+1)
		for name := range commands {
			names = append(names, name)
		}
		names = append(names, "run")
		sort.Strings(names)
		fmt.Fprintf(fs.Output(), "usage: faop [flags] <%s> FILE...\n", strings.Join(names, "|"))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(stderr),
	)

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	log = log.With(slog.String("command", name))

	if name == "run" {
		err = runWords(log, stdout, cfg, rest)
	} else {
		err = apply(log, stdout, name, rest, *output, *union, *prune, cfg)
	}
	if errors.Is(err, errUsage) {
		log.Error("invalid arguments", logger.Error(err))
		fs.Usage()
		return 2
	}
	if err != nil {
		log.Error("operation failed", logger.Error(err))
		return 1
	}
	return 0
}

func apply(log *slog.Logger, stdout io.Writer, name string, files []string, output, union string, prune bool, cfg config.Config) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	if len(files) != cmd.operands {
		return fmt.Errorf("%w: %s takes %d file(s), got %d", errUsage, name, cmd.operands, len(files))
	}

	o := &options{
		complete: []automaton.CompleteOption{automaton.WithSinkPrefix(cfg.SinkPrefix)},
	}
	if name == "union" {
		strategy, err := automaton.StrategyByName(union)
		if err != nil {
			return err
		}
		if choice, ok := strategy.(automaton.ChoiceUnion); ok {
			choice.Epsilon = cfg.Epsilon
			strategy = choice
		}
		o.strategy = strategy
	}

	in, err := loadAll(log, files)
	if err != nil {
		return err
	}
	if cmd.apply == nil {
		log.Info("automaton is valid", slog.String("file", files[0]))
		_, err := fmt.Fprintln(stdout, "valid")
		return err
	}

	result, err := cmd.apply(o, in)
	if err != nil {
		return err
	}
	if prune {
		if result, err = automaton.PruneUnreachable(result); err != nil {
			return err
		}
	}
	log.Debug("result",
		slog.Int("states", len(result.States)),
		slog.Int("transitions", len(result.Transitions)),
		slog.Bool("deterministic", automaton.IsDeterministic(result)),
	)
	return automaton.Export(stdout, result, automaton.OutputFormat(output))
}

func runWords(log *slog.Logger, stdout io.Writer, cfg config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: run takes a file and a word", errUsage)
	}
	in, err := loadAll(log, args[:1])
	if err != nil {
		return err
	}
	r, err := automaton.NewRunner(in[0], automaton.WithEpsilon(cfg.Epsilon))
	if err != nil {
		return err
	}

	verdict := "rejected"
	if r.Run(args[1:]...) {
		verdict = "accepted"
	}
	log.Debug("run", slog.Any("word", args[1:]), slog.String("verdict", verdict))
	_, err = fmt.Fprintln(stdout, verdict)
	return err
}

func loadAll(log *slog.Logger, files []string) ([]*automaton.Automaton, error) {
	in := make([]*automaton.Automaton, 0, len(files))
	for _, file := range files {
		a, err := automaton.LoadFile(file)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded",
			slog.String("file", file),
			slog.Int("states", len(a.States)),
			slog.Int("symbols", len(a.Alphabet)),
		)
		in = append(in, a)
	}
	return in, nil
}
