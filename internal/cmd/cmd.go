// Package cmd holds the command-line drivers and their exit-code handling.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tuem/resembla/client"
	"github.com/tuem/resembla/internal/config"
	"github.com/tuem/resembla/internal/logging"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// EvalUsage is printed when resembla-ondemand is started without a query.
const EvalUsage = "usage: resembla-ondemand <query> [candidate]..."

// ErrNoQuery is returned by Eval when no query text was given.
var ErrNoQuery = errors.New("a query is required")

// RunFind is the resembla-client program: it runs Find over args and
// turns the outcome into an exit code, reporting failures on stderr.
func RunFind(cfg *config.Config, args []string, stdout, stderr io.Writer, opts ...client.Option) int {
	return run("resembla-client", cfg, stderr, func(logger *zap.SugaredLogger) error {
		if err := Find(context.Background(), cfg, logger, stdout, args, opts...); err != nil {
			return fmt.Errorf("could not query %s: %w", cfg.ServerAddress, err)
		}
		return nil
	})
}

// RunEval is the resembla-ondemand program.
func RunEval(cfg *config.Config, args []string, stdout, stderr io.Writer, opts ...client.Option) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, EvalUsage)
		return ExitUsage
	}

	return run("resembla-ondemand", cfg, stderr, func(logger *zap.SugaredLogger) error {
		if err := Eval(context.Background(), cfg, logger, stdout, args, opts...); err != nil {
			return fmt.Errorf("could not evaluate candidates on %s: %w", cfg.ServerAddress, err)
		}
		return nil
	})
}

func run(name string, cfg *config.Config, stderr io.Writer, fn func(*zap.SugaredLogger) error) int {
	l, cleanup, err := logging.New(cfg.Logging(), stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: unable to initialize Zap logger: %s\n", name, err)
		return ExitFailure
	}
	logger := l.Sugar()

	code := ExitOK
	if err := fn(logger); err != nil {
		logger.Error(err)
		if cfg.LogFile != "" {
			fmt.Fprintf(stderr, "%s: %s\n", name, err)
		}
		code = ExitFailure
	}

	if err := cleanup(); err != nil {
		fmt.Fprintf(stderr, "%s: unable to close log: %s\n", name, err)
	}
	return code
}

// Find sends every query to the server's find method and prints the
// matches to out.
func Find(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, out io.Writer, queries []string, opts ...client.Option) error {
	c, err := open(cfg, logger, opts)
	if err != nil {
		return err
	}
	defer closeClient(c, logger)

	logger.Debugf("Sending %d queries to %s", len(queries), cfg.ServerAddress)
	return client.Run(ctx, c, client.NewPrinter(out, false), queries)
}

// Eval scores the candidates in args[1:] against the query in args[0].
func Eval(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, out io.Writer, args []string, opts ...client.Option) error {
	if len(args) == 0 {
		return ErrNoQuery
	}

	c, err := open(cfg, logger, opts)
	if err != nil {
		return err
	}
	defer closeClient(c, logger)

	query, candidates := args[0], args[1:]
	logger.Debugf("Evaluating %d candidates on %s", len(candidates), cfg.ServerAddress)
	return client.RunEval(ctx, c, client.NewPrinter(out, true), query, candidates)
}

func open(cfg *config.Config, logger *zap.SugaredLogger, opts []client.Option) (*client.Client, error) {
	opts = append([]client.Option{client.WithLogger(logger)}, opts...)
	c, err := client.New(cfg.Client(), opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to configure client: %w", err)
	}
	return c, nil
}

func closeClient(c *client.Client, logger *zap.SugaredLogger) {
	if err := c.Close(); err != nil {
		logger.Debugf("Unable to close channel: %s", err)
	}
}
