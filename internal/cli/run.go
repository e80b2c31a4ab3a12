package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/ccstrace"
	"github.com/aretw0/ccstrace/internal/config"
	"github.com/aretw0/ccstrace/internal/presentation/graph"
	"github.com/aretw0/ccstrace/internal/validator"
	"github.com/aretw0/ccstrace/pkg/domain"
	"github.com/aretw0/ccstrace/pkg/observability"
	"github.com/aretw0/ccstrace/pkg/runner"
)

// RunOptions contains all the configuration for a command.
type RunOptions struct {
	Config config.Config

	// Path of the program; empty runs the built-in example, "-" reads Stdin.
	Path string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o RunOptions) withDefaults() RunOptions {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// session holds what every command needs once options are resolved.
type session struct {
	opts    RunOptions
	tracer  *ccstrace.Tracer
	metrics *observability.Metrics
	term    *domain.Term
}

func open(opts RunOptions) (*session, error) {
	opts = opts.withDefaults()
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	logger, err := createLogger(opts.Stderr, opts.Config.Verbosity)
	if err != nil {
		return nil, err
	}

	s := &session{opts: opts}
	tracerOpts := []ccstrace.Option{
		ccstrace.WithLogger(logger),
		ccstrace.WithHooks(createDebugHooks(logger)),
	}
	if opts.Config.MetricsFile != "" {
		s.metrics = observability.NewMetrics()
		tracerOpts = append(tracerOpts, ccstrace.WithHooks(s.metrics.Hooks()))
	}
	s.tracer = ccstrace.New(tracerOpts...)

	src, err := readSource(opts.Path, opts.Stdin)
	if err != nil {
		return nil, err
	}
	s.term, err = s.tracer.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return s, nil
}

func (s *session) run(handler runner.TraceHandler) (*runner.Result, error) {
	result, err := s.tracer.Run(s.term, handler)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		if err := s.metrics.WriteTextfile(s.opts.Config.MetricsFile); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Execute handles the 'trace' command: optionally print the syntax tree, then
// print the trace unless it is hidden.
func Execute(opts RunOptions) error {
	s, err := open(opts)
	if err != nil {
		return err
	}
	cfg := s.opts.Config

	if cfg.PrintTree {
		fmt.Fprintf(s.opts.Stdout, "syntax tree:\n%s\n", renderTree(s.term, s.opts.Stdout, cfg.Color))
	}
	if cfg.HideTrace {
		return nil
	}

	_, err = s.run(createTraceHandler(cfg, s.opts.Stdout))
	return err
}

// Graph handles the 'graph' command: trace silently and print the visited
// states as a Mermaid diagram.
func Graph(opts RunOptions) error {
	s, err := open(opts)
	if err != nil {
		return err
	}
	result, err := s.run(runner.NopHandler{})
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.opts.Stdout, graph.GenerateMermaid(result))
	return err
}

// Tree handles the 'tree' command: print the syntax tree only.
func Tree(opts RunOptions) error {
	s, err := open(opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.opts.Stdout, renderTree(s.term, s.opts.Stdout, s.opts.Config.Color))
	return err
}

// Validate handles the 'validate' command: report constructs the driver
// handles poorly without tracing.
func Validate(opts RunOptions) error {
	s, err := open(opts)
	if err != nil {
		return err
	}
	return validator.ValidateTerm(s.term)
}
