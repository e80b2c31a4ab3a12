package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/ccstrace"
	"github.com/aretw0/ccstrace/internal/config"
	"github.com/aretw0/ccstrace/internal/logging"
	"github.com/aretw0/ccstrace/internal/presentation/tui"
	"github.com/aretw0/ccstrace/pkg/domain"
	"github.com/aretw0/ccstrace/pkg/runner"
)

// StdinPath selects standard input as the source.
const StdinPath = "-"

// createLogger configures the application logger.
// It writes to Stderr to keep Stdout for the trace.
func createLogger(w io.Writer, verbosity string) (*slog.Logger, error) {
	level, err := logging.ParseLevel(verbosity)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(e *domain.TransitionEvent) {
			logger.Debug("Transition", "index", e.Index, "label", e.Label.String(), "to", e.To)
		},
		OnHalt: func(e *domain.HaltEvent) {
			logger.Debug("Halt", "reason", e.Reason, "transitions", e.Transitions)
		},
	}
}

// readSource returns the program text: the built-in example when path is
// empty, standard input for "-", the file contents otherwise.
func readSource(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return ccstrace.DefaultExample, nil
	case StdinPath:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
}

// createTraceHandler picks the trace handler for the configured format.
func createTraceHandler(cfg config.Config, w io.Writer) runner.TraceHandler {
	if cfg.Format == config.FormatJSON {
		return runner.NewJSONHandler(w)
	}
	return runner.NewTextHandler(w, runner.WithStyler(tui.NewPalette(w, cfg.Color)))
}

// renderTree returns the syntax tree of term, rendered through glamour when
// w is a colour terminal and as plain markdown otherwise.
func renderTree(term *domain.Term, w io.Writer, color string) string {
	markdown := tui.RenderTree(term)
	if !shouldRenderMarkdown(w, color) {
		return markdown
	}
	rendered, err := tui.NewRenderer()(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

func shouldRenderMarkdown(w io.Writer, color string) bool {
	switch color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}
