/*
Package runner implements the trace driver for CCS terms.

It repeatedly asks the transition engine for the next transition of the current
term and reports each one to a pluggable handler, until the term cannot move or
a previously visited term is reached again.

# Key Components

  - Runner: The driver loop. It keeps the visited set and fires lifecycle hooks.
  - TraceHandler: Decouples how the trace is presented (text, JSON-Lines, nothing).
  - TextHandler: The classic human-readable trace with derivation steps.
  - JSONHandler: One JSON object per event, for tooling.

# Usage

	r := runner.NewRunner(
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
		runner.WithLogger(logger),
	)

	result, err := r.Run(term)
	if err != nil {
		log.Fatal(err)
	}
*/
package runner
