package ccstrace_test

import (
	"fmt"
	"log"
	"os"

	"github.com/aretw0/ccstrace"
	"github.com/aretw0/ccstrace/pkg/runner"
)

// ExampleTracer_TraceSource prints the classic trace of a recursive process.
func ExampleTracer_TraceSource() {
	result, err := ccstrace.New().TraceSource("_rec x.a.x", os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Reason)

	// Output:
	// ##################################################################
	// Trans: _rec x.a.x -> _rec x.a.x
	// 0 | Recurse on: x 	-> _rec x.a.x
	// 1 | Action: In(a) 	-> x
	// #
	// Cycle found: terminating
	// CCS-process terminated in 1 transition(s)
	// cycle
}

// ExampleTracer_Run drives a term without printing the derivations.
func ExampleTracer_Run() {
	tracer := ccstrace.New()

	term, err := tracer.Parse(ccstrace.DefaultExample)
	if err != nil {
		log.Fatal(err)
	}

	result, err := tracer.Run(term, runner.NopHandler{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s --%s--> %s\n", result.History[0], result.Labels[0], result.Final)

	// Output:
	// (α.nil + β.nil) | (!α.nil + γ.nil) --τ(α)--> nil | nil
}
