/*
Package ccstrace traces the operational semantics of CCS, Milner's Calculus of
Communicating Systems.

A term is parsed from its textual notation and then driven one transition at a
time. Each transition comes with the derivation that justifies it, from the
root operator down to the prefix (or pair of prefixes) that fired. Tracing
stops when the term cannot move or when it reaches a term it has already
visited.

# Notation

	nil             inaction
	a.P  !a.P       input and output prefix
	P + Q           choice
	P | Q           parallel composition
	P\a             restriction of channel a
	P[b/a,...]      relabeling of a to b
	_rec x.P        recursion binding x in P

# Semantics

The engine is deterministic and first-found: a synchronization between the two
sides of a composition beats interleaving, the left side beats the right, and
a choice only takes its right branch when the left one cannot move.

# Usage

	tracer := ccstrace.New()

	result, err := tracer.TraceSource("(α.nil + β.nil) | (!α.nil + γ.nil)", os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Reason, result.Transitions)
*/
package ccstrace
