/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing CCS terms.

It is an alternative to the textual notation when terms are generated or
embedded in tests, with the compiler checking what the parser would.

Example usage:

	// _rec x.(a.!b.x + c.nil) | !a.nil
	vending := dsl.Rec("x", dsl.Sum(
		dsl.In("a").Out("b").Loop("x"),
		dsl.In("c").Nil(),
	))
	system := dsl.Par(vending, dsl.Out("a").Nil())
*/
package dsl
