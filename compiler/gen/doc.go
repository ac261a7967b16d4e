// Package gen generates documents from schemas.
//
// A run walks the schema depth-first on a single goroutine. Fields are
// generated in declared order, counted entities and arrays repeat their
// body, and a context stack tracks the current index, count, entity name and
// field name for placeholders:
//
//	${index}        1-based index of the innermost repetition
//	${index(2)}     index of the enclosing repetition
//	${count}        size of the innermost repetition, 1 outside any
//	${entity.name}  name of the innermost counted top-level entity, "" outside one
//	${field.name}   name of the current field
//
// Other placeholders resolve to custom keys registered in a jgd.Registry and
// then to the Provider, which is addressed as ${category.method}.
//
// # Determinism
//
// All randomness comes from one seeded generator per run (see NewRand). The
// registry is snapshotted when the run starts. The same schema, seed and
// registry contents therefore always produce the same document. Counts and
// numeric ranges with equal bounds never draw from the generator.
//
// # Budgets
//
// MaxDepth bounds nesting and MaxNodes bounds the number of generated values.
// A count that cannot fit in the remaining node budget fails before any
// repetition starts. unique_by retries are bounded by MaxUniqueAttempts.
//
// # Error Handling
//
// Errors use the taxonomy of package jgd and carry the path of the failing
// node:
//
//	v, err := gen.Generate(ctx, s, gen.WithSeed(7))
//	switch {
//	case jgd.IsPatternError(err):
//	    // unknown or malformed placeholder
//	case errors.Is(err, jgd.ErrBudgetExceeded):
//	    // schema too large for the configured budget
//	}
package gen
