// Package format renders expression trees from pkg/ast back into re-parseable
// SQL text.
//
// The output is not meant to reproduce the original spelling of a query. Every
// binary operator and predicate is fully parenthesized, keywords are emitted in
// a fixed case, and string literals that are not printable ASCII are written in
// the U&'...' form. What is guaranteed is that the text parses back to an
// equivalent tree (the internal :input(n) field reference is the deliberate
// exception).
//
// Key features:
//   - Literal escaping for strings, binary, numeric, temporal and interval literals
//   - Identifier and qualified name quoting
//   - Window specifications, frames, CASE, GROUP BY elements and ORDER BY items
//   - Positional parameter substitution
//   - A single-line SELECT renderer used for subqueries
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//	sql, err := formatter.Expression(expr)
//
//	// Substitute ? markers
//	formatter = format.New(&format.FormatterOptions{
//		Parameters: format.WithParameters(&ast.LongLiteral{Value: 42}),
//	})
//
//	// Functional API
//	sql, err = format.FormatExpression(expr, format.Parameters{})
//
//	var buf bytes.Buffer
//	err = format.Format(&buf, format.Defaults, nodes...)
//
// Errors are returned as *UnsupportedNodeError, *InvalidParameterIndexError,
// *InvalidEncodingError or *ExhaustivenessError and abort the whole call.
package format
