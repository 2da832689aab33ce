// Package parser provides a participle-based parser for the SQL expression dialect
// rendered by the format package.
//
// This package implements a parser using github.com/alecthomas/participle/v2 that reads scalar
// expressions and single-table SELECT statements into the pkg/ast tree. Its main job is to feed
// the formatter from text and to check that formatted output reads back to an equivalent tree.
//
// Key features:
//   - Arithmetic, logical and comparison operators with SQL precedence
//   - Predicates: BETWEEN, IN, LIKE, IS [NOT] NULL, IS DISTINCT FROM, EXISTS and quantified comparisons
//   - Function calls with DISTINCT, FILTER and OVER window specifications
//   - Literals, including U&'...' strings, X'..' binaries, intervals and typed literals
//   - SELECT with FROM, WHERE, GROUP BY (grouping sets, cube, rollup), HAVING, ORDER BY and LIMIT
//   - Case-insensitive keywords, `--` and `/* */` comments
//
// Basic usage:
//
//	// Parse one expression
//	expr, err := parser.ParseExpression(`price * (1 - discount) > ?`)
//
//	// Parse one query
//	query, err := parser.ParseQuery(`SELECT region, sum(amount) FROM sales GROUP BY region`)
//
//	// Parse a ; separated script of queries and expressions
//	nodes, err := parser.ParseString(`a + 1; SELECT * FROM t;`)
//
// Keywords are reserved: a column spelled like one must be written as a quoted identifier.
package parser
