// Package ast defines the expression tree consumed by the formatter.
//
// Every expression kind is a distinct struct type implementing the sealed
// Expression interface. The set is closed: only types declared in this
// package satisfy it, so a type switch over Expression in another package
// can enumerate every variant and treat anything else as a programming error.
//
// Nodes are plain values that are built once (usually by pkg/parser) and never
// mutated afterwards. Optional children are nil pointers or nil interfaces;
// no sentinel values are used.
//
// Example:
//
//	// a + 1 > 10
//	expr := &ast.ComparisonExpression{
//		Operator: ast.GreaterThan,
//		Left: &ast.ArithmeticBinaryExpression{
//			Operator: ast.Add,
//			Left:     ast.NewIdentifier("a"),
//			Right:    &ast.LongLiteral{Value: 1},
//		},
//		Right: &ast.LongLiteral{Value: 10},
//	}
package ast
