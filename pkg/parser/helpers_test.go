package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pseudomuto/exprfmt/pkg/ast"
	"github.com/pseudomuto/exprfmt/pkg/format"
	. "github.com/pseudomuto/exprfmt/pkg/parser"
)

func id(name string) *ast.Identifier { return ast.NewIdentifier(name) }

func long(v int64) *ast.LongLiteral { return &ast.LongLiteral{Value: v} }

func str(v string) *ast.StringLiteral { return &ast.StringLiteral{Value: v} }

func binary(op ast.ArithmeticOperator, left, right ast.Expression) *ast.ArithmeticBinaryExpression {
	return &ast.ArithmeticBinaryExpression{Operator: op, Left: left, Right: right}
}

func compare(op ast.ComparisonOperator, left, right ast.Expression) *ast.ComparisonExpression {
	return &ast.ComparisonExpression{Operator: op, Left: left, Right: right}
}

func call(name string, args ...ast.Expression) *ast.FunctionCall {
	if args == nil {
		args = []ast.Expression{}
	}
	return &ast.FunctionCall{Name: ast.NewQualifiedName(name), Arguments: args}
}

func selectOne(items ...ast.Expression) *ast.Query {
	q := &ast.Query{}
	for _, item := range items {
		q.Select = append(q.Select, &ast.SingleColumn{Expression: item})
	}
	return q
}

// requireRoundTrip formats the parsed form of sql and checks that the output parses back to the
// same tree and formats to the same text.
func requireRoundTrip(t *testing.T, sql string) string {
	t.Helper()

	first, err := ParseExpression(sql)
	require.NoError(t, err)

	out, err := format.New(format.Defaults).Expression(first)
	require.NoError(t, err)

	second, err := ParseExpression(out)
	require.NoError(t, err, "formatted output does not parse: %s", out)
	require.True(t, ast.Identical(first, second), "tree changed after formatting: %s", out)

	again, err := format.New(format.Defaults).Expression(second)
	require.NoError(t, err)
	require.Equal(t, out, again)

	return out
}
