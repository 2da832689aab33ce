package format

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pseudomuto/exprfmt/pkg/ast"
)

// visitor carries the state of a single formatting call. The first error
// sticks; every method becomes a no-op afterwards so handlers can be written
// as plain string concatenation.
type visitor struct {
	f   *Formatter
	err error
}

func (f *Formatter) visitor() *visitor {
	return &visitor{f: f}
}

func (v *visitor) fail(err error) string {
	if v.err == nil {
		v.err = err
	}
	return ""
}

// expression dispatches on the node kind.
//
//nolint:gocyclo,cyclop,funlen // one case per node kind
func (v *visitor) expression(expr ast.Expression) string {
	if v.err != nil {
		return ""
	}
	if expr == nil || reflect.ValueOf(expr).IsNil() {
		return v.fail(unsupported(nil))
	}

	switch n := expr.(type) {
	case *ast.BooleanLiteral:
		return strconv.FormatBool(n.Value)
	case *ast.StringLiteral:
		return v.stringLiteral(n.Value)
	case *ast.CharLiteral:
		return "CHAR " + v.stringLiteral(n.Value)
	case *ast.BinaryLiteral:
		return binaryLiteral(n.Value)
	case *ast.LongLiteral:
		return strconv.FormatInt(n.Value, 10)
	case *ast.DoubleLiteral:
		return doubleLiteral(n.Value)
	case *ast.DecimalLiteral:
		return "DECIMAL '" + n.Value + "'"
	case *ast.GenericLiteral:
		return n.Type + " " + v.stringLiteral(n.Value)
	case *ast.TimeLiteral:
		return "TIME '" + n.Value + "'"
	case *ast.TimestampLiteral:
		return "TIMESTAMP '" + n.Value + "'"
	case *ast.IntervalLiteral:
		return v.intervalLiteral(n)
	case *ast.NullLiteral:
		return "null"

	case *ast.Identifier:
		return identifier(n)
	case *ast.DereferenceExpression:
		return v.expression(n.Base) + "." + v.expression(n.Field)
	case *ast.FieldReference:
		// the leading colon keeps this from ever parsing as user SQL
		return ":input(" + strconv.Itoa(n.FieldIndex) + ")"
	case *ast.Parameter:
		return v.parameter(n)

	case *ast.ArithmeticBinaryExpression:
		return v.binary(n.Operator, n.Left, n.Right)
	case *ast.ArithmeticUnaryExpression:
		return v.unary(n)
	case *ast.LogicalBinaryExpression:
		return v.binary(n.Operator, n.Left, n.Right)
	case *ast.ComparisonExpression:
		return v.binary(n.Operator, n.Left, n.Right)
	case *ast.NotExpression:
		return "(NOT " + v.expression(n.Value) + ")"
	case *ast.IsNullPredicate:
		return "(" + v.expression(n.Value) + " IS NULL)"
	case *ast.IsNotNullPredicate:
		return "(" + v.expression(n.Value) + " IS NOT NULL)"
	case *ast.BetweenPredicate:
		return "(" + v.expression(n.Value) + " BETWEEN " + v.expression(n.Min) + " AND " + v.expression(n.Max) + ")"
	case *ast.InPredicate:
		return "(" + v.expression(n.Value) + " IN " + v.expression(n.ValueList) + ")"
	case *ast.InListExpression:
		return "(" + v.join(n.Values, ", ") + ")"
	case *ast.LikePredicate:
		return v.like(n)
	case *ast.QuantifiedComparisonExpression:
		return v.quantifiedComparison(n)

	case *ast.FunctionCall:
		return v.functionCall(n)
	case *ast.LambdaExpression:
		return v.lambda(n)
	case *ast.LambdaArgumentDeclaration:
		return v.expression(n.Name)
	case *ast.BindExpression:
		return v.bind(n)
	case *ast.RatioMetricExpression:
		return ratioMetric(n)

	case *ast.Cast:
		fn := "CAST"
		if n.Safe {
			fn = "TRY_CAST"
		}
		return fn + "(" + v.expression(n.Expression) + " AS " + n.Type + ")"
	case *ast.CoalesceExpression:
		return "COALESCE(" + v.join(n.Operands, ", ") + ")"
	case *ast.NullIfExpression:
		return "NULLIF(" + v.expression(n.First) + ", " + v.expression(n.Second) + ")"
	case *ast.IfExpression:
		return v.ifExpression(n)
	case *ast.TryExpression:
		return "TRY(" + v.expression(n.InnerExpression) + ")"
	case *ast.ArrayConstructor:
		return "ARRAY[" + v.join(n.Values, ",") + "]"
	case *ast.SubscriptExpression:
		return v.expression(n.Base) + "[" + v.expression(n.Index) + "]"
	case *ast.AtTimeZone:
		return v.expression(n.Value) + " AT TIME ZONE " + v.expression(n.TimeZone)
	case *ast.Extract:
		return v.extract(n)
	case *ast.Row:
		return "ROW (" + v.join(n.Items, ", ") + ")"
	case *ast.GroupingOperation:
		return "GROUPING (" + v.join(n.GroupingColumns, ", ") + ")"

	case *ast.ExistsPredicate:
		return "(EXISTS " + v.expression(n.Subquery) + ")"
	case *ast.SubqueryExpression:
		return "(" + v.subquery(n.Query) + ")"

	case *ast.SearchedCaseExpression:
		return v.caseExpression(nil, n.WhenClauses, n.DefaultValue)
	case *ast.SimpleCaseExpression:
		if n.Operand == nil {
			return v.fail(unsupported(nil))
		}
		return v.caseExpression(n.Operand, n.WhenClauses, n.DefaultValue)

	default:
		return v.fail(unsupported(expr))
	}
}

// join formats exprs and joins them with sep.
func (v *visitor) join(exprs []ast.Expression, sep string) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, v.expression(e))
	}
	return strings.Join(parts, sep)
}

func (v *visitor) parameter(n *ast.Parameter) string {
	params := v.f.options.Parameters
	if !params.Present() {
		return "?"
	}

	if n.Position < 0 || n.Position >= params.Len() {
		return v.fail(&InvalidParameterIndexError{Index: n.Position, Max: params.Len() - 1})
	}
	return v.expression(params.values[n.Position])
}

func (v *visitor) subquery(stmt ast.Statement) string {
	if v.err != nil {
		return ""
	}

	out, err := v.f.statements().FormatStatement(stmt, v.f.options.Parameters)
	if err != nil {
		return v.fail(err)
	}
	return out
}
