package format

import (
	"strings"

	"github.com/pseudomuto/exprfmt/pkg/ast"
)

// operator is any enumerated operator that knows its SQL spelling.
type operator interface {
	Token() (string, bool)
	String() string
}

// binary renders (left op right). Every binary form is parenthesized, so no
// precedence table is needed to keep the output unambiguous.
func (v *visitor) binary(op operator, left, right ast.Expression) string {
	tok, ok := op.Token()
	if !ok {
		return v.fail(&ExhaustivenessError{Kind: "binary operator", Value: op})
	}
	return "(" + v.expression(left) + " " + tok + " " + v.expression(right) + ")"
}

func (v *visitor) unary(n *ast.ArithmeticUnaryExpression) string {
	value := v.expression(n.Value)

	switch n.Sign {
	case ast.Minus:
		// "--" would start a line comment
		if strings.HasPrefix(value, "-") {
			return "- " + value
		}
		return "-" + value
	case ast.Plus:
		return "+" + value
	default:
		return v.fail(&ExhaustivenessError{Kind: "sign", Value: n.Sign})
	}
}

func (v *visitor) like(n *ast.LikePredicate) string {
	out := "(" + v.expression(n.Value) + " LIKE " + v.expression(n.Pattern)
	if n.Escape != nil {
		out += " ESCAPE " + v.expression(n.Escape)
	}
	return out + ")"
}

func (v *visitor) quantifiedComparison(n *ast.QuantifiedComparisonExpression) string {
	op, ok := n.Operator.Token()
	if !ok {
		return v.fail(&ExhaustivenessError{Kind: "comparison operator", Value: n.Operator})
	}
	quantifier, ok := n.Quantifier.Token()
	if !ok {
		return v.fail(&ExhaustivenessError{Kind: "quantifier", Value: n.Quantifier})
	}

	return "(" + v.expression(n.Value) + " " + op + " " + quantifier + " " + v.expression(n.Subquery) + ")"
}

func (v *visitor) ifExpression(n *ast.IfExpression) string {
	out := "IF(" + v.expression(n.Condition) + ", " + v.expression(n.TrueValue)
	if n.FalseValue != nil {
		out += ", " + v.expression(n.FalseValue)
	}
	return out + ")"
}

func (v *visitor) extract(n *ast.Extract) string {
	field, ok := n.Field.Token()
	if !ok {
		return v.fail(&ExhaustivenessError{Kind: "extract field", Value: n.Field})
	}
	return "EXTRACT(" + field + " FROM " + v.expression(n.Expression) + ")"
}
