package format

import (
	"strings"

	"github.com/pseudomuto/exprfmt/pkg/ast"
	"github.com/pseudomuto/exprfmt/pkg/compare"
)

func (v *visitor) functionCall(n *ast.FunctionCall) string {
	args := v.join(n.Arguments, ", ")
	if len(n.Arguments) == 0 && strings.EqualFold(n.Name.Suffix(), "count") {
		args = "*"
	}
	if n.Distinct {
		args = "DISTINCT " + args
	}

	out := qualifiedName(n.Name) + "(" + args + ")"
	if n.Filter != nil {
		out += " FILTER (WHERE " + v.expression(n.Filter) + ")"
	}
	if n.Window != nil {
		out += " OVER " + v.window(n.Window)
	}
	return out
}

func (v *visitor) lambda(n *ast.LambdaExpression) string {
	args := make([]string, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		args = append(args, v.expression(arg))
	}
	return "(" + strings.Join(args, ", ") + ") -> " + v.expression(n.Body)
}

func (v *visitor) bind(n *ast.BindExpression) string {
	var sb strings.Builder
	sb.WriteString(`"$INTERNAL$BIND"(`)
	for _, value := range n.Values {
		sb.WriteString(v.expression(value) + ", ")
	}
	sb.WriteString(v.expression(n.Function) + ")")
	return sb.String()
}

func ratioMetric(n *ast.RatioMetricExpression) string {
	if n.Aggregate == nil {
		return n.Function.String() + "()"
	}
	return n.Function.String() + "(" + n.Aggregate.String() + "(*))"
}

// caseExpression renders searched (operand == nil) and simple CASE forms.
func (v *visitor) caseExpression(operand ast.Expression, whens []*ast.WhenClause, def ast.Expression) string {
	parts := []string{"CASE"}
	if operand != nil {
		parts = append(parts, v.expression(operand))
	}

	for _, when := range whens {
		if when == nil {
			return v.fail(unsupported(nil))
		}
		parts = append(parts, "WHEN "+v.expression(when.Operand)+" THEN "+v.expression(when.Result))
	}

	if def != nil {
		parts = append(parts, "ELSE", v.expression(def))
	}
	parts = append(parts, "END")

	return "(" + strings.Join(parts, " ") + ")"
}

// window renders only the clauses that are present, in fixed order.
func (v *visitor) window(w *ast.Window) string {
	if w == nil {
		return v.fail(unsupported(nil))
	}

	var parts []string

	if len(w.PartitionBy) > 0 {
		parts = append(parts, "PARTITION BY "+v.join(w.PartitionBy, ", "))
	}
	if w.OrderBy != nil {
		parts = append(parts, v.orderBy(w.OrderBy))
	}
	if w.Frame != nil {
		parts = append(parts, v.frame(w.Frame))
	}

	return "(" + strings.Join(parts, " ") + ")"
}

func (v *visitor) frame(fr *ast.WindowFrame) string {
	if fr == nil {
		return v.fail(unsupported(nil))
	}

	typ, ok := fr.Type.Token()
	if !ok {
		return v.fail(&ExhaustivenessError{Kind: "frame type", Value: fr.Type})
	}

	if fr.End != nil {
		return typ + " BETWEEN " + v.frameBound(fr.Start) + " AND " + v.frameBound(fr.End)
	}
	return typ + " " + v.frameBound(fr.Start)
}

func (v *visitor) frameBound(b *ast.FrameBound) string {
	if b == nil {
		return v.fail(unsupported(nil))
	}

	switch b.Type {
	case ast.UnboundedPreceding:
		return "UNBOUNDED PRECEDING"
	case ast.Preceding:
		return v.expression(b.Value) + " PRECEDING"
	case ast.CurrentRow:
		return "CURRENT ROW"
	case ast.Following:
		return v.expression(b.Value) + " FOLLOWING"
	case ast.UnboundedFollowing:
		return "UNBOUNDED FOLLOWING"
	default:
		return v.fail(&ExhaustivenessError{Kind: "frame bound", Value: b.Type})
	}
}

func (v *visitor) orderBy(o *ast.OrderBy) string {
	if o == nil {
		return v.fail(unsupported(nil))
	}
	return "ORDER BY " + v.sortItems(o.SortItems)
}

func (v *visitor) sortItems(items []*ast.SortItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, v.sortItem(item))
	}
	return strings.Join(parts, ", ")
}

func (v *visitor) sortItem(item *ast.SortItem) string {
	if item == nil {
		return v.fail(unsupported(nil))
	}

	out := v.expression(item.SortKey)

	switch item.Ordering {
	case ast.Ascending:
		out += " ASC"
	case ast.Descending:
		out += " DESC"
	default:
		return v.fail(&ExhaustivenessError{Kind: "ordering", Value: item.Ordering})
	}

	switch item.NullOrdering {
	case ast.NullsFirst:
		out += " NULLS FIRST"
	case ast.NullsLast:
		out += " NULLS LAST"
	case ast.NullsUndefined:
	default:
		return v.fail(&ExhaustivenessError{Kind: "null ordering", Value: item.NullOrdering})
	}

	return out
}

func (v *visitor) groupBy(elements []ast.GroupingElement) string {
	parts := make([]string, 0, len(elements))

	for _, el := range elements {
		switch el := el.(type) {
		case *ast.SimpleGroupBy:
			if el == nil {
				return v.fail(unsupported(nil))
			}
			columns := distinct(el.Columns)
			if len(columns) == 1 {
				parts = append(parts, v.expression(columns[0]))
			} else {
				parts = append(parts, "("+v.join(columns, ", ")+")")
			}
		case *ast.GroupingSets:
			if el == nil {
				return v.fail(unsupported(nil))
			}
			sets := make([]string, 0, len(el.Sets))
			for _, set := range el.Sets {
				sets = append(sets, groupingSet(set))
			}
			parts = append(parts, "GROUPING SETS ("+strings.Join(sets, ", ")+")")
		case *ast.Cube:
			if el == nil {
				return v.fail(unsupported(nil))
			}
			parts = append(parts, "CUBE "+groupingSet(el.Columns))
		case *ast.Rollup:
			if el == nil {
				return v.fail(unsupported(nil))
			}
			parts = append(parts, "ROLLUP "+groupingSet(el.Columns))
		default:
			return v.fail(unsupported(el))
		}
	}

	return strings.Join(parts, ", ")
}

// distinct drops repeated columns, keeping the first occurrence of each.
func distinct(columns []ast.Expression) []ast.Expression {
	return compare.Distinct(columns, func(a, b ast.Expression) bool {
		return ast.Identical(a, b)
	})
}

func groupingSet(names []ast.QualifiedName) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// OrderBy renders ORDER BY <sort items>.
func (f *Formatter) OrderBy(o *ast.OrderBy) (string, error) {
	v := f.visitor()
	out := v.orderBy(o)
	if v.err != nil {
		return "", v.err
	}
	return out, nil
}

// SortItems renders a comma separated sort item list.
func (f *Formatter) SortItems(items []*ast.SortItem) (string, error) {
	v := f.visitor()
	out := v.sortItems(items)
	if v.err != nil {
		return "", v.err
	}
	return out, nil
}

// GroupBy renders the elements of a GROUP BY clause without the keyword.
func (f *Formatter) GroupBy(elements []ast.GroupingElement) (string, error) {
	v := f.visitor()
	out := v.groupBy(elements)
	if v.err != nil {
		return "", v.err
	}
	return out, nil
}

// Window renders a parenthesized window specification.
func (f *Formatter) Window(w *ast.Window) (string, error) {
	v := f.visitor()
	out := v.window(w)
	if v.err != nil {
		return "", v.err
	}
	return out, nil
}
