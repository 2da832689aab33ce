package format

import (
	"strconv"
	"strings"

	"github.com/pseudomuto/exprfmt/pkg/ast"
)

func (v *visitor) statement(stmt ast.Statement) string {
	if v.err != nil {
		return ""
	}

	switch s := stmt.(type) {
	case *ast.Query:
		if s == nil {
			return v.fail(unsupported(nil))
		}
		return v.query(s)
	default:
		return v.fail(unsupported(stmt))
	}
}

// query renders a SELECT on a single line so it can be embedded in
// parenthesized subquery expressions.
func (v *visitor) query(q *ast.Query) string {
	selectLine := "SELECT"
	if q.Distinct {
		selectLine += " DISTINCT"
	}

	items := make([]string, 0, len(q.Select))
	for _, item := range q.Select {
		items = append(items, v.selectItem(item))
	}
	parts := []string{selectLine + " " + strings.Join(items, ", ")}

	// FROM clause
	if q.From != nil {
		from := "FROM " + qualifiedName(q.From.Name)
		if q.From.Alias != nil {
			from += " AS " + identifier(q.From.Alias)
		}
		parts = append(parts, from)
	}

	// WHERE clause
	if q.Where != nil {
		parts = append(parts, "WHERE "+v.expression(q.Where))
	}

	// GROUP BY clause
	if len(q.GroupBy) > 0 {
		parts = append(parts, "GROUP BY "+v.groupBy(q.GroupBy))
	}

	// HAVING clause
	if q.Having != nil {
		parts = append(parts, "HAVING "+v.expression(q.Having))
	}

	// ORDER BY clause
	if q.OrderBy != nil {
		parts = append(parts, v.orderBy(q.OrderBy))
	}

	// LIMIT clause
	if q.Limit != nil {
		parts = append(parts, "LIMIT "+strconv.FormatInt(*q.Limit, 10))
	}

	return strings.Join(parts, " ")
}

func (v *visitor) selectItem(item ast.SelectItem) string {
	switch item := item.(type) {
	case *ast.SingleColumn:
		if item == nil {
			return v.fail(unsupported(nil))
		}
		out := v.expression(item.Expression)
		if item.Alias != nil {
			out += " AS " + identifier(item.Alias)
		}
		return out
	case *ast.AllColumns:
		if item == nil {
			return v.fail(unsupported(nil))
		}
		if item.Prefix != nil {
			return item.Prefix.String() + ".*"
		}
		return "*"
	default:
		return v.fail(unsupported(item))
	}
}
