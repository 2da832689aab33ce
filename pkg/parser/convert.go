package parser

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pseudomuto/exprfmt/pkg/ast"
)

// converter lowers the participle grammar into pkg/ast nodes. It walks the tree in source order so
// that `?` placeholders are numbered left to right.
type converter struct {
	params int
}

func (c *converter) scriptItem(item *scriptItem) (ast.Node, error) {
	if item.Query != nil {
		return c.query(item.Query)
	}

	return c.expression(item.Expression)
}

func (c *converter) query(q *query) (*ast.Query, error) {
	out := &ast.Query{Distinct: q.Distinct}

	for _, item := range q.Items {
		si, err := c.selectItem(item)
		if err != nil {
			return nil, err
		}
		out.Select = append(out.Select, si)
	}

	if q.From != nil {
		out.From = &ast.Table{Name: q.From.Name.ast()}
		if q.From.Alias != nil {
			out.From.Alias = q.From.Alias.ast()
		}
	}

	var err error
	if q.Where != nil {
		if out.Where, err = c.expression(q.Where); err != nil {
			return nil, err
		}
	}

	for _, el := range q.GroupBy {
		ge, err := c.groupingElement(el)
		if err != nil {
			return nil, err
		}
		out.GroupBy = append(out.GroupBy, ge)
	}

	if q.Having != nil {
		if out.Having, err = c.expression(q.Having); err != nil {
			return nil, err
		}
	}

	if len(q.OrderBy) > 0 {
		if out.OrderBy, err = c.orderBy(q.OrderBy); err != nil {
			return nil, err
		}
	}

	if q.Limit != nil {
		limit, err := strconv.ParseInt(*q.Limit, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid LIMIT %s", *q.Limit)
		}
		out.Limit = &limit
	}

	return out, nil
}

func (c *converter) selectItem(item *selectItem) (ast.SelectItem, error) {
	if item.All != nil {
		all := &ast.AllColumns{}
		if len(item.All.Prefix) > 0 {
			prefix := qualifiedName{Parts: item.All.Prefix}.ast()
			all.Prefix = &prefix
		}
		return all, nil
	}

	expr, err := c.expression(item.Column.Expression)
	if err != nil {
		return nil, err
	}

	col := &ast.SingleColumn{Expression: expr}
	if item.Column.Alias != nil {
		col.Alias = item.Column.Alias.ast()
	}

	return col, nil
}

func (c *converter) groupingElement(el *groupingElement) (ast.GroupingElement, error) {
	switch {
	case el.Sets != nil:
		sets := make([][]ast.QualifiedName, 0, len(el.Sets))
		for _, set := range el.Sets {
			sets = append(sets, set.ast())
		}
		return &ast.GroupingSets{Sets: sets}, nil
	case el.Cube != nil:
		return &ast.Cube{Columns: el.Cube.ast()}, nil
	case el.Rollup != nil:
		return &ast.Rollup{Columns: el.Rollup.ast()}, nil
	case el.Single != nil:
		expr, err := c.expression(el.Single)
		if err != nil {
			return nil, err
		}
		return &ast.SimpleGroupBy{Columns: []ast.Expression{expr}}, nil
	default:
		columns, err := c.expressions(el.Multi)
		if err != nil {
			return nil, err
		}
		return &ast.SimpleGroupBy{Columns: columns}, nil
	}
}

func (c *converter) orderBy(items []*sortItem) (*ast.OrderBy, error) {
	out := &ast.OrderBy{SortItems: make([]*ast.SortItem, 0, len(items))}
	for _, item := range items {
		key, err := c.expression(item.Key)
		if err != nil {
			return nil, err
		}

		si := &ast.SortItem{SortKey: key, Ordering: ast.Ascending}
		if item.Ordering != nil && strings.EqualFold(*item.Ordering, "DESC") {
			si.Ordering = ast.Descending
		}

		if item.Nulls != nil {
			si.NullOrdering = ast.NullsLast
			if strings.EqualFold(*item.Nulls, "FIRST") {
				si.NullOrdering = ast.NullsFirst
			}
		}

		out.SortItems = append(out.SortItems, si)
	}

	return out, nil
}

func (c *converter) expressions(exprs []*expression) ([]ast.Expression, error) {
	out := make([]ast.Expression, 0, len(exprs))
	for _, e := range exprs {
		expr, err := c.expression(e)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}

	return out, nil
}

func (c *converter) expression(e *expression) (ast.Expression, error) {
	return c.or(e.Or)
}

func (c *converter) or(e *orExpr) (ast.Expression, error) {
	left, err := c.and(e.Left)
	if err != nil {
		return nil, err
	}

	for _, r := range e.Right {
		right, err := c.and(r)
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalBinaryExpression{Operator: ast.Or, Left: left, Right: right}
	}

	return left, nil
}

func (c *converter) and(e *andExpr) (ast.Expression, error) {
	left, err := c.not(e.Left)
	if err != nil {
		return nil, err
	}

	for _, r := range e.Right {
		right, err := c.not(r)
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalBinaryExpression{Operator: ast.And, Left: left, Right: right}
	}

	return left, nil
}

func (c *converter) not(e *notExpr) (ast.Expression, error) {
	if e.Not != nil {
		value, err := c.not(e.Not)
		if err != nil {
			return nil, err
		}
		return &ast.NotExpression{Value: value}, nil
	}

	return c.predicate(e.Predicate)
}

func (c *converter) predicate(p *predicate) (ast.Expression, error) {
	value, err := c.value(p.Value)
	if err != nil || p.Tail == nil {
		return value, err
	}

	var (
		out    ast.Expression
		negate bool
		tail   = p.Tail
	)

	switch {
	case tail.Quantified != nil:
		op, _ := ast.ComparisonOperatorFor(tail.Quantified.Operator)
		quantifier, ok := ast.QuantifierFor(tail.Quantified.Quantifier)
		if !ok {
			return nil, errors.Errorf("unknown quantifier %s", tail.Quantified.Quantifier)
		}

		sub, err := c.subquery(tail.Quantified.Subquery)
		if err != nil {
			return nil, err
		}

		out = &ast.QuantifiedComparisonExpression{Operator: op, Quantifier: quantifier, Value: value, Subquery: sub}
	case tail.Comparison != nil:
		op := ast.IsDistinctFrom
		if !tail.Comparison.Distinct {
			op, _ = ast.ComparisonOperatorFor(tail.Comparison.Operator)
		}

		right, err := c.value(tail.Comparison.Right)
		if err != nil {
			return nil, err
		}

		out = &ast.ComparisonExpression{Operator: op, Left: value, Right: right}
	case tail.IsNull != nil:
		if tail.IsNull.Not {
			return &ast.IsNotNullPredicate{Value: value}, nil
		}
		return &ast.IsNullPredicate{Value: value}, nil
	case tail.Between != nil:
		negate = tail.Between.Not

		minValue, err := c.value(tail.Between.Min)
		if err != nil {
			return nil, err
		}

		maxValue, err := c.value(tail.Between.Max)
		if err != nil {
			return nil, err
		}

		out = &ast.BetweenPredicate{Value: value, Min: minValue, Max: maxValue}
	case tail.In != nil:
		negate = tail.In.Not

		var list ast.Expression
		if tail.In.Subquery != nil {
			list, err = c.subquery(tail.In.Subquery)
		} else {
			var values []ast.Expression
			values, err = c.expressions(tail.In.Values)
			list = &ast.InListExpression{Values: values}
		}
		if err != nil {
			return nil, err
		}

		out = &ast.InPredicate{Value: value, ValueList: list}
	case tail.Like != nil:
		negate = tail.Like.Not

		pattern, err := c.value(tail.Like.Pattern)
		if err != nil {
			return nil, err
		}

		like := &ast.LikePredicate{Value: value, Pattern: pattern}
		if tail.Like.Escape != nil {
			if like.Escape, err = c.value(tail.Like.Escape); err != nil {
				return nil, err
			}
		}

		out = like
	}

	if negate {
		out = &ast.NotExpression{Value: out}
	}

	return out, nil
}

func (c *converter) value(e *valueExpr) (ast.Expression, error) {
	left, err := c.term(e.Left)
	if err != nil {
		return nil, err
	}

	for _, r := range e.Rest {
		right, err := c.term(r.Right)
		if err != nil {
			return nil, err
		}

		op, _ := ast.ArithmeticOperatorFor(r.Operator)
		left = &ast.ArithmeticBinaryExpression{Operator: op, Left: left, Right: right}
	}

	return left, nil
}

func (c *converter) term(e *term) (ast.Expression, error) {
	left, err := c.unary(e.Left)
	if err != nil {
		return nil, err
	}

	for _, r := range e.Rest {
		right, err := c.unary(r.Right)
		if err != nil {
			return nil, err
		}

		op, _ := ast.ArithmeticOperatorFor(r.Operator)
		left = &ast.ArithmeticBinaryExpression{Operator: op, Left: left, Right: right}
	}

	return left, nil
}

func (c *converter) unary(e *unaryExpr) (ast.Expression, error) {
	if e.Operand == nil {
		return c.postfix(e.Value)
	}

	value, err := c.unary(e.Operand)
	if err != nil {
		return nil, err
	}

	sign := ast.Plus
	if e.Sign == "-" {
		sign = ast.Minus
	}

	return &ast.ArithmeticUnaryExpression{Sign: sign, Value: value}, nil
}

func (c *converter) postfix(e *postfixExpr) (ast.Expression, error) {
	base, err := c.primary(e.Primary)
	if err != nil {
		return nil, err
	}

	for _, s := range e.Suffixes {
		switch {
		case s.Index != nil:
			index, err := c.expression(s.Index)
			if err != nil {
				return nil, err
			}
			base = &ast.SubscriptExpression{Base: base, Index: index}
		case s.Field != nil:
			base = &ast.DereferenceExpression{Base: base, Field: s.Field.ast()}
		default:
			tz, err := c.primary(s.TimeZone)
			if err != nil {
				return nil, err
			}
			base = &ast.AtTimeZone{Value: base, TimeZone: tz}
		}
	}

	return base, nil
}

//nolint:gocyclo,cyclop,funlen // one case per primary form
func (c *converter) primary(p *primary) (ast.Expression, error) {
	switch {
	case p.Lambda != nil:
		return c.lambda(p.Lambda)
	case p.Subquery != nil:
		return c.subquery(p.Subquery)
	case p.Paren != nil:
		return c.expression(p.Paren)
	case p.Case != nil:
		return c.caseExpression(p.Case)
	case p.Cast != nil:
		expr, err := c.expression(p.Cast.Expression)
		if err != nil {
			return nil, err
		}
		return &ast.Cast{
			Expression: expr,
			Type:       p.Cast.Type.String(),
			Safe:       strings.EqualFold(p.Cast.Function, "TRY_CAST"),
		}, nil
	case p.Extract != nil:
		field, ok := ast.ExtractFieldFor(p.Extract.Field)
		if !ok {
			return nil, errors.Errorf("unknown EXTRACT field %s", p.Extract.Field)
		}

		expr, err := c.expression(p.Extract.Expression)
		if err != nil {
			return nil, err
		}
		return &ast.Extract{Field: field, Expression: expr}, nil
	case p.Exists != nil:
		sub, err := c.subquery(p.Exists)
		if err != nil {
			return nil, err
		}
		return &ast.ExistsPredicate{Subquery: sub}, nil
	case p.Coalesce != nil:
		operands, err := c.expressions(p.Coalesce)
		if err != nil {
			return nil, err
		}
		return &ast.CoalesceExpression{Operands: operands}, nil
	case p.NullIf != nil:
		first, err := c.expression(p.NullIf.First)
		if err != nil {
			return nil, err
		}

		second, err := c.expression(p.NullIf.Second)
		if err != nil {
			return nil, err
		}
		return &ast.NullIfExpression{First: first, Second: second}, nil
	case p.If != nil:
		return c.ifExpression(p.If)
	case p.Try != nil:
		inner, err := c.expression(p.Try)
		if err != nil {
			return nil, err
		}
		return &ast.TryExpression{InnerExpression: inner}, nil
	case p.Row != nil:
		items, err := c.expressions(p.Row)
		if err != nil {
			return nil, err
		}
		return &ast.Row{Items: items}, nil
	case p.Array != nil:
		values, err := c.expressions(p.Array.Values)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayConstructor{Values: values}, nil
	case p.Grouping != nil:
		columns, err := c.expressions(p.Grouping)
		if err != nil {
			return nil, err
		}
		return &ast.GroupingOperation{GroupingColumns: columns}, nil
	case p.Interval != nil:
		return p.Interval.ast()
	case p.Char != nil:
		value, err := p.Char.value()
		if err != nil {
			return nil, err
		}
		return &ast.CharLiteral{Value: value}, nil
	case p.Decimal != nil:
		return &ast.DecimalLiteral{Value: unquote(*p.Decimal, '\'')}, nil
	case p.Time != nil:
		return &ast.TimeLiteral{Value: unquote(*p.Time, '\'')}, nil
	case p.Timestamp != nil:
		return &ast.TimestampLiteral{Value: unquote(*p.Timestamp, '\'')}, nil
	case p.Binary != nil:
		raw := (*p.Binary)[2 : len(*p.Binary)-1]
		value, err := hex.DecodeString(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid binary literal %s", *p.Binary)
		}
		return &ast.BinaryLiteral{Value: value}, nil
	case p.String != nil:
		value, err := p.String.value()
		if err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Value: value}, nil
	case p.Float != nil:
		value, err := strconv.ParseFloat(*p.Float, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %s", *p.Float)
		}
		return &ast.DoubleLiteral{Value: value}, nil
	case p.Int != nil:
		value, err := strconv.ParseInt(*p.Int, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %s", *p.Int)
		}
		return &ast.LongLiteral{Value: value}, nil
	case p.Boolean != nil:
		return &ast.BooleanLiteral{Value: strings.EqualFold(*p.Boolean, "TRUE")}, nil
	case p.Null:
		return &ast.NullLiteral{}, nil
	case p.Parameter:
		param := &ast.Parameter{Position: c.params}
		c.params++
		return param, nil
	case p.Typed != nil:
		value, err := p.Typed.Value.value()
		if err != nil {
			return nil, err
		}
		return &ast.GenericLiteral{Type: p.Typed.Type, Value: value}, nil
	case p.Function != nil:
		return c.functionCall(p.Function)
	default:
		return p.Ident.ast(), nil
	}
}

func (c *converter) subquery(q *query) (ast.Expression, error) {
	stmt, err := c.query(q)
	if err != nil {
		return nil, err
	}

	return &ast.SubqueryExpression{Query: stmt}, nil
}

func (c *converter) lambda(l *lambdaExpr) (ast.Expression, error) {
	args := make([]*ast.LambdaArgumentDeclaration, 0, len(l.Arguments))
	for _, a := range l.Arguments {
		args = append(args, &ast.LambdaArgumentDeclaration{Name: a.ast()})
	}

	body, err := c.expression(l.Body)
	if err != nil {
		return nil, err
	}

	return &ast.LambdaExpression{Arguments: args, Body: body}, nil
}

func (c *converter) caseExpression(e *caseExpr) (ast.Expression, error) {
	var (
		operand ast.Expression
		err     error
	)

	if e.Operand != nil {
		if operand, err = c.expression(e.Operand); err != nil {
			return nil, err
		}
	}

	whens := make([]*ast.WhenClause, 0, len(e.Whens))
	for _, w := range e.Whens {
		when, err := c.expression(w.Operand)
		if err != nil {
			return nil, err
		}

		result, err := c.expression(w.Result)
		if err != nil {
			return nil, err
		}

		whens = append(whens, &ast.WhenClause{Operand: when, Result: result})
	}

	var def ast.Expression
	if e.Default != nil {
		if def, err = c.expression(e.Default); err != nil {
			return nil, err
		}
	}

	if operand != nil {
		return &ast.SimpleCaseExpression{Operand: operand, WhenClauses: whens, DefaultValue: def}, nil
	}

	return &ast.SearchedCaseExpression{WhenClauses: whens, DefaultValue: def}, nil
}

func (c *converter) ifExpression(e *ifExpr) (ast.Expression, error) {
	cond, err := c.expression(e.Condition)
	if err != nil {
		return nil, err
	}

	trueValue, err := c.expression(e.True)
	if err != nil {
		return nil, err
	}

	out := &ast.IfExpression{Condition: cond, TrueValue: trueValue}
	if e.False != nil {
		if out.FalseValue, err = c.expression(e.False); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (c *converter) functionCall(f *functionCall) (ast.Expression, error) {
	args, err := c.expressions(f.Arguments)
	if err != nil {
		return nil, err
	}

	call := &ast.FunctionCall{Name: f.Name.ast(), Arguments: args, Distinct: f.Distinct}
	if f.Filter != nil {
		if call.Filter, err = c.expression(f.Filter); err != nil {
			return nil, err
		}
	}

	if f.Over != nil {
		if call.Window, err = c.window(f.Over); err != nil {
			return nil, err
		}
	}

	return call, nil
}

func (c *converter) window(w *window) (*ast.Window, error) {
	partition, err := c.expressions(w.PartitionBy)
	if err != nil {
		return nil, err
	}

	out := &ast.Window{}
	if len(partition) > 0 {
		out.PartitionBy = partition
	}

	if len(w.OrderBy) > 0 {
		if out.OrderBy, err = c.orderBy(w.OrderBy); err != nil {
			return nil, err
		}
	}

	if w.Frame != nil {
		frameType, ok := ast.FrameTypeFor(w.Frame.Type)
		if !ok {
			return nil, errors.Errorf("unknown frame type %s", w.Frame.Type)
		}

		out.Frame = &ast.WindowFrame{Type: frameType}
		if w.Frame.Only != nil {
			if out.Frame.Start, err = c.frameBound(w.Frame.Only); err != nil {
				return nil, err
			}
			return out, nil
		}

		if out.Frame.Start, err = c.frameBound(w.Frame.Start); err != nil {
			return nil, err
		}

		if out.Frame.End, err = c.frameBound(w.Frame.End); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (c *converter) frameBound(b *frameBound) (*ast.FrameBound, error) {
	switch {
	case b.Unbounded != nil:
		if strings.EqualFold(*b.Unbounded, "PRECEDING") {
			return &ast.FrameBound{Type: ast.UnboundedPreceding}, nil
		}
		return &ast.FrameBound{Type: ast.UnboundedFollowing}, nil
	case b.Current:
		return &ast.FrameBound{Type: ast.CurrentRow}, nil
	}

	value, err := c.value(b.Value)
	if err != nil {
		return nil, err
	}

	bound := &ast.FrameBound{Type: ast.Following, Value: value}
	if strings.EqualFold(b.Direction, "PRECEDING") {
		bound.Type = ast.Preceding
	}

	return bound, nil
}

func (i *identTok) ast() *ast.Identifier {
	if strings.HasPrefix(i.Value, `"`) {
		return &ast.Identifier{Value: unquote(i.Value, '"'), Delimited: true}
	}

	return ast.NewIdentifier(i.Value)
}

func (n qualifiedName) ast() ast.QualifiedName {
	parts := make([]string, 0, len(n.Parts))
	for _, p := range n.Parts {
		parts = append(parts, p.ast().Value)
	}

	return ast.NewQualifiedName(parts...)
}

func (l *nameList) ast() []ast.QualifiedName {
	names := make([]ast.QualifiedName, 0, len(l.Names))
	for _, n := range l.Names {
		names = append(names, n.ast())
	}

	return names
}

func (s *stringTok) value() (string, error) {
	if s.Plain != nil {
		return unquote(*s.Plain, '\''), nil
	}

	// drop the U& prefix
	return decodeUnicode(unquote((*s.Unicode)[2:], '\''))
}

func (i *intervalExpr) ast() (ast.Expression, error) {
	start, ok := ast.IntervalFieldFor(i.Start)
	if !ok {
		return nil, errors.Errorf("unknown interval field %s", i.Start)
	}

	out := &ast.IntervalLiteral{Value: unquote(i.Value, '\''), Sign: ast.Positive, StartField: start}
	if i.Sign != nil && *i.Sign == "-" {
		out.Sign = ast.Negative
	}

	if i.End != nil {
		end, ok := ast.IntervalFieldFor(*i.End)
		if !ok {
			return nil, errors.Errorf("unknown interval field %s", *i.End)
		}
		out.EndField = &end
	}

	return out, nil
}

func (t *typeName) String() string {
	if len(t.Params) == 0 {
		return t.Name
	}

	params := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		if p.Size != nil {
			params = append(params, *p.Size)
			continue
		}
		params = append(params, p.Type.String())
	}

	return t.Name + "(" + strings.Join(params, ", ") + ")"
}

// unquote strips the surrounding quote characters and collapses doubled quotes.
func unquote(s string, quote byte) string {
	if len(s) < 2 {
		return s
	}

	q := string(quote)
	return strings.ReplaceAll(s[1:len(s)-1], q+q, q)
}

// decodeUnicode resolves the escapes of a Unicode string literal body: `\\`, `\XXXX` and `\+XXXXXX`.
func decodeUnicode(s string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			sb.WriteByte(s[i])
			continue
		}

		rest := s[i+1:]
		switch {
		case strings.HasPrefix(rest, `\`):
			sb.WriteByte('\\')
			i++
		case strings.HasPrefix(rest, "+") && len(rest) >= 7:
			r, err := strconv.ParseUint(rest[1:7], 16, 32)
			if err != nil {
				return "", errors.Wrapf(err, "invalid unicode escape \\%s", rest[:7])
			}
			sb.WriteRune(rune(r))
			i += 7
		case len(rest) >= 4:
			r, err := strconv.ParseUint(rest[:4], 16, 32)
			if err != nil {
				return "", errors.Wrapf(err, "invalid unicode escape \\%s", rest[:4])
			}
			sb.WriteRune(rune(r))
			i += 4
		default:
			return "", errors.Errorf("truncated unicode escape \\%s", rest)
		}
	}

	return sb.String(), nil
}
