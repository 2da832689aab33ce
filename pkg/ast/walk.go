package ast

import "reflect"

// Identical reports whether two trees are structurally identical.
func Identical(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}

// Depth returns the height of the tree rooted at n. A leaf has depth 1 and a
// nil node has depth 0.
func Depth(n Node) int {
	if isNil(n) {
		return 0
	}

	deepest := 0
	for _, child := range Children(n) {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk calls fn for n and every node below it in depth-first order. Returning
// false from fn skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, fn)
	}
}

// Children returns the direct, non-nil children of n in source order.
//
//nolint:gocyclo,cyclop // one case per node kind
func Children(n Node) []Node {
	var c children

	switch n := n.(type) {
	case *DereferenceExpression:
		c.add(n.Base, n.Field)
	case *ArithmeticBinaryExpression:
		c.add(n.Left, n.Right)
	case *ArithmeticUnaryExpression:
		c.add(n.Value)
	case *LogicalBinaryExpression:
		c.add(n.Left, n.Right)
	case *ComparisonExpression:
		c.add(n.Left, n.Right)
	case *NotExpression:
		c.add(n.Value)
	case *IsNullPredicate:
		c.add(n.Value)
	case *IsNotNullPredicate:
		c.add(n.Value)
	case *BetweenPredicate:
		c.add(n.Value, n.Min, n.Max)
	case *InPredicate:
		c.add(n.Value, n.ValueList)
	case *InListExpression:
		c.addExpressions(n.Values)
	case *LikePredicate:
		c.add(n.Value, n.Pattern, n.Escape)
	case *QuantifiedComparisonExpression:
		c.add(n.Value, n.Subquery)
	case *FunctionCall:
		c.addExpressions(n.Arguments)
		c.add(n.Filter, n.Window)
	case *LambdaExpression:
		for _, arg := range n.Arguments {
			c.add(arg)
		}
		c.add(n.Body)
	case *LambdaArgumentDeclaration:
		c.add(n.Name)
	case *BindExpression:
		c.addExpressions(n.Values)
		c.add(n.Function)
	case *Cast:
		c.add(n.Expression)
	case *CoalesceExpression:
		c.addExpressions(n.Operands)
	case *NullIfExpression:
		c.add(n.First, n.Second)
	case *IfExpression:
		c.add(n.Condition, n.TrueValue, n.FalseValue)
	case *TryExpression:
		c.add(n.InnerExpression)
	case *ArrayConstructor:
		c.addExpressions(n.Values)
	case *SubscriptExpression:
		c.add(n.Base, n.Index)
	case *AtTimeZone:
		c.add(n.Value, n.TimeZone)
	case *Extract:
		c.add(n.Expression)
	case *Row:
		c.addExpressions(n.Items)
	case *ExistsPredicate:
		c.add(n.Subquery)
	case *SubqueryExpression:
		c.add(n.Query)
	case *SearchedCaseExpression:
		for _, w := range n.WhenClauses {
			c.add(w)
		}
		c.add(n.DefaultValue)
	case *SimpleCaseExpression:
		c.add(n.Operand)
		for _, w := range n.WhenClauses {
			c.add(w)
		}
		c.add(n.DefaultValue)
	case *GroupingOperation:
		c.addExpressions(n.GroupingColumns)
	case *Window:
		c.addExpressions(n.PartitionBy)
		c.add(n.OrderBy, n.Frame)
	case *WindowFrame:
		c.add(n.Start, n.End)
	case *FrameBound:
		c.add(n.Value)
	case *OrderBy:
		for _, item := range n.SortItems {
			c.add(item)
		}
	case *SortItem:
		c.add(n.SortKey)
	case *WhenClause:
		c.add(n.Operand, n.Result)
	case *SimpleGroupBy:
		c.addExpressions(n.Columns)
	case *Query:
		for _, item := range n.Select {
			c.add(item)
		}
		c.add(n.From, n.Where)
		for _, el := range n.GroupBy {
			c.add(el)
		}
		c.add(n.Having, n.OrderBy)
	case *Table:
		c.add(n.Alias)
	case *SingleColumn:
		c.add(n.Expression, n.Alias)
	}

	return c.nodes
}

type children struct {
	nodes []Node
}

func (c *children) add(nodes ...Node) {
	for _, n := range nodes {
		if !isNil(n) {
			c.nodes = append(c.nodes, n)
		}
	}
}

func (c *children) addExpressions(exprs []Expression) {
	for _, e := range exprs {
		c.add(e)
	}
}

// isNil catches both untyped nil and typed nil pointers stored in an interface,
// e.g. a nil *Window assigned to a Node.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
