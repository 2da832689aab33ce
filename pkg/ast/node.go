package ast

type (
	// Node is implemented by every value in the tree, including the
	// non-expression building blocks (windows, frames, sort items, ...).
	Node interface {
		node()
	}

	// Expression is implemented by every expression kind.
	Expression interface {
		Node
		expression()
	}

	// Statement is a query-level node. Expressions only reference statements
	// through subqueries; rendering them is delegated to a statement formatter.
	Statement interface {
		Node
		statement()
	}

	// GroupingElement is one item of a GROUP BY clause.
	GroupingElement interface {
		Node
		groupingElement()
	}

	// SelectItem is one item of a SELECT list.
	SelectItem interface {
		Node
		selectItem()
	}
)
