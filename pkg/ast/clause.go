package ast

type (
	// Window is the OVER (...) specification of a function call. Any of its
	// three clauses may be absent.
	Window struct {
		PartitionBy []Expression
		OrderBy     *OrderBy
		Frame       *WindowFrame
	}

	// WindowFrame is <type> <start> or <type> BETWEEN <start> AND <end>.
	WindowFrame struct {
		Type  FrameType
		Start *FrameBound
		End   *FrameBound
	}

	// FrameBound is one end of a window frame. Value is only set for
	// Preceding and Following.
	FrameBound struct {
		Type  FrameBoundType
		Value Expression
	}

	OrderBy struct {
		SortItems []*SortItem
	}

	SortItem struct {
		SortKey      Expression
		Ordering     Ordering
		NullOrdering NullOrdering
	}

	// WhenClause is WHEN operand THEN result inside a CASE expression.
	WhenClause struct {
		Operand Expression
		Result  Expression
	}

	// SimpleGroupBy groups by one or more plain expressions.
	SimpleGroupBy struct {
		Columns []Expression
	}

	GroupingSets struct {
		Sets [][]QualifiedName
	}

	Cube struct {
		Columns []QualifiedName
	}

	Rollup struct {
		Columns []QualifiedName
	}
)

func (*Window) node()        {}
func (*WindowFrame) node()   {}
func (*FrameBound) node()    {}
func (*OrderBy) node()       {}
func (*SortItem) node()      {}
func (*WhenClause) node()    {}
func (*SimpleGroupBy) node() {}
func (*GroupingSets) node()  {}
func (*Cube) node()          {}
func (*Rollup) node()        {}

func (*SimpleGroupBy) groupingElement() {}
func (*GroupingSets) groupingElement()  {}
func (*Cube) groupingElement()          {}
func (*Rollup) groupingElement()        {}
