package ast

type (
	// Query is a single SELECT. It is the only statement kind the expression
	// layer needs in order to render subqueries.
	Query struct {
		Distinct bool
		Select   []SelectItem
		From     *Table
		Where    Expression
		GroupBy  []GroupingElement
		Having   Expression
		OrderBy  *OrderBy
		Limit    *int64
	}

	// Table is a table reference with an optional alias.
	Table struct {
		Name  QualifiedName
		Alias *Identifier
	}

	// SingleColumn is expr [AS alias] in a SELECT list.
	SingleColumn struct {
		Expression Expression
		Alias      *Identifier
	}

	// AllColumns is * or prefix.* in a SELECT list.
	AllColumns struct {
		Prefix *QualifiedName
	}
)

func (*Query) node()        {}
func (*Table) node()        {}
func (*SingleColumn) node() {}
func (*AllColumns) node()   {}

func (*Query) statement() {}

func (*SingleColumn) selectItem() {}
func (*AllColumns) selectItem()   {}
