package ast

import "strings"

type (
	// Identifier is a bare or delimited ("quoted") name.
	Identifier struct {
		Value     string
		Delimited bool
	}

	// QualifiedName is a dotted name such as a function name or a grouping
	// column. It is not an expression on its own.
	QualifiedName struct {
		Parts []string
	}

	// DereferenceExpression is base.field.
	DereferenceExpression struct {
		Base  Expression
		Field *Identifier
	}

	// FieldReference is a positional reference to an input column. It only
	// appears in trees produced by internal rewrites.
	FieldReference struct {
		FieldIndex int
	}

	// Parameter is a positional ? marker. Position is 0-based.
	Parameter struct {
		Position int
	}

	ArithmeticBinaryExpression struct {
		Operator ArithmeticOperator
		Left     Expression
		Right    Expression
	}

	ArithmeticUnaryExpression struct {
		Sign  Sign
		Value Expression
	}

	LogicalBinaryExpression struct {
		Operator LogicalOperator
		Left     Expression
		Right    Expression
	}

	ComparisonExpression struct {
		Operator ComparisonOperator
		Left     Expression
		Right    Expression
	}

	NotExpression struct {
		Value Expression
	}

	IsNullPredicate struct {
		Value Expression
	}

	IsNotNullPredicate struct {
		Value Expression
	}

	BetweenPredicate struct {
		Value Expression
		Min   Expression
		Max   Expression
	}

	// InPredicate tests membership. ValueList is either an *InListExpression
	// or a *SubqueryExpression.
	InPredicate struct {
		Value     Expression
		ValueList Expression
	}

	InListExpression struct {
		Values []Expression
	}

	// LikePredicate is value LIKE pattern [ESCAPE escape]. Escape is nil when absent.
	LikePredicate struct {
		Value   Expression
		Pattern Expression
		Escape  Expression
	}

	QuantifiedComparisonExpression struct {
		Operator   ComparisonOperator
		Quantifier Quantifier
		Value      Expression
		Subquery   Expression
	}

	// FunctionCall is name([DISTINCT] args) [FILTER (WHERE filter)] [OVER window].
	FunctionCall struct {
		Name      QualifiedName
		Arguments []Expression
		Distinct  bool
		Filter    Expression
		Window    *Window
	}

	// LambdaExpression is (args) -> body.
	LambdaExpression struct {
		Arguments []*LambdaArgumentDeclaration
		Body      Expression
	}

	LambdaArgumentDeclaration struct {
		Name *Identifier
	}

	// BindExpression partially applies Function to Values. Internal only.
	BindExpression struct {
		Values   []Expression
		Function Expression
	}

	// Cast is CAST(expr AS type), or TRY_CAST when Safe is set.
	Cast struct {
		Expression Expression
		Type       string
		Safe       bool
	}

	CoalesceExpression struct {
		Operands []Expression
	}

	NullIfExpression struct {
		First  Expression
		Second Expression
	}

	// IfExpression is IF(condition, true [, false]). FalseValue is nil when absent.
	IfExpression struct {
		Condition  Expression
		TrueValue  Expression
		FalseValue Expression
	}

	TryExpression struct {
		InnerExpression Expression
	}

	ArrayConstructor struct {
		Values []Expression
	}

	SubscriptExpression struct {
		Base  Expression
		Index Expression
	}

	AtTimeZone struct {
		Value    Expression
		TimeZone Expression
	}

	Extract struct {
		Field      ExtractField
		Expression Expression
	}

	Row struct {
		Items []Expression
	}

	ExistsPredicate struct {
		Subquery Expression
	}

	SubqueryExpression struct {
		Query Statement
	}

	SearchedCaseExpression struct {
		WhenClauses  []*WhenClause
		DefaultValue Expression
	}

	SimpleCaseExpression struct {
		Operand      Expression
		WhenClauses  []*WhenClause
		DefaultValue Expression
	}

	GroupingOperation struct {
		GroupingColumns []Expression
	}

	// RatioMetricExpression applies a ratio metric (e.g. risk_ratio) to an
	// optional aggregate over all rows. Aggregate is nil when absent.
	RatioMetricExpression struct {
		Function  QualifiedName
		Aggregate *QualifiedName
	}
)

// NewIdentifier returns an undelimited identifier.
func NewIdentifier(value string) *Identifier {
	return &Identifier{Value: value}
}

// NewQualifiedName builds a name from its dotted parts.
func NewQualifiedName(parts ...string) QualifiedName {
	return QualifiedName{Parts: parts}
}

// Suffix returns the last part of the name.
func (n QualifiedName) Suffix() string {
	if len(n.Parts) == 0 {
		return ""
	}
	return n.Parts[len(n.Parts)-1]
}

// String joins the parts with dots without any quoting.
func (n QualifiedName) String() string {
	return strings.Join(n.Parts, ".")
}

func (*Identifier) node()                     {}
func (QualifiedName) node()                   {}
func (*DereferenceExpression) node()          {}
func (*FieldReference) node()                 {}
func (*Parameter) node()                      {}
func (*ArithmeticBinaryExpression) node()     {}
func (*ArithmeticUnaryExpression) node()      {}
func (*LogicalBinaryExpression) node()        {}
func (*ComparisonExpression) node()           {}
func (*NotExpression) node()                  {}
func (*IsNullPredicate) node()                {}
func (*IsNotNullPredicate) node()             {}
func (*BetweenPredicate) node()               {}
func (*InPredicate) node()                    {}
func (*InListExpression) node()               {}
func (*LikePredicate) node()                  {}
func (*QuantifiedComparisonExpression) node() {}
func (*FunctionCall) node()                   {}
func (*LambdaExpression) node()               {}
func (*LambdaArgumentDeclaration) node()      {}
func (*BindExpression) node()                 {}
func (*Cast) node()                           {}
func (*CoalesceExpression) node()             {}
func (*NullIfExpression) node()               {}
func (*IfExpression) node()                   {}
func (*TryExpression) node()                  {}
func (*ArrayConstructor) node()               {}
func (*SubscriptExpression) node()            {}
func (*AtTimeZone) node()                     {}
func (*Extract) node()                        {}
func (*Row) node()                            {}
func (*ExistsPredicate) node()                {}
func (*SubqueryExpression) node()             {}
func (*SearchedCaseExpression) node()         {}
func (*SimpleCaseExpression) node()           {}
func (*GroupingOperation) node()              {}
func (*RatioMetricExpression) node()          {}

func (*Identifier) expression()                     {}
func (*DereferenceExpression) expression()          {}
func (*FieldReference) expression()                 {}
func (*Parameter) expression()                      {}
func (*ArithmeticBinaryExpression) expression()     {}
func (*ArithmeticUnaryExpression) expression()      {}
func (*LogicalBinaryExpression) expression()        {}
func (*ComparisonExpression) expression()           {}
func (*NotExpression) expression()                  {}
func (*IsNullPredicate) expression()                {}
func (*IsNotNullPredicate) expression()             {}
func (*BetweenPredicate) expression()               {}
func (*InPredicate) expression()                    {}
func (*InListExpression) expression()               {}
func (*LikePredicate) expression()                  {}
func (*QuantifiedComparisonExpression) expression() {}
func (*FunctionCall) expression()                   {}
func (*LambdaExpression) expression()               {}
func (*LambdaArgumentDeclaration) expression()      {}
func (*BindExpression) expression()                 {}
func (*Cast) expression()                           {}
func (*CoalesceExpression) expression()             {}
func (*NullIfExpression) expression()               {}
func (*IfExpression) expression()                   {}
func (*TryExpression) expression()                  {}
func (*ArrayConstructor) expression()               {}
func (*SubscriptExpression) expression()            {}
func (*AtTimeZone) expression()                     {}
func (*Extract) expression()                        {}
func (*Row) expression()                            {}
func (*ExistsPredicate) expression()                {}
func (*SubqueryExpression) expression()             {}
func (*SearchedCaseExpression) expression()         {}
func (*SimpleCaseExpression) expression()           {}
func (*GroupingOperation) expression()              {}
func (*RatioMetricExpression) expression()          {}
