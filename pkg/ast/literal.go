package ast

type (
	// BooleanLiteral is TRUE or FALSE.
	BooleanLiteral struct {
		Value bool
	}

	// StringLiteral holds the decoded text of a quoted string.
	StringLiteral struct {
		Value string
	}

	// CharLiteral is a CHAR '...' literal.
	CharLiteral struct {
		Value string
	}

	// BinaryLiteral is an X'...' literal holding the decoded bytes.
	BinaryLiteral struct {
		Value []byte
	}

	// LongLiteral is an integer literal.
	LongLiteral struct {
		Value int64
	}

	// DoubleLiteral is an approximate numeric literal.
	DoubleLiteral struct {
		Value float64
	}

	// DecimalLiteral is a DECIMAL '...' literal. Value is kept as text to avoid
	// any loss of precision.
	DecimalLiteral struct {
		Value string
	}

	// GenericLiteral is a literal introduced by a type name, e.g. DATE '2020-01-01'.
	GenericLiteral struct {
		Type  string
		Value string
	}

	// TimeLiteral is a TIME '...' literal.
	TimeLiteral struct {
		Value string
	}

	// TimestampLiteral is a TIMESTAMP '...' literal.
	TimestampLiteral struct {
		Value string
	}

	// IntervalLiteral is INTERVAL [-] 'value' start [TO end].
	IntervalLiteral struct {
		Value      string
		Sign       IntervalSign
		StartField IntervalField
		EndField   *IntervalField
	}

	// NullLiteral is NULL.
	NullLiteral struct{}
)

func (*BooleanLiteral) node()   {}
func (*StringLiteral) node()    {}
func (*CharLiteral) node()      {}
func (*BinaryLiteral) node()    {}
func (*LongLiteral) node()      {}
func (*DoubleLiteral) node()    {}
func (*DecimalLiteral) node()   {}
func (*GenericLiteral) node()   {}
func (*TimeLiteral) node()      {}
func (*TimestampLiteral) node() {}
func (*IntervalLiteral) node()  {}
func (*NullLiteral) node()      {}

func (*BooleanLiteral) expression()   {}
func (*StringLiteral) expression()    {}
func (*CharLiteral) expression()      {}
func (*BinaryLiteral) expression()    {}
func (*LongLiteral) expression()      {}
func (*DoubleLiteral) expression()    {}
func (*DecimalLiteral) expression()   {}
func (*GenericLiteral) expression()   {}
func (*TimeLiteral) expression()      {}
func (*TimestampLiteral) expression() {}
func (*IntervalLiteral) expression()  {}
func (*NullLiteral) expression()      {}
