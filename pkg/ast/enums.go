package ast

import (
	"fmt"
	"strings"
)

// ArithmeticOperator is the operator of an ArithmeticBinaryExpression.
type ArithmeticOperator int

const (
	Add ArithmeticOperator = iota + 1
	Subtract
	Multiply
	Divide
	Modulus
)

// ComparisonOperator is the operator of a ComparisonExpression or a
// QuantifiedComparisonExpression.
type ComparisonOperator int

const (
	Equal ComparisonOperator = iota + 1
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	IsDistinctFrom
)

// LogicalOperator is the operator of a LogicalBinaryExpression.
type LogicalOperator int

const (
	And LogicalOperator = iota + 1
	Or
)

// Sign is the sign of an ArithmeticUnaryExpression.
type Sign int

const (
	Plus Sign = iota + 1
	Minus
)

// IntervalSign is the sign of an IntervalLiteral.
type IntervalSign int

const (
	Positive IntervalSign = iota + 1
	Negative
)

// IntervalField is a start or end field of an IntervalLiteral.
type IntervalField int

const (
	Year IntervalField = iota + 1
	Month
	Day
	Hour
	Minute
	Second
)

// ExtractField is the field argument of EXTRACT.
type ExtractField int

const (
	ExtractYear ExtractField = iota + 1
	ExtractQuarter
	ExtractMonth
	ExtractWeek
	ExtractDay
	ExtractDayOfMonth
	ExtractDayOfWeek
	ExtractDOW
	ExtractDayOfYear
	ExtractDOY
	ExtractYearOfWeek
	ExtractYOW
	ExtractHour
	ExtractMinute
	ExtractSecond
	ExtractTimezoneMinute
	ExtractTimezoneHour
)

// Quantifier qualifies a QuantifiedComparisonExpression.
type Quantifier int

const (
	All Quantifier = iota + 1
	Any
	Some
)

// FrameType is the unit of a WindowFrame.
type FrameType int

const (
	Range FrameType = iota + 1
	Rows
)

// FrameBoundType identifies the kind of a FrameBound.
type FrameBoundType int

const (
	UnboundedPreceding FrameBoundType = iota + 1
	Preceding
	CurrentRow
	Following
	UnboundedFollowing
)

// Ordering is the direction of a SortItem.
type Ordering int

const (
	Ascending Ordering = iota + 1
	Descending
)

// NullOrdering places NULLs within a SortItem. The zero value leaves it
// unspecified.
type NullOrdering int

const (
	NullsUndefined NullOrdering = iota
	NullsFirst
	NullsLast
)

var (
	arithmeticOperators = map[ArithmeticOperator]string{
		Add:      "+",
		Subtract: "-",
		Multiply: "*",
		Divide:   "/",
		Modulus:  "%",
	}

	comparisonOperators = map[ComparisonOperator]string{
		Equal:              "=",
		NotEqual:           "<>",
		LessThan:           "<",
		LessThanOrEqual:    "<=",
		GreaterThan:        ">",
		GreaterThanOrEqual: ">=",
		IsDistinctFrom:     "IS DISTINCT FROM",
	}

	logicalOperators = map[LogicalOperator]string{
		And: "AND",
		Or:  "OR",
	}

	signs = map[Sign]string{
		Plus:  "+",
		Minus: "-",
	}

	intervalSigns = map[IntervalSign]string{
		Positive: "+",
		Negative: "-",
	}

	intervalFields = map[IntervalField]string{
		Year:   "YEAR",
		Month:  "MONTH",
		Day:    "DAY",
		Hour:   "HOUR",
		Minute: "MINUTE",
		Second: "SECOND",
	}

	extractFields = map[ExtractField]string{
		ExtractYear:           "YEAR",
		ExtractQuarter:        "QUARTER",
		ExtractMonth:          "MONTH",
		ExtractWeek:           "WEEK",
		ExtractDay:            "DAY",
		ExtractDayOfMonth:     "DAY_OF_MONTH",
		ExtractDayOfWeek:      "DAY_OF_WEEK",
		ExtractDOW:            "DOW",
		ExtractDayOfYear:      "DAY_OF_YEAR",
		ExtractDOY:            "DOY",
		ExtractYearOfWeek:     "YEAR_OF_WEEK",
		ExtractYOW:            "YOW",
		ExtractHour:           "HOUR",
		ExtractMinute:         "MINUTE",
		ExtractSecond:         "SECOND",
		ExtractTimezoneMinute: "TIMEZONE_MINUTE",
		ExtractTimezoneHour:   "TIMEZONE_HOUR",
	}

	quantifiers = map[Quantifier]string{
		All:  "ALL",
		Any:  "ANY",
		Some: "SOME",
	}

	frameTypes = map[FrameType]string{
		Range: "RANGE",
		Rows:  "ROWS",
	}

	frameBoundTypes = map[FrameBoundType]string{
		UnboundedPreceding: "UNBOUNDED PRECEDING",
		Preceding:          "PRECEDING",
		CurrentRow:         "CURRENT ROW",
		Following:          "FOLLOWING",
		UnboundedFollowing: "UNBOUNDED FOLLOWING",
	}

	orderings = map[Ordering]string{
		Ascending:  "ASC",
		Descending: "DESC",
	}

	nullOrderings = map[NullOrdering]string{
		NullsUndefined: "",
		NullsFirst:     "NULLS FIRST",
		NullsLast:      "NULLS LAST",
	}
)

// Token returns the SQL text of the operator. ok is false for values outside
// the declared constants.
func (o ArithmeticOperator) Token() (tok string, ok bool) { return token(arithmeticOperators, o) }
func (o ComparisonOperator) Token() (tok string, ok bool) { return token(comparisonOperators, o) }
func (o LogicalOperator) Token() (tok string, ok bool)    { return token(logicalOperators, o) }
func (s Sign) Token() (tok string, ok bool)               { return token(signs, s) }
func (s IntervalSign) Token() (tok string, ok bool)       { return token(intervalSigns, s) }
func (f IntervalField) Token() (tok string, ok bool)      { return token(intervalFields, f) }
func (f ExtractField) Token() (tok string, ok bool)       { return token(extractFields, f) }
func (q Quantifier) Token() (tok string, ok bool)         { return token(quantifiers, q) }
func (t FrameType) Token() (tok string, ok bool)          { return token(frameTypes, t) }
func (t FrameBoundType) Token() (tok string, ok bool)     { return token(frameBoundTypes, t) }
func (o Ordering) Token() (tok string, ok bool)           { return token(orderings, o) }
func (o NullOrdering) Token() (tok string, ok bool)       { return token(nullOrderings, o) }

func (o ArithmeticOperator) String() string { return name(arithmeticOperators, o, "ArithmeticOperator") }
func (o ComparisonOperator) String() string { return name(comparisonOperators, o, "ComparisonOperator") }
func (o LogicalOperator) String() string    { return name(logicalOperators, o, "LogicalOperator") }
func (s Sign) String() string               { return name(signs, s, "Sign") }
func (s IntervalSign) String() string       { return name(intervalSigns, s, "IntervalSign") }
func (f IntervalField) String() string      { return name(intervalFields, f, "IntervalField") }
func (f ExtractField) String() string       { return name(extractFields, f, "ExtractField") }
func (q Quantifier) String() string         { return name(quantifiers, q, "Quantifier") }
func (t FrameType) String() string          { return name(frameTypes, t, "FrameType") }
func (t FrameBoundType) String() string     { return name(frameBoundTypes, t, "FrameBoundType") }
func (o Ordering) String() string           { return name(orderings, o, "Ordering") }
func (o NullOrdering) String() string       { return name(nullOrderings, o, "NullOrdering") }

// ArithmeticOperatorFor returns the operator spelled tok.
func ArithmeticOperatorFor(tok string) (ArithmeticOperator, bool) { return lookup(arithmeticOperators, tok) }

// ComparisonOperatorFor returns the operator spelled tok. "!=" is accepted as
// an alias of "<>".
func ComparisonOperatorFor(tok string) (ComparisonOperator, bool) {
	if tok == "!=" {
		return NotEqual, true
	}
	return lookup(comparisonOperators, tok)
}

// IntervalFieldFor returns the interval field named tok (case-insensitive).
func IntervalFieldFor(tok string) (IntervalField, bool) { return lookup(intervalFields, tok) }

// ExtractFieldFor returns the extract field named tok (case-insensitive).
func ExtractFieldFor(tok string) (ExtractField, bool) { return lookup(extractFields, tok) }

// QuantifierFor returns the quantifier named tok (case-insensitive).
func QuantifierFor(tok string) (Quantifier, bool) { return lookup(quantifiers, tok) }

// FrameTypeFor returns the frame type named tok (case-insensitive).
func FrameTypeFor(tok string) (FrameType, bool) { return lookup(frameTypes, tok) }

func token[T comparable](m map[T]string, v T) (string, bool) {
	s, ok := m[v]
	return s, ok
}

func name[T ~int](m map[T]string, v T, typ string) string {
	if s, ok := m[v]; ok && s != "" {
		return s
	}
	return fmt.Sprintf("%s(%d)", typ, int(v))
}

func lookup[T comparable](m map[T]string, tok string) (T, bool) {
	for k, v := range m {
		if strings.EqualFold(v, tok) {
			return k, true
		}
	}
	var zero T
	return zero, false
}
