package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pseudomuto/exprfmt/pkg/ast"
	. "github.com/pseudomuto/exprfmt/pkg/parser"
)

func TestParseExpression(t *testing.T) {
	month := ast.Month
	one := selectOne(long(1))

	tests := []struct {
		name     string
		sql      string
		expected ast.Expression
	}{
		{"precedence", "a + 1 * 2", binary(ast.Add, id("a"), binary(ast.Multiply, long(1), long(2)))},
		{"left associative", "a - b - c", binary(ast.Subtract, binary(ast.Subtract, id("a"), id("b")), id("c"))},
		{"parentheses", "(a + 1) % 2", binary(ast.Modulus, binary(ast.Add, id("a"), long(1)), long(2))},
		{"negative number", "-5", &ast.ArithmeticUnaryExpression{Sign: ast.Minus, Value: long(5)}},
		{"not binds looser than comparison", "NOT a = 1", &ast.NotExpression{Value: compare(ast.Equal, id("a"), long(1))}},
		{
			"and binds tighter than or",
			"a OR b AND c",
			&ast.LogicalBinaryExpression{
				Operator: ast.Or,
				Left:     id("a"),
				Right:    &ast.LogicalBinaryExpression{Operator: ast.And, Left: id("b"), Right: id("c")},
			},
		},
		{"bang equals", "a != b", compare(ast.NotEqual, id("a"), id("b"))},
		{"is distinct from", "a IS DISTINCT FROM b", compare(ast.IsDistinctFrom, id("a"), id("b"))},
		{
			"not between",
			"x NOT BETWEEN 1 AND 2",
			&ast.NotExpression{Value: &ast.BetweenPredicate{Value: id("x"), Min: long(1), Max: long(2)}},
		},
		{
			"in list",
			"x IN (1, 2)",
			&ast.InPredicate{Value: id("x"), ValueList: &ast.InListExpression{Values: []ast.Expression{long(1), long(2)}}},
		},
		{
			"not like",
			"name NOT LIKE 'a%'",
			&ast.NotExpression{Value: &ast.LikePredicate{Value: id("name"), Pattern: str("a%")}},
		},
		{
			"like escape",
			`name LIKE 'a\_%' ESCAPE '\'`,
			&ast.LikePredicate{Value: id("name"), Pattern: str(`a\_%`), Escape: str(`\`)},
		},
		{"is null", "x IS NULL", &ast.IsNullPredicate{Value: id("x")}},
		{"is not null", "x is not null", &ast.IsNotNullPredicate{Value: id("x")}},
		{"quoted identifier", `"Select"`, &ast.Identifier{Value: "Select", Delimited: true}},
		{"escaped quoted identifier", `"a""b"`, &ast.Identifier{Value: `a"b`, Delimited: true}},
		{"dereference", "t.col", &ast.DereferenceExpression{Base: id("t"), Field: id("col")}},
		{"subscript", "arr[1]", &ast.SubscriptExpression{Base: id("arr"), Index: long(1)}},
		{"string", "'O''Brien'", str("O'Brien")},
		{"unicode string", `U&'caf\00E9 \+01F600 \\'`, str("café 😀 \\")},
		{"binary", "X'CAFE'", &ast.BinaryLiteral{Value: []byte{0xca, 0xfe}}},
		{"double", "1.5", &ast.DoubleLiteral{Value: 1.5}},
		{"leading dot double", ".5", &ast.DoubleLiteral{Value: 0.5}},
		{"exponent", "1e3", &ast.DoubleLiteral{Value: 1000}},
		{"max long", "9223372036854775807", long(9223372036854775807)},
		{"decimal", "DECIMAL '1.10'", &ast.DecimalLiteral{Value: "1.10"}},
		{"time", "TIME '10:00'", &ast.TimeLiteral{Value: "10:00"}},
		{"timestamp", "TIMESTAMP '2024-01-01 00:00:00'", &ast.TimestampLiteral{Value: "2024-01-01 00:00:00"}},
		{"char", "CHAR 'x'", &ast.CharLiteral{Value: "x"}},
		{"typed literal", "DATE '2024-01-01'", &ast.GenericLiteral{Type: "DATE", Value: "2024-01-01"}},
		{"interval", "INTERVAL '5' MINUTE", &ast.IntervalLiteral{Value: "5", Sign: ast.Positive, StartField: ast.Minute}},
		{
			"negative interval range",
			"INTERVAL - '1-2' YEAR TO MONTH",
			&ast.IntervalLiteral{Value: "1-2", Sign: ast.Negative, StartField: ast.Year, EndField: &month},
		},
		{"true", "TRUE", &ast.BooleanLiteral{Value: true}},
		{"false", "false", &ast.BooleanLiteral{}},
		{"null", "NULL", &ast.NullLiteral{}},
		{"cast", "CAST(a AS varchar(10))", &ast.Cast{Expression: id("a"), Type: "varchar(10)"}},
		{
			"cast nested type",
			"CAST(m AS map(varchar, array(bigint)))",
			&ast.Cast{Expression: id("m"), Type: "map(varchar, array(bigint))"},
		},
		{"try cast", "TRY_CAST(a AS double)", &ast.Cast{Expression: id("a"), Type: "double", Safe: true}},
		{"extract", "EXTRACT(dow FROM d)", &ast.Extract{Field: ast.ExtractDOW, Expression: id("d")}},
		{"count star", "count(*)", call("count")},
		{"qualified function", "sys.now()", &ast.FunctionCall{Name: ast.NewQualifiedName("sys", "now"), Arguments: []ast.Expression{}}},
		{
			"distinct with filter",
			"count(DISTINCT x) FILTER (WHERE x > 0)",
			&ast.FunctionCall{
				Name:      ast.NewQualifiedName("count"),
				Arguments: []ast.Expression{id("x")},
				Distinct:  true,
				Filter:    compare(ast.GreaterThan, id("x"), long(0)),
			},
		},
		{
			"window order",
			"rank() OVER (ORDER BY a DESC)",
			&ast.FunctionCall{
				Name:      ast.NewQualifiedName("rank"),
				Arguments: []ast.Expression{},
				Window: &ast.Window{OrderBy: &ast.OrderBy{SortItems: []*ast.SortItem{
					{SortKey: id("a"), Ordering: ast.Descending},
				}}},
			},
		},
		{
			"window frame",
			"sum(x) OVER (PARTITION BY g ROWS 2 PRECEDING)",
			&ast.FunctionCall{
				Name:      ast.NewQualifiedName("sum"),
				Arguments: []ast.Expression{id("x")},
				Window: &ast.Window{
					PartitionBy: []ast.Expression{id("g")},
					Frame: &ast.WindowFrame{
						Type:  ast.Rows,
						Start: &ast.FrameBound{Type: ast.Preceding, Value: long(2)},
					},
				},
			},
		},
		{
			"window frame range",
			"avg(x) OVER (RANGE BETWEEN CURRENT ROW AND UNBOUNDED FOLLOWING)",
			&ast.FunctionCall{
				Name:      ast.NewQualifiedName("avg"),
				Arguments: []ast.Expression{id("x")},
				Window: &ast.Window{Frame: &ast.WindowFrame{
					Type:  ast.Range,
					Start: &ast.FrameBound{Type: ast.CurrentRow},
					End:   &ast.FrameBound{Type: ast.UnboundedFollowing},
				}},
			},
		},
		{
			"lambda",
			"(a, b) -> a + b",
			&ast.LambdaExpression{
				Arguments: []*ast.LambdaArgumentDeclaration{{Name: id("a")}, {Name: id("b")}},
				Body:      binary(ast.Add, id("a"), id("b")),
			},
		},
		{"lambda without arguments", "() -> 1", &ast.LambdaExpression{Arguments: []*ast.LambdaArgumentDeclaration{}, Body: long(1)}},
		{
			"searched case",
			"CASE WHEN a THEN 1 END",
			&ast.SearchedCaseExpression{WhenClauses: []*ast.WhenClause{{Operand: id("a"), Result: long(1)}}},
		},
		{
			"simple case",
			"CASE a WHEN 1 THEN 'x' ELSE 'y' END",
			&ast.SimpleCaseExpression{
				Operand:      id("a"),
				WhenClauses:  []*ast.WhenClause{{Operand: long(1), Result: str("x")}},
				DefaultValue: str("y"),
			},
		},
		{"at time zone", "ts AT TIME ZONE 'UTC'", &ast.AtTimeZone{Value: id("ts"), TimeZone: str("UTC")}},
		{"exists", "EXISTS (SELECT 1)", &ast.ExistsPredicate{Subquery: &ast.SubqueryExpression{Query: one}}},
		{
			"quantified comparison",
			"a > ALL (SELECT b FROM t)",
			&ast.QuantifiedComparisonExpression{
				Operator:   ast.GreaterThan,
				Quantifier: ast.All,
				Value:      id("a"),
				Subquery: &ast.SubqueryExpression{Query: &ast.Query{
					Select: []ast.SelectItem{&ast.SingleColumn{Expression: id("b")}},
					From:   &ast.Table{Name: ast.NewQualifiedName("t")},
				}},
			},
		},
		{"grouping", "GROUPING (a, b)", &ast.GroupingOperation{GroupingColumns: []ast.Expression{id("a"), id("b")}}},
		{"row", "ROW (1, 2)", &ast.Row{Items: []ast.Expression{long(1), long(2)}}},
		{"empty array", "ARRAY[]", &ast.ArrayConstructor{Values: []ast.Expression{}}},
		{"coalesce", "COALESCE(a, 1)", &ast.CoalesceExpression{Operands: []ast.Expression{id("a"), long(1)}}},
		{"nullif", "NULLIF(a, b)", &ast.NullIfExpression{First: id("a"), Second: id("b")}},
		{"if", "IF(a, 1, 2)", &ast.IfExpression{Condition: id("a"), TrueValue: long(1), FalseValue: long(2)}},
		{"try", "TRY(a / b)", &ast.TryExpression{InnerExpression: binary(ast.Divide, id("a"), id("b"))}},
		{"parameters", "? = ?", compare(ast.Equal, &ast.Parameter{Position: 0}, &ast.Parameter{Position: 1})},
		{"comments", "a /* inline */ + -- trailing\n 1", binary(ast.Add, id("a"), long(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseExpression(tt.sql)
			require.NoError(t, err)
			require.Equal(t, tt.expected, expr)
		})
	}
}

func TestParseExpression_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		message string
	}{
		{"empty", "", "failed to parse expression"},
		{"dangling operator", "a +", "failed to parse expression"},
		{"trailing tokens", "1 2", "failed to parse expression"},
		{"reserved word", "select", "failed to parse expression"},
		{"unknown interval field", "INTERVAL '1' FORTNIGHT", "unknown interval field FORTNIGHT"},
		{"unknown extract field", "EXTRACT(CENTURY FROM d)", "unknown EXTRACT field CENTURY"},
		{"truncated unicode escape", `U&'\12'`, "truncated unicode escape"},
		{"bad unicode escape", `U&'\ZZZZ'`, "invalid unicode escape"},
		{"odd binary", "X'ABC'", "invalid binary literal X'ABC'"},
		{"long overflow", "99999999999999999999", "invalid number 99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseExpression(tt.sql)
			require.Error(t, err)
			require.Nil(t, expr)
			require.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseQuery(t *testing.T) {
	limit := int64(3)

	q, err := ParseQuery("select a, count(*) as n from s.t x where a > 1 group by a order by n desc limit 3")
	require.NoError(t, err)
	require.Equal(t, &ast.Query{
		Select: []ast.SelectItem{
			&ast.SingleColumn{Expression: id("a")},
			&ast.SingleColumn{Expression: call("count"), Alias: id("n")},
		},
		From:    &ast.Table{Name: ast.NewQualifiedName("s", "t"), Alias: id("x")},
		Where:   compare(ast.GreaterThan, id("a"), long(1)),
		GroupBy: []ast.GroupingElement{&ast.SimpleGroupBy{Columns: []ast.Expression{id("a")}}},
		OrderBy: &ast.OrderBy{SortItems: []*ast.SortItem{{SortKey: id("n"), Ordering: ast.Descending}}},
		Limit:   &limit,
	}, q)

	t.Run("grouping elements", func(t *testing.T) {
		q, err := ParseQuery("SELECT 1 GROUP BY GROUPING SETS ((a, t.b), ()), CUBE (c), ROLLUP (d, e), (f, g)")
		require.NoError(t, err)
		require.Equal(t, []ast.GroupingElement{
			&ast.GroupingSets{Sets: [][]ast.QualifiedName{
				{ast.NewQualifiedName("a"), ast.NewQualifiedName("t", "b")},
				{},
			}},
			&ast.Cube{Columns: []ast.QualifiedName{ast.NewQualifiedName("c")}},
			&ast.Rollup{Columns: []ast.QualifiedName{ast.NewQualifiedName("d"), ast.NewQualifiedName("e")}},
			&ast.SimpleGroupBy{Columns: []ast.Expression{id("f"), id("g")}},
		}, q.GroupBy)
	})

	t.Run("star items", func(t *testing.T) {
		prefix := ast.NewQualifiedName("t")

		q, err := ParseQuery("SELECT DISTINCT *, t.* FROM t")
		require.NoError(t, err)
		require.True(t, q.Distinct)
		require.Equal(t, []ast.SelectItem{&ast.AllColumns{}, &ast.AllColumns{Prefix: &prefix}}, q.Select)
	})

	t.Run("errors", func(t *testing.T) {
		for _, sql := range []string{"", "SELECT", "SELECT a FROM", "a + 1", "SELECT a LIMIT 99999999999999999999"} {
			_, err := ParseQuery(sql)
			require.Error(t, err, sql)
			require.Contains(t, err.Error(), "failed to parse query")
		}
	})
}

func TestParseScript(t *testing.T) {
	sql := `-- leading comment
a = ?;
SELECT b FROM t WHERE c = ? AND d = ?;
? + 1`

	nodes, err := ParseScript(strings.NewReader(sql))
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	require.Equal(t, compare(ast.Equal, id("a"), &ast.Parameter{Position: 0}), nodes[0])

	q, ok := nodes[1].(*ast.Query)
	require.True(t, ok)
	require.Equal(t, &ast.LogicalBinaryExpression{
		Operator: ast.And,
		Left:     compare(ast.Equal, id("c"), &ast.Parameter{Position: 0}),
		Right:    compare(ast.Equal, id("d"), &ast.Parameter{Position: 1}),
	}, q.Where)

	// numbering restarts for every item
	require.Equal(t, binary(ast.Add, &ast.Parameter{Position: 0}, long(1)), nodes[2])

	t.Run("empty", func(t *testing.T) {
		for _, sql := range []string{"", ";;", "-- nothing here\n"} {
			nodes, err := ParseString(sql)
			require.NoError(t, err)
			require.Empty(t, nodes)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseString("a +; b")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse SQL")
	})

	t.Run("conversion error names the item", func(t *testing.T) {
		_, err := ParseString("a; INTERVAL '1' FORTNIGHT")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse item 2")
	})
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		sql      string
		expected string
	}{
		{"a+b*c", "(a + (b * c))"},
		{"- -x", "- -x"},
		{"-(-1)", "- -1"},
		{"+a", "+a"},
		{"NOT NOT a", "(NOT (NOT a))"},
		{"x not in (select y from t)", `(NOT (x IN (SELECT y FROM "t")))`},
		{"a = any (select b from t)", `(a = ANY (SELECT b FROM "t"))`},
		{`"weird ""name"""`, `"weird ""name"""`},
		{"'é'", `U&'\00E9'`},
		{`U&'\+01F600'`, `U&'\+01F600'`},
		{"2.0", "2.0"},
		{"1e-7", "1e-07"},
		{"x'00'", "X'00'"},
		{"interval '3' second", "INTERVAL '3' SECOND"},
		{"date '2024-02-29'", "date '2024-02-29'"},
		{"cast(x as timestamp)", "CAST(x AS timestamp)"},
		{"if(a, b)", "IF(a, b)"},
		{"array[1, 2][i + 1]", "ARRAY[1,2][(i + 1)]"},
		{"m['k'].v", "m['k'].v"},
		{"(x) -> x", "(x) -> x"},
		{"case when a then 1 when b then 2 else 3 end", "(CASE WHEN a THEN 1 WHEN b THEN 2 ELSE 3 END)"},
		{
			"row_number() over (partition by a, b order by c nulls first rows between 1 preceding and 1 following)",
			`"row_number"() OVER (PARTITION BY a, b ORDER BY c ASC NULLS FIRST ROWS BETWEEN 1 PRECEDING AND 1 FOLLOWING)`,
		},
		{"count(*) filter (where x)", `"count"(*) FILTER (WHERE x)`},
		{"extract(timezone_hour from ts)", "EXTRACT(TIMEZONE_HOUR FROM ts)"},
		{"ts at time zone tz", "ts AT TIME ZONE tz"},
		{"grouping(a)", "GROUPING (a)"},
		{"try(1 / 0)", "TRY((1 / 0))"},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			require.Equal(t, tt.expected, requireRoundTrip(t, tt.sql))
		})
	}
}
