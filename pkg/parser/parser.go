package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/pseudomuto/exprfmt/pkg/ast"
)

var (
	keywords = []string{
		"ALL", "AND", "ANY", "ARRAY", "AS", "ASC", "AT", "BETWEEN", "BY", "CASE", "CAST", "CHAR",
		"COALESCE", "CUBE", "CURRENT", "DECIMAL", "DESC", "DISTINCT", "ELSE", "END", "ESCAPE",
		"EXISTS", "EXTRACT", "FALSE", "FILTER", "FIRST", "FOLLOWING", "FROM", "GROUP", "GROUPING",
		"HAVING", "IF", "IN", "INTERVAL", "IS", "LAST", "LIKE", "LIMIT", "NOT", "NULL", "NULLIF",
		"NULLS", "OR", "ORDER", "OVER", "PARTITION", "PRECEDING", "RANGE", "ROLLUP", "ROW", "ROWS",
		"SELECT", "SETS", "SOME", "THEN", "TIME", "TIMESTAMP", "TO", "TRUE", "TRY_CAST", "TRY",
		"UNBOUNDED", "WHEN", "WHERE", "ZONE",
	}

	// sqlLexer tokenizes the expression dialect produced by the format package. Keywords are
	// matched ahead of identifiers, so a column named like a keyword must be quoted.
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "UnicodeString", Pattern: `[uU]&'([^']|'')*'`},
		{Name: "Binary", Pattern: `[xX]'[0-9a-fA-F]*'`},
		{Name: "String", Pattern: `'([^']|'')*'`},
		{Name: "QuotedIdent", Pattern: `"([^"]|"")*"`},
		{Name: "Float", Pattern: `(\d+\.\d*|\.\d+)([eE][+-]?\d+)?|\d+[eE][+-]?\d+`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Keyword", Pattern: `(?i)\b(` + strings.Join(keywords, "|") + `)\b`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Operator", Pattern: `<>|!=|<=|>=|->|[-+*/%=<>]`},
		{Name: "Punct", Pattern: `[(),.;\[\]?]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	options = []participle.Option{
		participle.Lexer(sqlLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Keyword"),
		participle.UseLookahead(participle.MaxLookahead),
	}

	scriptParser     = participle.MustBuild[script](options...)
	queryParser      = participle.MustBuild[query](options...)
	expressionParser = participle.MustBuild[expression](options...)
)

// ParseExpression parses a single expression such as `a + 1 > b` into an AST. Each `?` placeholder
// becomes an ast.Parameter numbered from zero in order of appearance.
func ParseExpression(sql string) (ast.Expression, error) {
	parsed, err := expressionParser.ParseString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse expression")
	}

	expr, err := new(converter).expression(parsed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse expression")
	}

	return expr, nil
}

// ParseQuery parses a single SELECT statement.
func ParseQuery(sql string) (*ast.Query, error) {
	parsed, err := queryParser.ParseString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse query")
	}

	q, err := new(converter).query(parsed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse query")
	}

	return q, nil
}

// ParseScript parses a `;` separated sequence of queries and expressions. The returned nodes are
// either *ast.Query values or ast.Expression values, in source order. Parameter positions restart
// at zero for every item.
//
// Example usage:
//
//	f, err := os.Open("expressions.sql")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	nodes, err := parser.ParseScript(f)
//	if err != nil {
//		return err
//	}
//
//	return format.Format(os.Stdout, format.Defaults, nodes...)
func ParseScript(r io.Reader) ([]ast.Node, error) {
	parsed, err := scriptParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	nodes := make([]ast.Node, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		node, err := new(converter).scriptItem(item)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse item %d", i+1)
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

// ParseString is shorthand for ParseScript(strings.NewReader(sql)).
func ParseString(sql string) ([]ast.Node, error) {
	return ParseScript(strings.NewReader(sql))
}
