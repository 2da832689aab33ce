package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/exprfmt/pkg/ast"
)

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// Parameters substitute positional ? markers. When absent the markers
		// are rendered as "?".
		Parameters Parameters
		// Statements renders the query behind subquery expressions. Defaults to
		// the Formatter itself.
		Statements StatementFormatter
	}

	// Parameters is an optional, ordered list of expressions substituted for
	// ? markers. The zero value is an absent list, which is distinct from a
	// present but empty one.
	Parameters struct {
		values  []ast.Expression
		present bool
	}

	// StatementFormatter renders query-level nodes. It receives the parameter
	// list of the expression being formatted.
	StatementFormatter interface {
		FormatStatement(stmt ast.Statement, params Parameters) (string, error)
	}

	// Formatter renders expression trees as text. It holds no mutable state and
	// may be shared between goroutines.
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults leaves parameters absent and renders subqueries with the built-in
// query formatter.
var Defaults = &FormatterOptions{}

// WithParameters returns a present parameter list holding values.
func WithParameters(values ...ast.Expression) Parameters {
	if values == nil {
		values = []ast.Expression{}
	}
	return Parameters{values: values, present: true}
}

// Present reports whether a list was supplied.
func (p Parameters) Present() bool { return p.present }

// Len returns the number of parameters.
func (p Parameters) Len() int { return len(p.values) }

// New creates a new Formatter with the specified options
func New(options *FormatterOptions) *Formatter {
	if options == nil {
		options = Defaults
	}
	return &Formatter{options: *options}
}

// WithParameters returns a copy of f that substitutes ? markers from params.
func (f *Formatter) WithParameters(params Parameters) *Formatter {
	opts := f.options
	opts.Parameters = params
	return &Formatter{options: opts}
}

// Expression renders expr. No partial output is returned on error.
func (f *Formatter) Expression(expr ast.Expression) (string, error) {
	v := f.visitor()
	out := v.expression(expr)
	if v.err != nil {
		return "", v.err
	}
	return out, nil
}

// Statement renders a query-level node.
func (f *Formatter) Statement(stmt ast.Statement) (string, error) {
	v := f.visitor()
	out := v.statement(stmt)
	if v.err != nil {
		return "", v.err
	}
	return out, nil
}

// FormatStatement implements StatementFormatter.
func (f *Formatter) FormatStatement(stmt ast.Statement, params Parameters) (string, error) {
	return f.WithParameters(params).Statement(stmt)
}

// Format writes each node terminated by ";" on its own line. Nodes must be
// expressions or statements.
func (f *Formatter) Format(w io.Writer, nodes ...ast.Node) error {
	lines := make([]string, 0, len(nodes))
	for _, n := range nodes {
		var (
			out string
			err error
		)

		switch n := n.(type) {
		case ast.Expression:
			out, err = f.Expression(n)
		case ast.Statement:
			out, err = f.Statement(n)
		default:
			err = unsupported(n)
		}
		if err != nil {
			return err
		}

		lines = append(lines, out+";\n")
	}

	if _, err := io.WriteString(w, strings.Join(lines, "")); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}
	return nil
}

func (f *Formatter) statements() StatementFormatter {
	if f.options.Statements != nil {
		return f.options.Statements
	}
	return f
}

// FormatExpression renders expr, substituting ? markers from params when present.
func FormatExpression(expr ast.Expression, params Parameters) (string, error) {
	return New(&FormatterOptions{Parameters: params}).Expression(expr)
}

// Format writes nodes using a Formatter built from options (convenience function)
func Format(w io.Writer, options *FormatterOptions, nodes ...ast.Node) error {
	return New(options).Format(w, nodes...)
}
