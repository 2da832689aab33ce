package format

import (
	"strings"

	"github.com/pseudomuto/exprfmt/pkg/ast"
)

// identifier renders a bare identifier as-is and a delimited one in double
// quotes with embedded quotes doubled.
func identifier(id *ast.Identifier) string {
	if !id.Delimited {
		return id.Value
	}
	return quote(id.Value)
}

// qualifiedName quotes every part, whatever the original spelling was.
func qualifiedName(name ast.QualifiedName) string {
	parts := make([]string, 0, len(name.Parts))
	for _, part := range name.Parts {
		parts = append(parts, quote(part))
	}
	return strings.Join(parts, ".")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
