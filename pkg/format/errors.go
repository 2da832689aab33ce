package format

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/exprfmt/pkg/ast"
)

type (
	// UnsupportedNodeError is returned when a node has no rendering rule. It
	// signals incomplete grammar coverage rather than bad input.
	UnsupportedNodeError struct {
		Kind string
	}

	// InvalidParameterIndexError is returned when a ? marker refers past the end
	// of the supplied parameter list.
	InvalidParameterIndexError struct {
		Index int
		Max   int
	}

	// InvalidEncodingError is returned when a string literal is not valid UTF-8.
	InvalidEncodingError struct {
		Value string
	}

	// ExhaustivenessError is returned when an enumerated field holds a value
	// outside its declared constants.
	ExhaustivenessError struct {
		Kind  string
		Value fmt.Stringer
	}
)

func (e *UnsupportedNodeError) Error() string {
	return "unsupported node: " + e.Kind
}

func (e *InvalidParameterIndexError) Error() string {
	return fmt.Sprintf("invalid parameter number %d, max value is %d", e.Index, e.Max)
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 encoding in characters: %q", e.Value)
}

func (e *ExhaustivenessError) Error() string {
	return fmt.Sprintf("unhandled %s: %s", e.Kind, e.Value)
}

func unsupported(n ast.Node) *UnsupportedNodeError {
	if n == nil {
		return &UnsupportedNodeError{Kind: "<nil>"}
	}
	return &UnsupportedNodeError{Kind: strings.TrimPrefix(fmt.Sprintf("%T", n), "*")}
}
