package format

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pseudomuto/exprfmt/pkg/ast"
)

func (v *visitor) stringLiteral(s string) string {
	if v.err != nil {
		return ""
	}

	out, err := StringLiteral(s)
	if err != nil {
		return v.fail(err)
	}
	return out
}

// StringLiteral quotes s as a SQL string literal. Quotes are doubled; text
// that is not entirely printable ASCII is emitted in the U&'...' form with
// \XXXX and \+XXXXXX escapes.
func StringLiteral(s string) (string, error) {
	s = strings.ReplaceAll(s, "'", "''")
	if isASCIIPrintable(s) {
		return "'" + s + "'", nil
	}

	var sb strings.Builder
	sb.WriteString("U&'")
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &InvalidEncodingError{Value: s}
		}
		i += size

		switch {
		case isASCIIPrintableRune(r):
			if r == '\\' {
				sb.WriteRune(r)
			}
			sb.WriteRune(r)
		case r <= 0xFFFF:
			fmt.Fprintf(&sb, "\\%04X", r)
		default:
			fmt.Fprintf(&sb, "\\+%06X", r)
		}
	}
	sb.WriteString("'")
	return sb.String(), nil
}

func isASCIIPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isASCIIPrintableRune(rune(s[i])) {
			return false
		}
	}
	return true
}

func isASCIIPrintableRune(r rune) bool {
	return r >= 0x20 && r < 0x7F
}

func binaryLiteral(b []byte) string {
	return "X'" + strings.ToUpper(hex.EncodeToString(b)) + "'"
}

// doubleLiteral renders the shortest text that round-trips to f. A decimal
// point is added to integral values so the text never reads back as an integer.
// NaN and the infinities have no literal syntax and render as NaN, +Inf and
// -Inf, which do not parse back to a DoubleLiteral.
func doubleLiteral(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eInN") {
		return s
	}
	return s + ".0"
}

func (v *visitor) intervalLiteral(n *ast.IntervalLiteral) string {
	var sign string
	switch n.Sign {
	case ast.Positive:
	case ast.Negative:
		sign = "- "
	default:
		return v.fail(&ExhaustivenessError{Kind: "interval sign", Value: n.Sign})
	}

	start, ok := n.StartField.Token()
	if !ok {
		return v.fail(&ExhaustivenessError{Kind: "interval field", Value: n.StartField})
	}

	out := "INTERVAL " + sign + "'" + n.Value + "' " + start
	if n.EndField != nil {
		end, ok := n.EndField.Token()
		if !ok {
			return v.fail(&ExhaustivenessError{Kind: "interval field", Value: *n.EndField})
		}
		out += " TO " + end
	}
	return out
}
