package format_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/pseudomuto/exprfmt/pkg/ast"
	. "github.com/pseudomuto/exprfmt/pkg/format"
	"github.com/pseudomuto/exprfmt/pkg/parser"
)

func TestGoldenFiles(t *testing.T) {
	testdataDir := "testdata"

	// Find all *.in.sql files
	pattern := filepath.Join(testdataDir, "*.in.sql")
	matches, err := filepath.Glob(pattern)
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.sql files found in testdata directory")

	for _, inputFile := range matches {
		// "example.in.sql" -> "example.sql"
		basename := filepath.Base(inputFile)
		outputName := strings.TrimSuffix(basename, ".in.sql") + ".sql"

		t.Run(outputName, func(t *testing.T) {
			inputSQL, err := os.ReadFile(inputFile)
			require.NoError(t, err, "Failed to read input file %s", inputFile)

			nodes, err := parser.ParseString(string(inputSQL))
			require.NoError(t, err, "Failed to parse SQL from %s", inputFile)

			var buf bytes.Buffer
			require.NoError(t, Format(&buf, Defaults, nodes...))
			golden.Assert(t, buf.String(), outputName)

			// formatting is idempotent and preserves the tree
			reparsed, err := parser.ParseString(buf.String())
			require.NoError(t, err)
			require.Len(t, reparsed, len(nodes))
			for i := range nodes {
				require.True(t, ast.Identical(nodes[i], reparsed[i]), "item %d changed after formatting", i+1)
			}

			var again bytes.Buffer
			require.NoError(t, Format(&again, Defaults, reparsed...))
			require.Equal(t, buf.String(), again.String())
		})
	}
}
