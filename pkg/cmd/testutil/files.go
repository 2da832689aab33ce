package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pseudomuto/exprfmt/pkg/consts"
)

// RequireWriteFile writes content to dir/name, creating parent directories as needed.
func RequireWriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))

	return path
}

// RequireFileContent asserts that the file at path holds exactly expected.
func RequireFileContent(t *testing.T, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Equal(t, expected, string(content))
}
