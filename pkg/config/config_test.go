package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pseudomuto/exprfmt/pkg/ast"
	. "github.com/pseudomuto/exprfmt/pkg/config"
	"github.com/pseudomuto/exprfmt/pkg/consts"
	"github.com/pseudomuto/exprfmt/pkg/format"
)

//go:embed testdata/exprfmt.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal exprfmt config")

		// Empty input
		config, err = LoadConfig(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal exprfmt config")

		// Valid YAML with no known fields
		config, err = LoadConfig(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.NotNil(t, config)
		require.Nil(t, config.Parameters)
		require.Equal(t, consts.DefaultMaxDepth, config.MaxDepth)
		require.Equal(t, consts.DefaultConcurrency, config.Concurrency)
	})

	t.Run("negative values fall back to defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("max_depth: -1\nconcurrency: 0\n"))
		require.NoError(t, err)
		require.Equal(t, consts.DefaultMaxDepth, config.MaxDepth)
		require.Equal(t, consts.DefaultConcurrency, config.Concurrency)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), consts.DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		config, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")

		// Directory instead of file
		config, err = LoadConfigFile(t.TempDir())
		require.Error(t, err)
		require.Nil(t, config)
		require.True(t, strings.Contains(err.Error(), "failed to open file") ||
			strings.Contains(err.Error(), "failed to unmarshal exprfmt config"))
	})
}

func TestDefault(t *testing.T) {
	config := Default()
	require.Nil(t, config.Parameters)
	require.Equal(t, consts.DefaultMaxDepth, config.MaxDepth)
	require.Equal(t, consts.DefaultConcurrency, config.Concurrency)

	params, err := config.FormatParameters()
	require.NoError(t, err)
	require.False(t, params.Present())
}

func TestConfig_FormatParameters(t *testing.T) {
	t.Run("parses each parameter", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)

		params, err := config.FormatParameters()
		require.NoError(t, err)
		require.True(t, params.Present())
		require.Equal(t, 3, params.Len())
	})

	t.Run("empty list is present", func(t *testing.T) {
		config := &Config{Parameters: []string{}}

		params, err := config.FormatParameters()
		require.NoError(t, err)
		require.True(t, params.Present())
		require.Equal(t, 0, params.Len())
	})

	t.Run("invalid parameter", func(t *testing.T) {
		config := &Config{Parameters: []string{"1", "(("}}

		_, err := config.FormatParameters()
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid parameter 1")
	})
}

func TestConfig_GetFormatter(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	formatter, err := config.GetFormatter()
	require.NoError(t, err)

	out, err := formatter.Expression(&ast.ArithmeticBinaryExpression{
		Operator: ast.Add,
		Left:     &ast.Parameter{Position: 0},
		Right:    &ast.Parameter{Position: 1},
	})
	require.NoError(t, err)
	require.Equal(t, "(42 + 'O''Brien')", out)

	_, err = formatter.Expression(&ast.Parameter{Position: 3})
	var indexErr *format.InvalidParameterIndexError
	require.ErrorAs(t, err, &indexErr)
	require.Equal(t, 3, indexErr.Index)
	require.Equal(t, 2, indexErr.Max)
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, []string{"42", "'O''Brien'", "ARRAY[1, 2]"}, config.Parameters)
	require.Equal(t, 64, config.MaxDepth)
	require.Equal(t, 2, config.Concurrency)
}
