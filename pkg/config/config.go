package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pseudomuto/exprfmt/pkg/ast"
	"github.com/pseudomuto/exprfmt/pkg/consts"
	"github.com/pseudomuto/exprfmt/pkg/format"
	"github.com/pseudomuto/exprfmt/pkg/parser"
)

// Config represents the exprfmt configuration file.
type Config struct {
	// Parameters are expression texts substituted, in order, for the ? markers of every
	// formatted expression. When the key is omitted markers are rendered as "?"; an empty
	// list makes every marker an error.
	Parameters []string `yaml:"parameters"`

	// MaxDepth rejects parsed trees nested deeper than this before they reach the formatter
	MaxDepth int `yaml:"max_depth,omitempty"`

	// Concurrency is the number of files formatted in parallel
	Concurrency int `yaml:"concurrency,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		MaxDepth:    consts.DefaultMaxDepth,
		Concurrency: consts.DefaultConcurrency,
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Unset max_depth and concurrency values fall back to consts.DefaultMaxDepth and
// consts.DefaultConcurrency.
//
// Example:
//
//	yamlData := `
//	parameters: ["42", "'abc'"]
//	concurrency: 8
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Max depth: %d\n", cfg.MaxDepth)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal exprfmt config")
	}

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = consts.DefaultMaxDepth
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = consts.DefaultConcurrency
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// FormatParameters parses the configured parameter texts into a parameter list for the
// formatter. A nil Parameters slice yields an absent list.
func (c *Config) FormatParameters() (format.Parameters, error) {
	if c.Parameters == nil {
		return format.Parameters{}, nil
	}

	values := make([]ast.Expression, 0, len(c.Parameters))
	for i, p := range c.Parameters {
		expr, err := parser.ParseExpression(p)
		if err != nil {
			return format.Parameters{}, errors.Wrapf(err, "invalid parameter %d", i)
		}
		values = append(values, expr)
	}

	return format.WithParameters(values...), nil
}

// GetFormatter returns a formatter that substitutes the configured parameters.
func (c *Config) GetFormatter() (*format.Formatter, error) {
	params, err := c.FormatParameters()
	if err != nil {
		return nil, err
	}

	return format.New(&format.FormatterOptions{Parameters: params}), nil
}
