package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pseudomuto/exprfmt/pkg/ast"
	"github.com/pseudomuto/exprfmt/pkg/config"
	"github.com/pseudomuto/exprfmt/pkg/consts"
	"github.com/pseudomuto/exprfmt/pkg/format"
	"github.com/pseudomuto/exprfmt/pkg/parser"
)

// fmtOptions carries everything a single fmt invocation needs. The formatter is
// immutable and shared by all workers.
type fmtOptions struct {
	formatter   *format.Formatter
	maxDepth    int
	concurrency int
	writeBack   bool
	logger      *slog.Logger
}

// fmtCmd creates a CLI command that formats SQL expressions and queries.
//
// Input is either a path or an inline expression:
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files
//   - -e: Format the given text instead of reading files
//
// Each file holds `;` separated expressions or SELECT queries. Files are formatted in
// parallel (see the concurrency config setting) but always printed in path order.
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -e: Format the given text
//   - -p: Parameter substituted for ? markers, repeatable; overrides the config file
//
// Examples:
//
//	# Format single file to stdout
//	exprfmt fmt queries.sql
//
//	# Format all SQL files in directory tree in-place
//	exprfmt fmt -w queries/
//
//	# Substitute parameters
//	exprfmt fmt -p 42 -p "'abc'" -e "a = ? AND b = ?"
func fmtCmd(s *settings) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL expressions and queries",
		ArgsUsage: "<path>",
		// parameters such as ARRAY[1, 2] contain commas
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "Format the given SQL text instead of files",
			},
			&cli.StringSliceFlag{
				Name:    "param",
				Aliases: []string{"p"},
				Usage:   "Expression substituted for the next ? marker",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := s.fmtOptions(cmd)
			if err != nil {
				return err
			}

			if cmd.IsSet("expr") {
				if cmd.Args().Len() != 0 || opts.writeBack {
					return errors.New("--expr cannot be combined with a path or --write")
				}

				return formatText(cmd.String("expr"), opts, cmd.Root().Writer)
			}

			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			return formatPath(ctx, cmd.Args().First(), opts, cmd.Root().Writer)
		},
	}
}

func (s *settings) fmtOptions(cmd *cli.Command) (*fmtOptions, error) {
	cfg := s.config
	if cmd.IsSet("param") {
		cfg = &config.Config{Parameters: cmd.StringSlice("param")}
	}

	formatter, err := cfg.GetFormatter()
	if err != nil {
		return nil, err
	}

	return &fmtOptions{
		formatter:   formatter,
		maxDepth:    s.config.MaxDepth,
		concurrency: s.config.Concurrency,
		writeBack:   cmd.Bool("write"),
		logger:      s.logger,
	}, nil
}

// formatPath handles formatting of either a single file or directory recursively.
func formatPath(ctx context.Context, path string, opts *fmtOptions, writer io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	files := []string{path}
	if info.IsDir() {
		if files, err = sqlFiles(path); err != nil {
			return err
		}
	}

	return formatFiles(ctx, files, opts, writer)
}

// sqlFiles recursively collects the .sql files below dir in lexical order.
func sqlFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", dir)
	}

	return files, nil
}

// formatFiles formats files on a bounded worker pool. Output is buffered per file and
// written in input order once every file succeeded.
func formatFiles(ctx context.Context, files []string, opts *fmtOptions, writer io.Writer) error {
	results := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.concurrency, 1))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := formatFile(file, opts)
			if err != nil {
				return errors.Wrapf(err, "failed to format file: %s", file)
			}

			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		opts.logger.Error("Formatting failed", "err", err)
		return err
	}

	if opts.writeBack {
		return nil
	}

	for _, out := range results {
		if _, err := fmt.Fprint(writer, out); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return nil
}

// formatFile formats a single SQL file and returns the result. With writeBack the
// result is also written over the source file.
func formatFile(path string, opts *fmtOptions) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted, err := formatSQL(bytes.NewReader(content), opts)
	if err != nil {
		return "", errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	if opts.writeBack {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return "", errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	}

	opts.logger.Debug("Formatted file", "path", path, "write", opts.writeBack)
	return formatted, nil
}

// formatText formats inline SQL text, as given to --expr.
func formatText(sql string, opts *fmtOptions, writer io.Writer) error {
	formatted, err := formatSQL(strings.NewReader(sql), opts)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(writer, formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}

func formatSQL(r io.Reader, opts *fmtOptions) (string, error) {
	nodes, err := parser.ParseScript(r)
	if err != nil {
		return "", err
	}

	for i, n := range nodes {
		depth := ast.Depth(n)
		if depth > opts.maxDepth {
			return "", errors.Errorf("item %d is nested %d levels deep, the limit is %d", i+1, depth, opts.maxDepth)
		}

		opts.logger.Debug("Formatting item", "item", i+1, "depth", depth, "markers", parameterMarkers(n))
	}

	var buf strings.Builder
	if err := opts.formatter.Format(&buf, nodes...); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// parameterMarkers counts the ? markers in the tree rooted at n.
func parameterMarkers(n ast.Node) int {
	count := 0
	ast.Walk(n, func(n ast.Node) bool {
		if _, ok := n.(*ast.Parameter); ok {
			count++
		}
		return true
	})
	return count
}
