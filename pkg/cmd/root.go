package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/pseudomuto/exprfmt/pkg/config"
	"github.com/pseudomuto/exprfmt/pkg/consts"
)

type (
	// Version describes the build being run. GoReleaser fills it in through main.
	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// settings is shared between the root command and its subcommands. It is populated
	// by the root Before hook, so subcommands must only read it from their actions.
	settings struct {
		config *config.Config
		logger *slog.Logger
	}
)

// Run creates and executes the exprfmt CLI application with the given version and
// command-line arguments.
//
// Global Flags:
//   - --config, -c: Config file (defaults to exprfmt.yaml, or $EXPRFMT_CONFIG)
//   - --verbose: Log debug output to stderr
//
// A missing default config file is not an error; the built-in defaults apply. An
// explicitly selected config file must exist.
//
// Example usage:
//
//	err := Run(ctx, Version{Version: "v1.0.0"}, []string{"exprfmt", "fmt", "queries/"})
//	err := Run(ctx, Version{}, []string{"exprfmt", "fmt", "-e", "a+1 >  b"})
func Run(ctx context.Context, version Version, args []string) error {
	return newApp(version).Run(ctx, args)
}

func newApp(version Version) *cli.Command {
	s := &settings{config: config.Default(), logger: slog.Default()}

	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", version.Timestamp)
	}

	return &cli.Command{
		Name:  "exprfmt",
		Usage: "Render SQL expression trees back into canonical SQL text",
		Description: `exprfmt parses SQL expressions and SELECT queries and prints them in a
canonical, fully parenthesized form that re-parses to the same tree.`,
		Version: version.Version,
		// parameters such as ARRAY[1, 2] contain commas
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the exprfmt config file",
				Sources: cli.EnvVars("EXPRFMT_CONFIG"),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output",
			},
		},
		Before:   s.load,
		Commands: []*cli.Command{fmtCmd(s)},
	}
}

func (s *settings) load(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	s.logger = slog.New(slog.NewTextHandler(cmd.ErrWriter, &slog.HandlerOptions{Level: level}))

	path := cmd.String("config")
	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		if !cmd.IsSet("config") && errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("No config file found, using defaults", "path", path)
			return ctx, nil
		}

		return ctx, err
	}

	s.logger.Debug("Loaded config", "path", path)
	s.config = cfg
	return ctx, nil
}
