// Package commands wires the tasks commands onto a urfave/cli root command.
package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/tasks/internal/config"
	"github.com/idilsaglam/tasks/internal/logging"
	"github.com/idilsaglam/tasks/internal/ui"
)

// NewApp returns the root command with every subcommand registered. The
// returned closer releases the log file, if one was opened.
func NewApp(flags *Flags, version string) (*cli.Command, func()) {
	logCloser := func() {}

	app := &cli.Command{
		Name:      "tasks",
		Usage:     "A small in-memory task list",
		UsageText: "tasks [global options] command [command options]",
		Description: `tasks keeps a named list of tasks in memory for the length of one run.

Records can be seeded from a JSON or YAML file; nothing is written back.
Run 'tasks' with no arguments to open the interactive list.
Run 'tasks shell' for a line-oriented session.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, disabled)",
				Sources:     cli.EnvVars("TASKS_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write JSON logs to this file instead of stderr",
				Sources:     cli.EnvVars("TASKS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKS_CONFIG"),
				Value:       config.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "seed",
				Usage:       "JSON or YAML file with the initial records",
				Sources:     cli.EnvVars("TASKS_SEED"),
				Destination: &flags.SeedFile,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "store name (overrides config and seed file)",
				Destination: &flags.StoreName,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "output theme (classic, neon, mono)",
				Destination: &flags.Theme,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logging.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			theme := cfg.Theme
			if flags.Theme != "" {
				theme = flags.Theme
			}
			ui.SetTheme(theme)

			return ctx, nil
		},
	}

	tuiCmd := NewTuiCmd(flags)

	app = NewListCmd(flags).Register(app)
	app = NewShowCmd(flags).Register(app)
	app = NewCountCmd(flags).Register(app)
	app = NewShellCmd(flags).Register(app)
	app = NewPromptCmd(flags).Register(app)
	app = tuiCmd.Register(app)
	app = NewDemoCmd().Register(app)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tasks --help' for usage", c.Args().First())
		}
		return tuiCmd.run(ctx, c)
	}

	return app, func() { logCloser() }
}
