package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/tui"
	"github.com/idilsaglam/tasks/internal/ui"
)

// TuiCmd implements tasks tui, also the default action.
type TuiCmd struct {
	flags *Flags

	all bool
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the interactive list",
		UsageText: "tasks tui [--all]",
		Description: `Opens a full-screen list over a fresh store.

Keys: space complete, a add, e relabel, x remove, c clear done,
tab switch between incomplete and all, / filter, q quit.

When stdout is not a terminal the plain listing is printed instead.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "start with completed records visible",
				Destination: &cmd.all,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *TuiCmd) run(ctx context.Context, c *cli.Command) error {
	s, err := cmd.flags.OpenStore()
	if err != nil {
		return err
	}

	filter := cmd.flags.config().Filter()
	if cmd.all {
		filter = model.FilterAll
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Debug().Msg("stdout is not a terminal, printing list")
		ui.RenderList(c.Root().Writer, ui.ListView{
			Name:    s.Name(),
			Counts:  s.Count(),
			Records: s.List(filter),
			Filter:  filter,
			Group:   cmd.flags.config().List.Group,
		})
		return nil
	}

	return tui.Run(ctx, s, filter)
}
