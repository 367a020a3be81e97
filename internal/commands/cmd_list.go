package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store/memstore"
	"github.com/idilsaglam/tasks/internal/ui"
)

// ListCmd implements tasks list.
type ListCmd struct {
	flags *Flags

	all    bool
	group  bool
	asJSON bool
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List records",
		UsageText: "tasks list [--all] [--group] [--json]",
		Description: `Lists the records of the store.

By default only incomplete records are shown (see list.filter in the config).

Examples:
  tasks list
  tasks list --all --group
  tasks --seed work.yaml list --json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "include completed records",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "group",
				Aliases:     []string{"g"},
				Usage:       "group output by pending/done",
				Destination: &cmd.group,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print records as JSON lines",
				Destination: &cmd.asJSON,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	s, err := cmd.flags.OpenStore()
	if err != nil {
		return err
	}

	filter := cmd.flags.config().Filter()
	if cmd.all {
		filter = model.FilterAll
	}
	records := s.List(filter)

	w := c.Root().Writer
	if cmd.asJSON {
		enc := json.NewEncoder(w)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
		}
		return nil
	}

	ui.RenderList(w, ui.ListView{
		Name:    s.Name(),
		Counts:  s.Count(),
		Records: records,
		Filter:  filter,
		Group:   cmd.group || cmd.flags.config().List.Group,
	})
	return nil
}

// ShowCmd implements tasks show.
type ShowCmd struct {
	flags *Flags
}

// NewShowCmd creates a new show command.
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application.
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show one record",
		UsageText: "tasks show <id>",
		Action:    cmd.run,
	})
	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: tasks show <id>")
	}
	id, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}

	s, err := cmd.flags.OpenStore()
	if err != nil {
		return err
	}

	w := c.Root().Writer
	if r, ok := s.Get(id); ok {
		_, _ = fmt.Fprintln(w, r.Details())
	} else {
		_, _ = fmt.Fprintf(w, "no record #%d\n", id)
	}
	return nil
}

// CountCmd implements tasks count.
type CountCmd struct {
	flags *Flags
}

// NewCountCmd creates a new count command.
func NewCountCmd(flags *Flags) *CountCmd {
	return &CountCmd{flags: flags}
}

// Register adds the count command to the application.
func (cmd *CountCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "count",
		Usage:     "Print total and incomplete record counts",
		UsageText: "tasks count",
		Action:    cmd.run,
	})
	return app
}

func (cmd *CountCmd) run(ctx context.Context, c *cli.Command) error {
	s, err := cmd.flags.OpenStore()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(c.Root().Writer, formatCounts(s.Count()))
	return nil
}

func formatCounts(c model.Counts) string {
	return fmt.Sprintf("total: %d, incomplete: %d", c.Total, c.Incomplete)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number: %q", memstore.ErrInvalidInput, s)
	}
	return id, nil
}
