package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ShellCmd implements tasks shell.
type ShellCmd struct {
	flags *Flags
}

// NewShellCmd creates a new shell command.
func NewShellCmd(flags *Flags) *ShellCmd {
	return &ShellCmd{flags: flags}
}

// Register adds the shell command to the application.
func (cmd *ShellCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "shell",
		Usage:     "Edit the list with line commands read from stdin",
		UsageText: "tasks shell",
		Description: `Starts a line-oriented session over a fresh store.

Commands are read from stdin, one per line, so the shell can also be scripted:

  printf 'add Buy milk\nls all\n' | tasks shell

Type 'help' inside the shell for the command list.`,
		Action: cmd.run,
	})
	return app
}

func (cmd *ShellCmd) run(ctx context.Context, c *cli.Command) error {
	s, err := cmd.flags.OpenStore()
	if err != nil {
		return err
	}

	sh := &Shell{
		Store:  s,
		Out:    c.Root().Writer,
		Filter: cmd.flags.config().Filter(),
		Group:  cmd.flags.config().List.Group,
		Log:    log.With().Str("component", "shell").Logger(),
	}
	in := c.Root().Reader
	if in == nil {
		in = os.Stdin
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		sh.Prompt = s.Name() + "> "
	}
	return sh.Run(ctx, in)
}
