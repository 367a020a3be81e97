package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store/memstore"
	"github.com/idilsaglam/tasks/internal/ui"
)

type promptChoice string

const (
	choiceAdd      promptChoice = "add"
	choiceComplete promptChoice = "complete"
	choiceToggle   promptChoice = "toggle"
	choicePurge    promptChoice = "purge"
	choiceQuit     promptChoice = "quit"
)

// PromptCmd implements tasks prompt.
type PromptCmd struct {
	flags *Flags

	accessible bool
}

// NewPromptCmd creates a new prompt command.
func NewPromptCmd(flags *Flags) *PromptCmd {
	return &PromptCmd{flags: flags}
}

// Register adds the prompt command to the application.
func (cmd *PromptCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "prompt",
		Usage:     "Edit the list through a menu of prompts",
		UsageText: "tasks prompt [--accessible]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "accessible",
				Usage:       "plain line prompts (screen readers, dumb terminals)",
				Sources:     cli.EnvVars("ACCESSIBLE"),
				Destination: &cmd.accessible,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *PromptCmd) run(ctx context.Context, c *cli.Command) error {
	s, err := cmd.flags.OpenStore()
	if err != nil {
		return err
	}

	p := &promptSession{
		store:      s,
		out:        c.Root().Writer,
		filter:     cmd.flags.config().Filter(),
		accessible: cmd.accessible,
	}
	err = p.loop(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

type promptSession struct {
	store      *memstore.Store
	out        io.Writer
	filter     model.Filter
	accessible bool
}

func (p *promptSession) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ui.RenderList(p.out, ui.ListView{
			Name:    p.store.Name(),
			Counts:  p.store.Count(),
			Records: p.store.List(p.filter),
			Filter:  p.filter,
		})

		var choice promptChoice
		err := p.run(huh.NewSelect[promptChoice]().
			Title(p.menuTitle()).
			Options(p.menuOptions()...).
			Value(&choice))
		if err != nil {
			return err
		}

		switch choice {
		case choiceQuit:
			return nil
		case choiceAdd:
			var label string
			err := p.run(huh.NewInput().
				Title("Enter task").
				Validate(validateLabel).
				Value(&label))
			if err != nil {
				return err
			}
			if _, err := p.store.Add(label); err != nil {
				ui.Fail(p.out, err.Error())
			}
		case choiceComplete:
			opts := completeOptions(p.store)
			if len(opts) == 0 {
				continue
			}
			var ids []int
			err := p.run(huh.NewMultiSelect[int]().
				Title("Mark tasks complete").
				Options(opts...).
				Value(&ids))
			if err != nil {
				return err
			}
			p.apply(choice, ids)
		default:
			p.apply(choice, nil)
		}
	}
}

// apply performs the store side of a menu choice.
func (p *promptSession) apply(choice promptChoice, ids []int) {
	switch choice {
	case choiceComplete:
		for _, id := range ids {
			p.store.Complete(id)
		}
	case choiceToggle:
		if p.filter == model.FilterAll {
			p.filter = model.FilterIncomplete
		} else {
			p.filter = model.FilterAll
		}
	case choicePurge:
		p.store.RemoveCompleted()
	}
}

func (p *promptSession) menuTitle() string {
	return fmt.Sprintf("%s (%d tasks to do)", p.store.Name(), p.store.Count().Incomplete)
}

func (p *promptSession) menuOptions() []huh.Option[promptChoice] {
	toggle := "Show completed tasks"
	if p.filter == model.FilterAll {
		toggle = "Hide completed tasks"
	}
	opts := []huh.Option[promptChoice]{
		huh.NewOption("Add new task", choiceAdd),
	}
	if p.store.Count().Incomplete > 0 {
		opts = append(opts, huh.NewOption("Complete tasks", choiceComplete))
	}
	opts = append(opts, huh.NewOption(toggle, choiceToggle))
	if p.store.Count().Done() > 0 {
		opts = append(opts, huh.NewOption("Purge completed tasks", choicePurge))
	}
	return append(opts, huh.NewOption("Quit", choiceQuit))
}

func (p *promptSession) run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.accessible).
		Run()
}

func completeOptions(s *memstore.Store) []huh.Option[int] {
	records := s.List(model.FilterIncomplete)
	opts := make([]huh.Option[int], 0, len(records))
	for _, r := range records {
		opts = append(opts, huh.NewOption(fmt.Sprintf("#%d %s", r.ID, r.Label), r.ID))
	}
	return opts
}

func validateLabel(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("task label is required")
	}
	return nil
}
