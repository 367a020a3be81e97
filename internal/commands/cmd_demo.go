package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store/memstore"
)

// DemoCmd implements tasks demo.
type DemoCmd struct{}

// NewDemoCmd creates a new demo command.
func NewDemoCmd() *DemoCmd {
	return &DemoCmd{}
}

// Register adds the demo command to the application.
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Walk through the store operations on a sample list",
		UsageText: "tasks demo",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runDemo(c.Root().Writer)
		},
	})
	return app
}

func runDemo(w io.Writer) error {
	s := memstore.New("Work")
	_, _ = fmt.Fprintf(w, "create(%q)\n", s.Name())

	id, err := s.AddWithID("Learn TS", 1)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "add(%q, 1) -> %d\n", "Learn TS", id)

	id, err = s.Add("Write spec")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "add(%q) -> %d\n", "Write spec", id)

	s.Complete(1)
	_, _ = fmt.Fprintln(w, "complete(1)")
	_, _ = fmt.Fprintf(w, "count() -> %s\n", formatCounts(s.Count()))

	_, _ = fmt.Fprintln(w, "list(all):")
	for _, r := range s.List(model.FilterAll) {
		_, _ = fmt.Fprintf(w, "  %s\n", r.Details())
	}
	_, _ = fmt.Fprintln(w, "list(incomplete):")
	for _, r := range s.List(model.FilterIncomplete) {
		_, _ = fmt.Fprintf(w, "  %s\n", r.Details())
	}

	n := s.RemoveCompleted()
	_, _ = fmt.Fprintf(w, "removeCompleted() -> %d removed\n", n)
	_, _ = fmt.Fprintf(w, "count() -> %s\n", formatCounts(s.Count()))

	if _, err := s.AddWithID("", 5); err != nil {
		_, _ = fmt.Fprintf(w, "add(%q, 5) -> %v\n", "", err)
	}
	_, _ = fmt.Fprintf(w, "count() -> %s\n", formatCounts(s.Count()))
	return nil
}
