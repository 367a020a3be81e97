package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store/memstore"
	"github.com/idilsaglam/tasks/internal/ui"
)

// errQuit ends a shell session.
var errQuit = errors.New("quit")

const shellHelp = `Commands:
  add <label>          Add a record with a generated id
  put <id> <label>     Add a record with an explicit id (replaces an existing one)
  done <id>            Mark a record complete
  rm <id>              Remove a record
  purge                Remove every completed record
  ls [all|incomplete]  List records
  show <id>            Show one record
  count                Print total and incomplete counts
  help                 Show this help
  quit                 Leave the shell
`

// Shell runs line commands against one store.
type Shell struct {
	Store  *memstore.Store
	Out    io.Writer
	Prompt string
	Filter model.Filter
	Group  bool
	Log    zerolog.Logger
}

// Run reads commands from in until EOF, quit, or ctx is done. Command errors
// are printed and the session continues.
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if sh.Prompt != "" {
			_, _ = fmt.Fprint(sh.Out, sh.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		err := sh.Exec(scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			sh.Log.Debug().Err(err).Msg("shell command failed")
			ui.Fail(sh.Out, err.Error())
		}
	}
}

// Exec runs a single command line.
func (sh *Shell) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "help", "?":
		_, _ = fmt.Fprint(sh.Out, shellHelp)
	case "quit", "exit", "q":
		return errQuit
	case "add":
		id, err := sh.Store.Add(rest)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		ui.OK(sh.Out, fmt.Sprintf("added #%d", id))
	case "put":
		idStr, label, _ := strings.Cut(rest, " ")
		id, err := parseID(idStr)
		if err != nil {
			return fmt.Errorf("put: %w", err)
		}
		if _, err := sh.Store.AddWithID(label, id); err != nil {
			return fmt.Errorf("put: %w", err)
		}
		ui.OK(sh.Out, fmt.Sprintf("added #%d", id))
	case "done":
		id, err := sh.oneID(cmd, rest)
		if err != nil {
			return err
		}
		if sh.Store.Complete(id) {
			ui.OK(sh.Out, fmt.Sprintf("completed #%d", id))
		} else {
			_, _ = fmt.Fprintf(sh.Out, "no record #%d\n", id)
		}
	case "rm":
		id, err := sh.oneID(cmd, rest)
		if err != nil {
			return err
		}
		if sh.Store.Remove(id) {
			ui.OK(sh.Out, fmt.Sprintf("removed #%d", id))
		} else {
			_, _ = fmt.Fprintf(sh.Out, "no record #%d\n", id)
		}
	case "purge":
		n := sh.Store.RemoveCompleted()
		ui.OK(sh.Out, fmt.Sprintf("removed %d completed", n))
	case "ls":
		filter := sh.Filter
		if rest != "" {
			f, err := model.ParseFilter(rest)
			if err != nil {
				return fmt.Errorf("ls: %w", err)
			}
			filter = f
		}
		ui.RenderList(sh.Out, ui.ListView{
			Name:    sh.Store.Name(),
			Counts:  sh.Store.Count(),
			Records: sh.Store.List(filter),
			Filter:  filter,
			Group:   sh.Group,
		})
	case "show":
		id, err := sh.oneID(cmd, rest)
		if err != nil {
			return err
		}
		if r, ok := sh.Store.Get(id); ok {
			_, _ = fmt.Fprintln(sh.Out, r.Details())
		} else {
			_, _ = fmt.Fprintf(sh.Out, "no record #%d\n", id)
		}
	case "count":
		_, _ = fmt.Fprintln(sh.Out, formatCounts(sh.Store.Count()))
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func (sh *Shell) oneID(cmd, rest string) (int, error) {
	if rest == "" || strings.Contains(rest, " ") {
		return 0, fmt.Errorf("usage: %s <id>", cmd)
	}
	id, err := parseID(rest)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cmd, err)
	}
	return id, nil
}
