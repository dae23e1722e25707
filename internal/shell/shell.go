// Package shell is a line-oriented input source: it reads commands from a
// reader, resolves row numbers against the last render and drives the
// controller.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/shoplist/internal/controller"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Rows maps 1-based row numbers from the last render to ids.
type Rows interface {
	IDAt(row int) (model.ID, bool)
	Rows() int
}

type Shell struct {
	ctrl   *controller.Controller
	rows   Rows
	out    io.Writer
	prompt string
}

func New(ctrl *controller.Controller, rows Rows, out io.Writer) *Shell {
	return &Shell{ctrl: ctrl, rows: rows, out: out, prompt: "> "}
}

// Run renders once, then processes lines until EOF, "quit" or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.ctrl.Refresh()
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.prompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		if quit := s.Exec(sc.Text()); quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Exec handles one line and reports whether the session should end.
func (s *Shell) Exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, a := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true

	case "help", "?":
		fmt.Fprint(s.out, Help)

	case "ls":
		s.ctrl.Refresh()

	case "add":
		// Empty names are handled by the controller: nothing is added but the
		// list is still re-rendered.
		s.ctrl.SubmitNewItem(strings.Join(a, " "))

	case "filter":
		s.ctrl.ClickToggleFilter()

	case "check", "edit", "rm":
		if len(a) != 1 {
			ui.Fail(fmt.Sprintf("usage: %s <row>", cmd))
			return false
		}
		id, ok := s.resolve(cmd, a[0])
		if !ok {
			return false
		}
		switch cmd {
		case "check":
			s.ctrl.ClickToggleChecked(id)
		case "edit":
			s.ctrl.ClickToggleEdit(id)
		case "rm":
			s.ctrl.ClickDelete(id)
		}

	case "rename":
		if len(a) < 1 {
			ui.Fail("usage: rename <row> <name...>")
			return false
		}
		id, ok := s.resolve(cmd, a[0])
		if !ok {
			return false
		}
		if it, found := s.ctrl.Find(id); found && !it.InEdit {
			ui.Fail("rename: item is not in edit mode (run `edit " + a[0] + "` first)")
			return false
		}
		s.ctrl.SubmitRename(id, strings.Join(a[1:], " "))

	default:
		ui.Fail("unknown command: " + cmd)
		ui.Hint("Hint: type `help` to list commands")
	}
	return false
}

func (s *Shell) resolve(cmd, arg string) (model.ID, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		ui.Fail(cmd + ": not a number: " + arg)
		return "", false
	}
	id, ok := s.rows.IDAt(n)
	if !ok {
		ui.Fail(fmt.Sprintf("row out of range: have %d, got %d", s.rows.Rows(), n))
		ui.Hint("Hint: run `ls` to see valid rows")
		return "", false
	}
	return id, true
}

const Help = `Commands:
  add <name...>          Add a new item
  check <row>            Toggle checked for the item on that row
  edit <row>             Enter or leave edit mode
  rename <row> <name...> Rename an item in edit mode (leaves edit mode)
  rm <row>               Delete the item on that row
  filter                 Hide or show checked items
  ls                     Show the list again
  help                   Show this help
  quit                   Leave
`
