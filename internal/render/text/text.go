// Package text renders the list as a framed plain-text panel.
package text

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Status reports list-wide counts the visible slice can't show.
// *store.Store satisfies it.
type Status interface {
	Stats() (checked, pending int)
	HideCheckedItems() bool
}

// Renderer writes a complete panel on every Render call and remembers which
// id sits on which row.
type Renderer struct {
	w      io.Writer
	status Status
	rows   []model.ID
}

func New(w io.Writer, status Status) *Renderer {
	return &Renderer{w: w, status: status}
}

func (r *Renderer) Render(items []model.Item) {
	r.rows = r.rows[:0]
	for _, it := range items {
		r.rows = append(r.rows, it.ID)
	}
	fmt.Fprintln(r.w, ui.Panel(Lines(items, r.status)))
}

// IDAt resolves a 1-based row number from the last render.
func (r *Renderer) IDAt(row int) (model.ID, bool) {
	if row < 1 || row > len(r.rows) {
		return "", false
	}
	return r.rows[row-1], true
}

// Rows is the number of rows in the last render.
func (r *Renderer) Rows() int { return len(r.rows) }

// Lines builds the panel content: header, progress bar, then one row per item.
func Lines(items []model.Item, status Status) []string {
	t := ui.Current()

	checked, pending := 0, 0
	hiding := false
	if status != nil {
		checked, pending = status.Stats()
		hiding = status.HideCheckedItems()
	} else {
		for _, it := range items {
			if it.Checked {
				checked++
			} else {
				pending++
			}
		}
	}

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Shopping list"),
		t.Success.Render(t.SymDone), checked,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), checked+pending,
	)
	if hiding {
		header += "  " + t.Muted.Render("(checked hidden)")
	}

	lines := []string{
		header,
		t.Muted.Render(ui.ProgressBar(checked, checked+pending, 28)),
		"",
	}
	if len(items) == 0 {
		return append(lines, t.Muted.Render("no items"))
	}
	for i, it := range items {
		lines = append(lines, Row(i+1, it))
	}
	return lines
}

const maxNameWidth = 80

// Row formats one numbered item line. Names wider than maxNameWidth cells
// are cut on a character boundary.
func Row(n int, it model.Item) string {
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	name := ansi.Truncate(it.Name, maxNameWidth, "...")
	if it.Checked {
		box = t.Success.Render(t.BoxChecked)
		name = t.Done.Render(name)
	}
	line := fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", n)), box, name)
	if it.InEdit {
		line += " " + t.Editing.Render(t.SymEdit+" editing")
	}
	return line
}
