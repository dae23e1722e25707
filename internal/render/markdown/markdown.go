// Package markdown renders the list as a Markdown task list, optionally
// styled for the terminal with glamour.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/shoplist/internal/model"
)

// Document builds "- [ ] name" lines under a heading.
func Document(items []model.Item) string {
	var b strings.Builder
	b.WriteString("# Shopping list\n\n")
	if len(items) == 0 {
		b.WriteString("_no items_\n")
		return b.String()
	}
	for _, it := range items {
		box := " "
		if it.Checked {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", box, escape(it.Name))
	}
	return b.String()
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

// blockMarkers start a heading, quote or nested list when they open a line.
const blockMarkers = "#>+-"

func escape(s string) string {
	s = escaper.Replace(s)
	rest := strings.TrimLeft(s, " \t")
	if rest != "" && strings.ContainsRune(blockMarkers, rune(rest[0])) {
		s = s[:len(s)-len(rest)] + `\` + rest
	}
	return s
}

// Renderer writes each render as a full document. With a nil term renderer
// the raw Markdown is written.
type Renderer struct {
	w    io.Writer
	term *glamour.TermRenderer
	err  error
}

type Option func(*Renderer) error

// WithStyle pipes output through glamour using the named standard style
// ("dark", "light", "dracula", "notty", ...).
func WithStyle(style string, wrap int) Option {
	return func(r *Renderer) error {
		if wrap <= 0 {
			wrap = 100
		}
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wrap),
			glamour.WithColorProfile(termenv.ANSI256),
		)
		if err != nil {
			return fmt.Errorf("glamour: %w", err)
		}
		r.term = tr
		return nil
	}
}

func New(w io.Writer, opts ...Option) (*Renderer, error) {
	r := &Renderer{w: w}
	for _, o := range opts {
		if err := o(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Renderer) Render(items []model.Item) {
	doc := Document(items)
	if r.term != nil {
		out, err := r.term.Render(doc)
		if err != nil {
			r.err = err
			fmt.Fprint(r.w, doc)
			return
		}
		doc = out
	}
	fmt.Fprint(r.w, doc)
}

// Err reports the last styling failure; output fell back to raw Markdown.
func (r *Renderer) Err() error { return r.err }
