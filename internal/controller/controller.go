package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
)

// Renderer rebuilds the whole presentation from the visible items.
type Renderer interface {
	Render(items []model.Item)
}

// Input is the text source new items are typed into.
type Input interface {
	Clear()
}

// Kind names a user command delivered by an input collaborator.
type Kind string

const (
	KindAdd     Kind = "add"
	KindCheck   Kind = "check"
	KindDelete  Kind = "delete"
	KindEdit    Kind = "edit"
	KindFilter  Kind = "filter"
	KindRename  Kind = "rename"
	KindRefresh Kind = "refresh"
)

// Command is one discrete user action plus its payload.
type Command struct {
	Kind Kind
	ID   model.ID
	Text string
}

var ErrUnknownCommand = errors.New("unknown command")

// Controller maps commands onto store mutations, then re-renders once.
type Controller struct {
	store  *store.Store
	render Renderer
	input  Input
	log    *log.Logger
}

type Option func(*Controller)

func WithInput(in Input) Option {
	return func(c *Controller) { c.input = in }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func New(s *store.Store, r Renderer, opts ...Option) *Controller {
	c := &Controller{
		store:  s,
		render: r,
		log:    log.New(io.Discard, "", 0),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Find returns a copy of the item with the given id. Input sources use it to
// check item state without reaching the store's mutations.
func (c *Controller) Find(id model.ID) (model.Item, bool) { return c.store.Find(id) }

// Refresh renders the current state without mutating it.
func (c *Controller) Refresh() { c.rerender() }

// SubmitNewItem adds a trimmed, non-empty name. The input is cleared and the
// list re-rendered in both cases.
func (c *Controller) SubmitNewItem(raw string) {
	if name := strings.TrimSpace(raw); name != "" {
		id := c.store.AddItem(name)
		c.log.Printf("add %s %q", id, name)
	} else {
		c.log.Printf("add skipped: empty name")
	}
	if c.input != nil {
		c.input.Clear()
	}
	c.rerender()
}

func (c *Controller) ClickToggleChecked(id model.ID) {
	c.store.ToggleChecked(id)
	c.log.Printf("check %s", id)
	c.rerender()
}

func (c *Controller) ClickDelete(id model.ID) {
	c.store.DeleteItem(id)
	c.log.Printf("delete %s", id)
	c.rerender()
}

func (c *Controller) ClickToggleEdit(id model.ID) {
	c.store.ToggleInEdit(id)
	c.log.Printf("edit %s", id)
	c.rerender()
}

func (c *Controller) ClickToggleFilter() {
	c.store.ToggleHideCheckedItems()
	c.log.Printf("filter hide_checked=%v", c.store.HideCheckedItems())
	c.rerender()
}

// SubmitRename renames the item and leaves edit mode. An empty name keeps the
// item in edit mode so the user can retry.
func (c *Controller) SubmitRename(id model.ID, raw string) {
	if name := strings.TrimSpace(raw); name != "" {
		c.store.RenameItem(id, name)
		c.store.ToggleInEdit(id)
		c.log.Printf("rename %s %q", id, name)
	} else {
		c.log.Printf("rename %s skipped: empty name", id)
	}
	c.rerender()
}

// Dispatch routes a command from an input collaborator.
func (c *Controller) Dispatch(cmd Command) error {
	switch cmd.Kind {
	case KindAdd:
		c.SubmitNewItem(cmd.Text)
	case KindCheck:
		c.ClickToggleChecked(cmd.ID)
	case KindDelete:
		c.ClickDelete(cmd.ID)
	case KindEdit:
		c.ClickToggleEdit(cmd.ID)
	case KindFilter:
		c.ClickToggleFilter()
	case KindRename:
		c.SubmitRename(cmd.ID, cmd.Text)
	case KindRefresh:
		c.Refresh()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
	return nil
}

func (c *Controller) rerender() {
	if c.render != nil {
		c.render.Render(c.store.Visible())
	}
}
