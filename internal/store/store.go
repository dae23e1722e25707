// Package store holds the in-memory list state. A Store has a single owner
// and no locking: callers process one command at a time.
package store

import (
	"github.com/idilsaglam/shoplist/internal/idgen"
	"github.com/idilsaglam/shoplist/internal/model"
)

// Seed is an initial entry handed to WithItems.
type Seed struct {
	Name    string
	Checked bool
}

// DefaultSeed is the list a fresh session starts with.
var DefaultSeed = []Seed{
	{Name: "apples"},
	{Name: "oranges"},
	{Name: "milk", Checked: true},
	{Name: "bread"},
}

// Store owns the items and the hide-checked filter flag.
type Store struct {
	items       []model.Item
	hideChecked bool
	nextID      idgen.Func

	pending []Seed // WithItems entries, consumed by New
}

// Option configures a Store at construction.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(fn idgen.Func) Option {
	return func(s *Store) {
		if fn != nil {
			s.nextID = fn
		}
	}
}

// WithItems appends the given entries, in order, after the generator is set.
func WithItems(seed ...Seed) Option {
	return func(s *Store) {
		s.pending = append(s.pending, seed...)
	}
}

// WithHideChecked sets the initial filter flag.
func WithHideChecked(v bool) Option {
	return func(s *Store) { s.hideChecked = v }
}

// New builds an empty store unless WithItems is given.
func New(opts ...Option) *Store {
	s := &Store{nextID: idgen.UUID()}
	for _, o := range opts {
		o(s)
	}
	for _, sd := range s.pending {
		id := s.AddItem(sd.Name)
		if sd.Checked {
			s.ToggleChecked(id)
		}
	}
	s.pending = nil
	return s
}

// AddItem appends a new unchecked item and returns its id.
// Empty names are not rejected here; the controller validates input.
func (s *Store) AddItem(name string) model.ID {
	id := s.nextID()
	s.items = append(s.items, model.Item{ID: id, Name: name})
	return id
}

// ToggleChecked flips Checked. Unknown ids are ignored.
func (s *Store) ToggleChecked(id model.ID) {
	if it := s.find(id); it != nil {
		it.Checked = !it.Checked
	}
}

// ToggleInEdit flips InEdit. Unknown ids are ignored.
func (s *Store) ToggleInEdit(id model.ID) {
	if it := s.find(id); it != nil {
		it.InEdit = !it.InEdit
	}
}

// RenameItem sets the name without validating it. Unknown ids are ignored.
func (s *Store) RenameItem(id model.ID, name string) {
	if it := s.find(id); it != nil {
		it.Name = name
	}
}

// DeleteItem removes the item and keeps the order of the rest.
func (s *Store) DeleteItem(id model.ID) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func (s *Store) SetHideCheckedItems(v bool) { s.hideChecked = v }

func (s *Store) ToggleHideCheckedItems() { s.hideChecked = !s.hideChecked }

func (s *Store) HideCheckedItems() bool { return s.hideChecked }

// Visible returns a copy of the items to display: everything, or only the
// unchecked ones while the filter is on. Relative order is kept.
func (s *Store) Visible() []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if s.hideChecked && it.Checked {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Items returns a copy of every item regardless of the filter.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Find returns a copy of the first item with the given id.
func (s *Store) Find(id model.ID) (model.Item, bool) {
	if it := s.find(id); it != nil {
		return *it, true
	}
	return model.Item{}, false
}

func (s *Store) Len() int { return len(s.items) }

// Stats counts checked and pending items across the whole list.
func (s *Store) Stats() (checked, pending int) {
	for _, it := range s.items {
		if it.Checked {
			checked++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) index(id model.ID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) find(id model.ID) *model.Item {
	if i := s.index(id); i >= 0 {
		return &s.items[i]
	}
	return nil
}
