package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/idilsaglam/shoplist/internal/controller"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/render/markdown"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// listItem adapts a rendered item to bubbles/list.Item; the id tags the row.
type listItem struct {
	item model.Item
}

func (i listItem) FilterValue() string { return i.item.Name }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	name := it.item.Name
	if it.item.Checked {
		box = t.Success.Render(t.BoxChecked)
		name = t.Done.Render(name)
	}
	line := fmt.Sprintf("%s %s", box, name)
	if it.item.InEdit {
		line += " " + t.Editing.Render(t.SymEdit)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type mode int

const (
	browsing mode = iota
	adding
	renaming
)

// Model is the bubbletea program state. It is both the controller's renderer
// and its input, so it is always used through a pointer.
type Model struct {
	ctrl  *controller.Controller
	store *store.Store
	keys  keyMap

	list list.Model
	ti   textinput.Model

	mode     mode
	renameID model.ID
	status   string

	width, height int

	copyText func(string) error
}

// New wires a Model to a fresh controller over s and renders the initial list.
func New(s *store.Store, opts ...controller.Option) *Model {
	m := &Model{
		store:    s,
		keys:     newKeyMap(),
		copyText: clipboard.WriteAll,
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	// h and d are ours; keep paging on arrows and pgup/pgdown.
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←/pgup", "prev page"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "pgdown"), key.WithHelp("→/pgdn", "next page"))
	l.KeyMap.Quit = m.keys.Quit
	l.AdditionalShortHelpKeys = m.keys.short
	l.AdditionalFullHelpKeys = m.keys.full
	m.list = l

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200

	m.ctrl = controller.New(s, m, append(opts, controller.WithInput(m))...)
	m.ctrl.Refresh()
	return m
}

// Render rebuilds every row from the visible items.
func (m *Model) Render(items []model.Item) {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{item: it})
	}
	idx := m.list.Index()
	m.list.SetItems(li)
	if idx >= len(li) {
		idx = len(li) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = m.header()
}

// Clear empties the shared text input.
func (m *Model) Clear() { m.ti.SetValue("") }

func (m *Model) header() string {
	t := ui.Current()
	checked, pending := m.store.Stats()
	h := fmt.Sprintf("Shopping list   %s %d  %s %d  %s %d",
		t.Success.Render(t.SymDone), checked,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), checked+pending,
	)
	if m.store.HideCheckedItems() {
		h += "  " + t.Muted.Render("(checked hidden)")
	}
	return h
}

func (m *Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.item, true
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
		return m, nil
	}

	switch m.mode {
	case adding:
		return m.updateAdding(msg)
	case renaming:
		return m.updateRenaming(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.status = ""

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Add):
		m.mode = adding
		m.resize(m.width, m.height)
		m.ti.SetValue("")
		m.ti.Placeholder = "New item name..."
		return m, m.ti.Focus()

	case key.Matches(km, m.keys.Filter):
		m.ctrl.ClickToggleFilter()
		return m, nil

	case key.Matches(km, m.keys.Copy):
		if err := m.copyText(markdown.Document(m.store.Visible())); err != nil {
			m.status = ui.Current().Error.Render("copy failed: " + err.Error())
		} else {
			m.status = ui.Current().Success.Render("copied to clipboard")
		}
		return m, nil
	}

	it, ok := m.selected()
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Check):
		m.ctrl.ClickToggleChecked(it.ID)
		return m, nil

	case key.Matches(km, m.keys.Delete):
		m.ctrl.ClickDelete(it.ID)
		return m, nil

	case key.Matches(km, m.keys.Edit):
		m.ctrl.ClickToggleEdit(it.ID)
		if now, found := m.store.Find(it.ID); found && now.InEdit {
			return m, m.startRename(now)
		}
		return m, nil

	case key.Matches(km, m.keys.Submit):
		// Items left in edit mode reopen the rename input.
		if it.InEdit {
			return m, m.startRename(it)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) startRename(it model.Item) tea.Cmd {
	m.mode = renaming
	m.resize(m.width, m.height)
	m.renameID = it.ID
	m.ti.SetValue(it.Name)
	m.ti.CursorEnd()
	m.ti.Placeholder = "Enter new name..."
	return m.ti.Focus()
}

func (m *Model) stopInput() {
	m.mode = browsing
	m.resize(m.width, m.height)
	m.ti.Blur()
	m.ti.SetValue("")
}

func (m *Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Submit):
			empty := strings.TrimSpace(m.ti.Value()) == ""
			m.ctrl.SubmitNewItem(m.ti.Value())
			if empty {
				m.status = ui.Current().Error.Render("Name cannot be empty")
				return m, nil
			}
			m.status = ""
			m.stopInput()
			m.list.Select(len(m.list.Items()) - 1)
			return m, nil
		case key.Matches(km, m.keys.Cancel), km.String() == "ctrl+c":
			m.status = ""
			m.stopInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) updateRenaming(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Submit):
			m.ctrl.SubmitRename(m.renameID, m.ti.Value())
			if it, found := m.store.Find(m.renameID); found && it.InEdit {
				m.status = ui.Current().Error.Render("Name cannot be empty")
				return m, nil
			}
			m.status = ""
			m.stopInput()
			return m, nil
		case key.Matches(km, m.keys.Cancel), km.String() == "ctrl+c":
			m.status = ""
			m.stopInput()
			m.ctrl.ClickToggleEdit(m.renameID)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// Panel border and status line take 4 rows; the input bar takes 4 more.
const (
	chromeHeight   = 4
	inputBarHeight = 4
)

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	if w <= 0 || h <= 0 {
		return
	}
	listHeight := h - chromeHeight
	if m.mode != browsing {
		listHeight -= inputBarHeight
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)
}

func (m *Model) View() string {
	content := m.list.View()
	if m.mode != browsing {
		t := ui.Current()
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		title := "Add new item"
		if m.mode == renaming {
			title = "Edit item name"
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	if m.status != "" {
		content += "\n" + m.status
	}
	return ui.Panel([]string{content})
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(s *store.Store, opts ...controller.Option) error {
	m := New(s, opts...)
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	m.resize(w, h)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
