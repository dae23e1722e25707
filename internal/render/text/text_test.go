package text

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/idilsaglam/shoplist/internal/idgen"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func TestMain(m *testing.M) {
	_ = ui.SetTheme("mono")
	m.Run()
}

func TestRenderListsVisibleItemsAndTracksRows(t *testing.T) {
	s := store.New(store.WithIDGenerator(idgen.Sequence("t")), store.WithItems(store.DefaultSeed...))
	s.SetHideCheckedItems(true)

	var buf bytes.Buffer
	r := New(&buf, s)
	r.Render(s.Visible())

	out := buf.String()
	for _, want := range []string{"apples", "oranges", "bread", "(checked hidden)", "Total 4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "milk") {
		t.Fatalf("expected milk to be hidden:\n%s", out)
	}

	if r.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", r.Rows())
	}
	if id, ok := r.IDAt(3); !ok || id != "t-4" {
		t.Fatalf("expected row 3 to be bread (t-4), got %q", id)
	}
	if _, ok := r.IDAt(4); ok {
		t.Fatalf("expected row 4 to be out of range")
	}
}

func TestRenderReplacesRowsEachCall(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, nil)
	r.Render([]model.Item{{ID: "a", Name: "a"}, {ID: "b", Name: "b"}})
	r.Render([]model.Item{{ID: "b", Name: "b"}})

	if id, ok := r.IDAt(1); !ok || id != "b" {
		t.Fatalf("expected row 1 to be b after re-render, got %q", id)
	}
	if r.Rows() != 1 {
		t.Fatalf("expected 1 row, got %d", r.Rows())
	}
}

func TestRowMarksState(t *testing.T) {
	tests := []struct {
		item model.Item
		want []string
	}{
		{model.Item{Name: "milk"}, []string{" 1.", "[ ]", "milk"}},
		{model.Item{Name: "milk", Checked: true}, []string{"[x]"}},
		{model.Item{Name: "milk", InEdit: true, Checked: true}, []string{"[x]", "* editing"}},
	}
	for _, tt := range tests {
		got := Row(1, tt.item)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Fatalf("expected %q in %q", w, got)
			}
		}
	}
}

func TestRowTruncatesOnCharacterBoundary(t *testing.T) {
	tests := []struct {
		name      string
		item      string
		wantCount int
		truncated bool
	}{
		{"short multi-byte", strings.Repeat("é", 60), 60, false},
		{"long multi-byte", strings.Repeat("é", 90), 77, true},
		{"long ascii", strings.Repeat("a", 100), 77, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Row(1, model.Item{Name: tt.item})
			if !utf8.ValidString(got) {
				t.Fatalf("invalid UTF-8 row: %q", got)
			}
			r, _ := utf8.DecodeRuneInString(tt.item)
			if n := strings.Count(got, string(r)); n != tt.wantCount {
				t.Fatalf("expected %d copies of %q, got %d in %q", tt.wantCount, r, n, got)
			}
			if strings.HasSuffix(got, "...") != tt.truncated {
				t.Fatalf("expected truncated=%v, got %q", tt.truncated, got)
			}
		})
	}
}

func TestLinesEmpty(t *testing.T) {
	lines := Lines(nil, nil)
	if lines[len(lines)-1] != "no items" {
		t.Fatalf("expected placeholder, got %q", lines[len(lines)-1])
	}
}
