package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/ui"
)

type harness struct {
	app            *app
	home           string
	stdout, stderr bytes.Buffer
	status         bytes.Buffer
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	h := &harness{home: t.TempDir()}
	h.app = &app{
		v:      config.New(),
		home:   func() (string, error) { return h.home, nil },
		stdin:  strings.NewReader(stdin),
		stdout: &h.stdout,
		stderr: &h.stderr,
	}
	oldOut, oldErr := ui.Stdout, ui.Stderr
	ui.Stdout, ui.Stderr = &h.status, &h.status
	t.Cleanup(func() {
		ui.Stdout, ui.Stderr = oldOut, oldErr
		_ = ui.SetTheme("classic")
	})
	return h
}

func TestPrintRawMarkdown(t *testing.T) {
	h := newHarness(t, "")
	code := h.app.run([]string{"print", "--format", "markdown", "--raw"})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, h.status.String())
	}
	want := "# Shopping list\n\n- [ ] apples\n- [ ] oranges\n- [x] milk\n- [ ] bread\n"
	if h.stdout.String() != want {
		t.Fatalf("unexpected output:\n%s", h.stdout.String())
	}
}

func TestPrintHideCheckedFlag(t *testing.T) {
	h := newHarness(t, "")
	code := h.app.run([]string{"print", "-f", "md", "--raw", "--hide-checked"})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, h.status.String())
	}
	if strings.Contains(h.stdout.String(), "milk") {
		t.Fatalf("expected milk to be hidden:\n%s", h.stdout.String())
	}
}

func TestPrintTextUsesConfigSeed(t *testing.T) {
	h := newHarness(t, "")
	path := config.GetConfigPath(h.home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := "theme: mono\nseed:\n  - name: coffee\n  - name: tea\n    checked: true\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if code := h.app.run([]string{"print"}); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, h.status.String())
	}
	out := h.stdout.String()
	if !strings.Contains(out, "[ ] coffee") || !strings.Contains(out, "[x] tea") {
		t.Fatalf("expected configured seed in mono theme:\n%s", out)
	}
}

func TestShellReadsStdin(t *testing.T) {
	h := newHarness(t, "add eggs\ncheck 5\nquit\n")
	if code := h.app.run([]string{"shell", "--id-strategy", "seq"}); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, h.status.String())
	}
	if !strings.Contains(h.stdout.String(), "eggs") {
		t.Fatalf("expected eggs in output:\n%s", h.stdout.String())
	}
}

func TestVerboseLogsCommands(t *testing.T) {
	h := newHarness(t, "add eggs\n")
	if code := h.app.run([]string{"shell", "-v", "--id-strategy", "seq"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(h.stderr.String(), `add item-5 "eggs"`) {
		t.Fatalf("expected command log on stderr, got %q", h.stderr.String())
	}
}

func TestUsageErrorsExitTwo(t *testing.T) {
	tests := [][]string{
		{"print", "--format", "pdf"},
		{"--theme", "vaporwave", "print"},
		{"frobnicate"},
		{"print", "--no-such-flag"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			h := newHarness(t, "")
			if code := h.app.run(args); code != 2 {
				t.Fatalf("expected exit 2, got %d: %s", code, h.status.String())
			}
		})
	}
}

func TestMissingExplicitConfigExitsOne(t *testing.T) {
	h := newHarness(t, "")
	code := h.app.run([]string{"--config", filepath.Join(h.home, "missing.yaml"), "print"})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestInitWritesConfig(t *testing.T) {
	h := newHarness(t, "")
	if code := h.app.run([]string{"init"}); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, h.status.String())
	}
	if _, err := os.Stat(config.GetConfigPath(h.home)); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if !strings.Contains(h.status.String(), "config at") {
		t.Fatalf("expected confirmation, got %q", h.status.String())
	}
}
