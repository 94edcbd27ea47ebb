package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/skrib/internal/notebook"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// fakePrefs satisfies both notebook.Preferences and Preferences in memory.
type fakePrefs struct {
	dir         string
	autosave    bool
	keys        map[string]string
	autosaveErr error
}

func (p *fakePrefs) StorageDirectory() (string, error) {
	if p.dir == "" {
		return "", errors.New("not configured")
	}
	return p.dir, nil
}

func (p *fakePrefs) SetStorageDirectory(dir string) error {
	p.dir = dir
	return nil
}

func (p *fakePrefs) Autosave() bool { return p.autosave }

func (p *fakePrefs) SetAutosave(on bool) error {
	if p.autosaveErr != nil {
		return p.autosaveErr
	}
	p.autosave = on
	return nil
}

func (p *fakePrefs) ChooserStartDir() string { return p.dir }

func (p *fakePrefs) Keybindings() map[string]string { return p.keys }

// newTestModel builds a sized model over root without a filesystem watcher.
// An empty root leaves the notebook without a directory.
func newTestModel(t *testing.T, root string, prefs *fakePrefs) *Model {
	t.Helper()
	if prefs == nil {
		prefs = &fakePrefs{}
	}
	nb := notebook.New(prefs)
	if root != "" {
		if err := nb.SelectRoot(root); err != nil {
			t.Fatalf("select root: %v", err)
		}
	}
	m, err := New(Options{Notebook: nb, Prefs: prefs})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press sends keys in order and returns the command from the last one.
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, key := range keys {
		_, cmd = m.Update(keyMsg(key))
	}
	return cmd
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func selectRel(t *testing.T, m *Model, rel string) {
	t.Helper()
	idx := m.indexOf(filepath.FromSlash(rel))
	if idx < 0 {
		t.Fatalf("expected %q in tree rows", rel)
	}
	m.cursor = idx
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
