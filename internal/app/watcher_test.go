package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/skrib/internal/notebook"
)

func TestWatcherRebuildsTreeOnExternalChanges(t *testing.T) {
	root := t.TempDir()
	nb := notebook.New(nil)
	if err := nb.SelectRoot(root); err != nil {
		t.Fatalf("select root: %v", err)
	}
	m, err := New(Options{Notebook: nb, Watch: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	t.Cleanup(m.Close)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected a command waiting for filesystem changes")
	}

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()
	mustWriteFile(t, filepath.Join(root, "outside.html"), "")

	select {
	case msg := <-msgs:
		if _, ok := msg.(treeChangedMsg); !ok {
			t.Fatalf("expected treeChangedMsg, got %T", msg)
		}
		if _, next := m.Update(msg); next == nil {
			t.Fatal("expected watcher to be re-armed")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for filesystem change")
	}

	if m.indexOf("outside.html") < 0 {
		t.Fatal("expected new file in tree")
	}
}

func TestTreeChangedFromOldRootIsIgnored(t *testing.T) {
	m := newTestModel(t, t.TempDir(), nil)
	if _, cmd := m.Update(treeChangedMsg{root: "/somewhere/else"}); cmd != nil {
		t.Fatal("expected stale change to be dropped")
	}
}

func TestInitWithoutWatchingHasNoCommand(t *testing.T) {
	m := newTestModel(t, t.TempDir(), nil)
	if cmd := m.Init(); cmd != nil {
		t.Fatal("expected no watcher command when watching is disabled")
	}
}

func TestRefreshClosesVanishedNote(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.html")
	mustWriteFile(t, path, "<p>a</p>")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "a.html")
	press(m, "e")
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := m.rebuildFromDisk(); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	if m.nb.Session().IsOpen() {
		t.Fatal("expected session cleared")
	}
	if m.mode != modeBrowse {
		t.Fatalf("expected edit mode left, got %v", m.mode)
	}
	if m.status != "Open note was removed outside skrib" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestNewRequiresNotebook(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error without a notebook")
	}
}
