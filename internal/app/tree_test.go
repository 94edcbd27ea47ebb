package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildTreeShowsRootAndCollapsedDirectories(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a.html"), "<p>a</p>")
	mustWriteFile(t, filepath.Join(root, "sub", "b.html"), "<p>b</p>")

	m := newTestModel(t, root, nil)

	if len(m.items) != 3 {
		t.Fatalf("expected root and two top-level rows, got %d", len(m.items))
	}
	if !m.items[0].node.IsRoot() || m.items[0].depth != 0 {
		t.Fatalf("expected root row first, got %+v", m.items[0])
	}
	if m.indexOf(filepath.Join("sub", "b.html")) >= 0 {
		t.Fatal("expected collapsed directory to hide its children")
	}
	if idx := m.indexOf("sub"); idx < 0 || !m.items[idx].isDir || m.items[idx].depth != 1 {
		t.Fatalf("expected sub as a depth-1 directory row")
	}
}

func TestBuildTreeWithoutRootIsEmpty(t *testing.T) {
	if items := buildTree(nil, map[string]bool{}); len(items) != 0 {
		t.Fatalf("expected no rows, got %d", len(items))
	}
}

func TestToggleExpandShowsAndHidesChildren(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "sub", "b.html"), "<p>b</p>")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "sub")
	press(m, "right")
	if m.indexOf(filepath.Join("sub", "b.html")) < 0 {
		t.Fatal("expected child row after expanding")
	}
	if m.selectedItem().rel != "sub" {
		t.Fatalf("expected cursor to stay on sub, got %q", m.selectedItem().rel)
	}

	selectRel(t, m, "sub/b.html")
	press(m, "left")
	if got := m.selectedItem().rel; got != "sub" {
		t.Fatalf("expected collapse on a file to move to its parent, got %q", got)
	}

	press(m, "left")
	if m.indexOf(filepath.Join("sub", "b.html")) >= 0 {
		t.Fatal("expected child row hidden after collapsing")
	}
}

func TestRootRowStaysExpanded(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a.html"), "")
	m := newTestModel(t, root, nil)

	m.cursor = 0
	press(m, "left", "right")
	if len(m.items) != 2 {
		t.Fatalf("expected root children to remain visible, got %d rows", len(m.items))
	}
}

func TestMoveCursorClampsToRows(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a.html"), "")
	mustWriteFile(t, filepath.Join(root, "b.html"), "")
	m := newTestModel(t, root, nil)

	press(m, "up")
	if m.cursor != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", m.cursor)
	}
	press(m, "G", "down", "j")
	if m.cursor != len(m.items)-1 {
		t.Fatalf("expected cursor clamped at last row, got %d", m.cursor)
	}
	press(m, "g")
	if m.cursor != 0 {
		t.Fatalf("expected jump to top, got %d", m.cursor)
	}
}

func TestAdjustTreeOffsetKeepsCursorVisible(t *testing.T) {
	m := &Model{leftHeight: 8}
	for i := 0; i < 30; i++ {
		m.items = append(m.items, treeItem{})
	}
	visible := m.leftHeight - paneStyle.GetVerticalFrameSize() - 1

	m.cursor = 20
	m.adjustTreeOffset()
	if m.treeOffset != 20-visible+1 {
		t.Fatalf("expected offset %d, got %d", 20-visible+1, m.treeOffset)
	}
	m.cursor = 2
	m.adjustTreeOffset()
	if m.treeOffset != 2 {
		t.Fatalf("expected offset 2, got %d", m.treeOffset)
	}
}

func TestRefreshKeepsSelectionOnNearestAncestor(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "sub", "b.html")
	mustWriteFile(t, path, "<p>b</p>")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "sub")
	press(m, "right")
	selectRel(t, m, "sub/b.html")

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	press(m, "R")

	if got := m.selectedItem().rel; got != "sub" {
		t.Fatalf("expected selection on sub, got %q", got)
	}
	if m.status != "Refreshed" {
		t.Fatalf("expected refreshed status, got %q", m.status)
	}
}

func TestRefreshPicksUpExternalFiles(t *testing.T) {
	root := t.TempDir()
	m := newTestModel(t, root, nil)

	mustWriteFile(t, filepath.Join(root, "later.txt"), "x")
	press(m, "ctrl+r")

	if m.indexOf("later.txt") < 0 {
		t.Fatal("expected new file after refresh")
	}
}
