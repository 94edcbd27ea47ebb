package app

import (
	"path/filepath"

	"github.com/treykane/skrib/internal/notebook"
)

// moveCursor changes the selection and keeps it within bounds.
func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}

	m.cursor = clamp(m.cursor+delta, 0, len(m.items)-1)
	m.adjustTreeOffset()
}

// adjustTreeOffset scrolls the tree so the cursor remains visible.
func (m *Model) adjustTreeOffset() {
	visibleHeight := max(0, m.leftHeight-paneStyle.GetVerticalFrameSize()-1)
	if visibleHeight == 0 {
		m.treeOffset = 0
		return
	}

	if m.cursor < m.treeOffset {
		m.treeOffset = m.cursor
	}
	if m.cursor >= m.treeOffset+visibleHeight {
		m.treeOffset = m.cursor - visibleHeight + 1
	}
}

// toggleExpand expands or collapses a directory row. Collapsing a file or a
// collapsed directory moves the cursor to its parent.
func (m *Model) toggleExpand(expand bool) {
	item := m.selectedItem()
	if item == nil || item.node.IsRoot() {
		return
	}

	if item.isDir && expand {
		m.expanded[item.rel] = !m.expanded[item.rel]
		m.rebuildTreeKeep(item.rel)
		return
	}
	if item.isDir && m.expanded[item.rel] {
		m.expanded[item.rel] = false
		m.rebuildTreeKeep(item.rel)
		return
	}
	if !expand {
		m.rebuildTreeKeep(notebook.RelPath(item.node.Parent()))
	}
}

// expandTo expands every ancestor of rel so its row becomes visible.
func (m *Model) expandTo(rel string) {
	for dir := filepath.Dir(rel); dir != "." && dir != string(filepath.Separator); dir = filepath.Dir(dir) {
		m.expanded[dir] = true
	}
}

// rebuildTreeKeep flattens the notebook tree and puts the cursor on rel, or
// on the nearest surviving ancestor when rel is gone.
func (m *Model) rebuildTreeKeep(rel string) {
	m.items = buildTree(m.nb.Tree(), m.expanded)
	m.cursor = 0
	for rel != "" {
		if i := m.indexOf(rel); i >= 0 {
			m.cursor = i
			break
		}
		parent := filepath.Dir(rel)
		if parent == "." {
			break
		}
		rel = parent
	}
	m.adjustTreeOffset()
}

func (m *Model) indexOf(rel string) int {
	for i, item := range m.items {
		if item.rel == rel {
			return i
		}
	}
	return -1
}

func (m *Model) selectedItem() *treeItem {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// selectedNode returns the selected node, or nil when the tree is empty.
func (m *Model) selectedNode() *notebook.Node {
	if item := m.selectedItem(); item != nil {
		return item.node
	}
	return nil
}

// buildTree flattens the visible part of tree into rows. The root is always
// the first row and always expanded; other directories contribute children
// only when expanded. Children keep the notebook's filesystem order.
func buildTree(tree *notebook.Tree, expanded map[string]bool) []treeItem {
	if tree == nil || tree.Empty() {
		return nil
	}
	items := []treeItem{}
	tree.Walk(func(n *notebook.Node) bool {
		rel := notebook.RelPath(n)
		depth := 0
		for p := n.Parent(); p != nil; p = p.Parent() {
			depth++
		}
		items = append(items, treeItem{
			node:  n,
			rel:   rel,
			name:  n.Name(),
			depth: depth,
			isDir: n.IsDir(),
		})
		return n.IsRoot() || (n.IsDir() && expanded[rel])
	})
	return items
}
