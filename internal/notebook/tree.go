package notebook

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Tree is the in-memory mirror of a root directory. The root node is named
// after the directory's base name; its descendants are the addressable
// entries.
type Tree struct {
	dir  string
	root *Node
}

// Build mirrors dir recursively, depth-first, in the order the filesystem
// lists entries. A directory that cannot be listed contributes no children
// and is logged; the rest of the build continues.
func Build(dir string) *Tree {
	root := &Node{name: filepath.Base(dir), kind: KindDirectory}
	populate(root, dir)
	return &Tree{dir: dir, root: root}
}

// populate appends every entry of dir to parent. Entries come from
// (*os.File).ReadDir, which keeps directory order; os.ReadDir would sort.
func populate(parent *Node, dir string) {
	f, err := os.Open(dir)
	if err != nil {
		log.Warn("read tree directory", "path", dir, "error", err)
		return
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		log.Warn("read tree directory", "path", dir, "error", err)
		// ReadDir still returns whatever it read before failing.
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		kind, descend := entryKind(path, entry)
		child := &Node{name: entry.Name(), kind: kind}
		parent.appendChild(child)
		if descend {
			populate(child, path)
		}
	}
}

// entryKind classifies an entry. Symlinks take the kind of their target but
// are never descended, so link cycles cannot recurse forever.
func entryKind(path string, entry fs.DirEntry) (Kind, bool) {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			return KindDirectory, false
		}
		return KindFile, false
	}
	if entry.IsDir() {
		return KindDirectory, true
	}
	return KindFile, false
}

// Dir returns the absolute root directory the tree mirrors.
func (t *Tree) Dir() string { return t.dir }

// Root returns the synthetic root node, or nil once the tree was cleared.
func (t *Tree) Root() *Node { return t.root }

// Empty reports whether the tree has been cleared.
func (t *Tree) Empty() bool { return t.root == nil }

// Resolve returns the absolute path of n under the tree's root directory.
func (t *Tree) Resolve(n *Node) string { return Resolve(t.dir, n) }

// AddChild appends a new leaf to parent and returns it. It does not touch
// the filesystem; callers invoke it right after a successful create.
func (t *Tree) AddChild(parent *Node, name string, kind Kind) *Node {
	child := &Node{name: name, kind: kind}
	parent.appendChild(child)
	return child
}

// RemoveChild detaches node from parent by identity. A nil parent means node
// is the root itself, and the whole tree is cleared.
func (t *Tree) RemoveChild(parent, node *Node) {
	if parent == nil {
		t.root = nil
		return
	}
	parent.removeChild(node)
}

// Walk visits every node depth-first, parents before children, starting with
// the root. Returning false from fn skips that node's children.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t.root == nil {
		return
	}
	walk(t.root, fn)
}

func walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		walk(c, fn)
	}
}

// Lookup is the inverse of RelPath: it returns the node addressed by rel, or
// nil if no such node is mirrored. An empty rel addresses the root.
func (t *Tree) Lookup(rel string) *Node {
	if t.root == nil {
		return nil
	}
	cur := t.root
	for _, name := range splitRel(rel) {
		var next *Node
		for _, c := range cur.children {
			if c.name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Len returns the number of mirrored nodes, root included.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
