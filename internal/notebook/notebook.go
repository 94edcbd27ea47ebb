// Package notebook keeps a directory of HTML/text notes and its in-memory
// tree in step, and tracks the document being edited.
//
// A Notebook is owned by a single goroutine (the UI loop). Every operation
// runs synchronously and reports failures as errors classified with
// errors.Is against the Err* values in this package:
//
//	nb := notebook.New(prefs)
//	if err := nb.SelectRoot(dir); err != nil { ... }
//	node, err := nb.CreateFile(nb.Tree().Root(), "Ideas")   // Ideas.html
//	content, err := nb.OpenNode(node)
//	err = nb.Edit(content + "<p>more</p>")
//	decision, err := nb.RequestClose()
package notebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Preferences persists the chosen root directory across runs.
type Preferences interface {
	StorageDirectory() (string, error)
	SetStorageDirectory(dir string) error
}

// Notebook is the operations surface consumed by the UI.
type Notebook struct {
	tree    *Tree
	session *Session
	prefs   Preferences
}

// New returns a notebook with no root selected. prefs may be nil, in which
// case root choices are not remembered.
func New(prefs Preferences) *Notebook {
	return &Notebook{session: NewSession(), prefs: prefs}
}

// Tree returns the current mirror, or nil before a root is selected.
func (nb *Notebook) Tree() *Tree { return nb.tree }

// Session returns the editing session.
func (nb *Notebook) Session() *Session { return nb.session }

// RootDir returns the selected root directory, or "".
func (nb *Notebook) RootDir() string {
	if nb.tree == nil {
		return ""
	}
	return nb.tree.Dir()
}

// Restore selects the root remembered by the preferences without writing
// it back. It returns the preference store's error when nothing usable is
// stored.
func (nb *Notebook) Restore() error {
	if nb.prefs == nil {
		return ErrNoRoot
	}
	dir, err := nb.prefs.StorageDirectory()
	if err != nil {
		return err
	}
	tree, err := openRoot(dir)
	if err != nil {
		return err
	}
	nb.tree = tree
	return nil
}

// SelectRoot makes dir the root, rebuilds the tree from scratch and
// remembers the choice. A failure to remember is returned, wrapped in
// ErrNotRemembered, after the root has been switched.
func (nb *Notebook) SelectRoot(dir string) error {
	tree, err := openRoot(dir)
	if err != nil {
		return err
	}
	nb.tree = tree
	log.Info("selected storage directory", "path", tree.Dir())
	if nb.prefs == nil {
		return nil
	}
	if err := nb.prefs.SetStorageDirectory(tree.Dir()); err != nil {
		return fmt.Errorf("%w: %w", ErrNotRemembered, err)
	}
	return nil
}

func openRoot(dir string) (*Tree, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve storage directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, ioError("open", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidSelection, abs)
	}
	return Build(abs), nil
}

// Rebuild re-reads the whole tree from disk, e.g. after external changes.
// An open document that no longer exists closes the session.
func (nb *Notebook) Rebuild() error {
	if nb.tree == nil {
		return ErrNoRoot
	}
	nb.tree = Build(nb.tree.Dir())
	if nb.session.IsOpen() {
		if _, err := os.Stat(nb.session.Path()); errors.Is(err, fs.ErrNotExist) {
			log.Info("open document removed externally", "path", nb.session.Path())
			nb.session.Clear()
		}
	}
	return nil
}

// OpenNode opens the file node n. Directories and the root are rejected.
func (nb *Notebook) OpenNode(n *Node) (string, error) {
	if err := nb.checkNode(n); err != nil {
		return "", err
	}
	if n.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidSelection, n.Name())
	}
	return nb.session.Open(nb.tree.Resolve(n))
}

// Edit reports new editor content; see Session.Edit.
func (nb *Notebook) Edit(content string) error { return nb.session.Edit(content) }

// Save persists the open document; see Session.Save.
func (nb *Notebook) Save() error { return nb.session.Save() }

// RequestClose starts closing the open document; see Session.RequestClose.
func (nb *Notebook) RequestClose() (CloseDecision, error) { return nb.session.RequestClose() }

// ResolveClose answers an UnsavedChanges prompt; see Session.ResolveClose.
func (nb *Notebook) ResolveClose(choice CloseChoice) error { return nb.session.ResolveClose(choice) }

// SetAutosave toggles autosave for subsequent edits.
func (nb *Notebook) SetAutosave(on bool) { nb.session.SetAutosave(on) }

// checkNode rejects nil nodes and nodes that belong to a tree that has since
// been rebuilt or cleared.
func (nb *Notebook) checkNode(n *Node) error {
	if nb.tree == nil || nb.tree.root == nil {
		return ErrNoRoot
	}
	if n == nil {
		return fmt.Errorf("%w: nothing selected", ErrInvalidSelection)
	}
	top := n
	for ; top.parent != nil; top = top.parent {
		if !slices.Contains(top.parent.children, top) {
			break
		}
	}
	if top != nb.tree.root {
		return fmt.Errorf("%w: %s is no longer in the tree", ErrInvalidSelection, n.Name())
	}
	return nil
}
