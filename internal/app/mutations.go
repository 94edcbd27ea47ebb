package app

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/skrib/internal/config"
	"github.com/treykane/skrib/internal/notebook"
)

// createParent resolves where new entries go: the selected node. The core
// rejects files, so the selection is passed through as is.
func (m *Model) createParent() *notebook.Node {
	return m.selectedNode()
}

func (m *Model) startNewNote() {
	m.startPrompt(modeNewNote, "Note name", "")
	m.status = "New note in " + m.parentLabel() + " (.html added unless .htm/.txt given)"
}

func (m *Model) startNewFolder() {
	m.startPrompt(modeNewFolder, "Folder name", "")
	m.status = "New folder in " + m.parentLabel()
}

func (m *Model) startSelectRoot() {
	start := ""
	if m.prefs != nil {
		start = m.prefs.ChooserStartDir()
	}
	if dir := m.nb.RootDir(); dir != "" {
		start = dir
	}
	m.startPrompt(modeSelectRoot, "Storage directory", start)
	if m.nb.Tree() == nil {
		m.status = "Directory is not selected: enter a storage directory"
		return
	}
	m.status = "Enter a storage directory"
}

func (m *Model) startPrompt(md mode, placeholder, value string) {
	m.mode = md
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) parentLabel() string {
	item := m.selectedItem()
	if item == nil || item.rel == "" {
		return "root"
	}
	return item.rel
}

func (m *Model) cancelPrompt() {
	switch m.mode {
	case modeNewNote:
		m.status = "New note cancelled"
	case modeNewFolder:
		m.status = "New folder cancelled"
	case modeSelectRoot:
		m.status = "Directory selection cancelled"
	}
	m.input.Blur()
	m.mode = modeBrowse
}

func (m *Model) submitPrompt() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	md := m.mode
	m.input.Blur()
	m.mode = modeBrowse

	switch md {
	case modeNewNote:
		return m, m.createNote(value)
	case modeNewFolder:
		m.createFolder(value)
	case modeSelectRoot:
		if strings.TrimSpace(value) == "" {
			m.status = "Directory selection cancelled"
			return m, nil
		}
		dir, err := config.NormalizeDir(value)
		if err != nil {
			m.setStatusError("Cannot use "+value+": "+err.Error(), err)
			return m, nil
		}
		return m.requestCloseThen(pendingAction{kind: pendingSelectRoot, dir: dir})
	}
	return m, nil
}

// createNote creates the file and opens it for editing, closing the current
// document first.
func (m *Model) createNote(name string) tea.Cmd {
	parent := m.createParent()
	node, err := m.nb.CreateFile(parent, name)
	if err != nil {
		m.setStatusError("Cannot create note: "+describeError(err), err, "name", name)
		return nil
	}
	rel := notebook.RelPath(node)
	m.expandTo(rel)
	m.rebuildTreeKeep(rel)
	if m.nb.Session().IsOpen() {
		m.status = "Created " + node.Name()
		_, cmd := m.requestCloseThen(pendingAction{kind: pendingOpen, rel: rel, edit: true})
		return cmd
	}
	m.openNode(node, true)
	return nil
}

func (m *Model) createFolder(name string) {
	node, err := m.nb.CreateDirectory(m.createParent(), name)
	if err != nil {
		m.setStatusError("Cannot create folder: "+describeError(err), err, "name", name)
		return
	}
	rel := notebook.RelPath(node)
	m.expandTo(rel)
	m.rebuildTreeKeep(rel)
	m.status = "Created folder " + node.Name()
}

func (m *Model) startDeleteSelected() {
	node := m.selectedNode()
	if node == nil {
		m.status = "Nothing selected"
		return
	}
	if node.IsRoot() {
		m.status = "Cannot delete the storage directory"
		return
	}
	m.deleteRel = notebook.RelPath(node)
	m.mode = modeConfirmDelete
	if node.IsDir() {
		m.status = "Delete folder " + notebook.RelPath(node) + " and everything in it? (y/N)"
		return
	}
	m.status = "Delete " + notebook.RelPath(node) + "? (y/N)"
}

func (m *Model) deleteTargetConfirmed() {
	rel := m.deleteRel
	m.deleteRel = ""
	m.mode = modeBrowse
	if rel == "" {
		return
	}
	node := m.lookupRel(rel)
	if node == nil {
		m.rebuildTreeKeep(rel)
		m.status = rel + " is already gone"
		return
	}

	var err error
	if node.IsDir() {
		err = m.nb.DeleteDirectory(node)
	} else {
		err = m.nb.DeleteFile(node)
	}
	if err != nil {
		m.setStatusError("Delete failed: "+describeError(err), err, "path", rel)
		return
	}
	delete(m.expanded, rel)
	m.rebuildTreeKeep(rel)
	m.refreshPreview()
	m.status = "Deleted " + rel
}

// selectRoot switches the storage directory and restarts the watcher.
func (m *Model) selectRoot(dir string) tea.Cmd {
	err := m.nb.SelectRoot(dir)
	if err != nil && !errors.Is(err, notebook.ErrNotRemembered) {
		m.setStatusError("Cannot use "+dir+": "+describeError(err), err)
		return nil
	}
	m.expanded = map[string]bool{}
	m.rebuildTreeKeep("")
	m.refreshPreview()
	if err != nil {
		m.setStatusError("Opened "+m.nb.RootDir()+" (choice not remembered)", err)
	} else {
		m.status = "Opened " + m.nb.RootDir()
	}
	return m.restartWatcher()
}

// rebuildFromDisk re-reads the tree and keeps the selection where possible.
func (m *Model) rebuildFromDisk() error {
	rel := ""
	if item := m.selectedItem(); item != nil {
		rel = item.rel
	}
	wasOpen := m.nb.Session().IsOpen()
	if err := m.nb.Rebuild(); err != nil {
		return err
	}
	m.rebuildTreeKeep(rel)
	if wasOpen && !m.nb.Session().IsOpen() {
		if m.mode == modeEditNote {
			m.editor.Blur()
			m.mode = modeBrowse
			m.updateLayout()
		}
		m.editor.Reset()
		m.refreshPreview()
		m.status = "Open note was removed outside skrib"
	}
	return nil
}
