// notes.go drives the open document: opening the selected file, editing it,
// saving, and the close flow.
//
// Closing always goes through Notebook.RequestClose, which compares the
// editor content against disk. When that reports unsaved changes the UI
// switches to modeConfirmClose and parks whatever the user was trying to do
// (quit, open another note, switch roots) in m.pending until they answer.
package app

import (
	"errors"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/skrib/internal/notebook"
)

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingQuit
	pendingOpen
	pendingSelectRoot
)

// pendingAction is work deferred until the open document has been closed.
// Targets are relative paths; the tree may be rebuilt while the prompt is
// up.
type pendingAction struct {
	kind pendingKind
	rel  string // pendingOpen
	edit bool   // pendingOpen: enter edit mode after opening
	dir  string // pendingSelectRoot
}

// openSelected opens the selected file, optionally entering edit mode.
// Directories toggle instead. An open document is closed first.
func (m *Model) openSelected(edit bool) (tea.Model, tea.Cmd) {
	item := m.selectedItem()
	if item == nil {
		m.status = "Nothing selected"
		return m, nil
	}
	if item.isDir {
		if edit {
			m.status = "Select a note to edit"
			return m, nil
		}
		m.toggleExpand(true)
		return m, nil
	}

	session := m.nb.Session()
	if session.IsOpen() && session.Path() == m.nb.Tree().Resolve(item.node) {
		if edit {
			m.startEditing()
		}
		return m, nil
	}
	if session.IsOpen() {
		return m.requestCloseThen(pendingAction{kind: pendingOpen, rel: item.rel, edit: edit})
	}
	m.openNode(item.node, edit)
	return m, nil
}

func (m *Model) openNode(n *notebook.Node, edit bool) {
	if _, err := m.nb.OpenNode(n); err != nil {
		m.setStatusError("Cannot open "+n.Name()+": "+describeError(err), err)
		return
	}
	m.refreshPreview()
	m.status = "Opened " + n.Name()
	if edit {
		m.startEditing()
	}
}

// openRel opens the note at rel in the current tree.
func (m *Model) openRel(rel string, edit bool) {
	node := m.lookupRel(rel)
	if node == nil {
		m.status = "Cannot open " + rel + ": no longer exists"
		return
	}
	m.openNode(node, edit)
}

// lookupRel finds the node at rel, or nil when it is gone or there is no tree.
func (m *Model) lookupRel(rel string) *notebook.Node {
	tree := m.nb.Tree()
	if tree == nil {
		return nil
	}
	return tree.Lookup(rel)
}

// startEditing loads the open document into the editor.
func (m *Model) startEditing() {
	session := m.nb.Session()
	if !session.IsOpen() {
		m.status = "No note open"
		return
	}
	m.editor.SetValue(session.Content())
	m.editor.Focus()
	m.mode = modeEditNote
	m.updateLayout()
	m.status = "Editing " + filepath.Base(session.Path())
}

// stopEditing leaves edit mode; the document stays open, possibly dirty.
func (m *Model) stopEditing() {
	m.editor.Blur()
	m.mode = modeBrowse
	m.updateLayout()
	m.refreshPreview()
	if m.nb.Session().Dirty() {
		m.status = "Unsaved changes (" + m.primaryKey(actionSave) + " to save)"
		return
	}
	m.status = "Done editing"
}

// recordEdit reports new editor content. With autosave on this writes to
// disk; a failure is shown and retried on the next keystroke.
func (m *Model) recordEdit(content string) {
	if err := m.nb.Edit(content); err != nil {
		m.setStatusError("Autosave failed: "+describeError(err), err, "path", m.nb.Session().Path())
	}
}

func (m *Model) saveNote() {
	session := m.nb.Session()
	if !session.IsOpen() {
		m.status = "No note open"
		return
	}
	if err := m.nb.Save(); err != nil {
		m.setStatusError("Error saving note: "+describeError(err), err, "path", session.Path())
		return
	}
	m.status = "Saved " + filepath.Base(session.Path())
}

func (m *Model) requestQuit() (tea.Model, tea.Cmd) {
	return m.requestCloseThen(pendingAction{kind: pendingQuit})
}

// requestCloseThen closes the open document and then runs next. Unsaved
// changes prompt first.
func (m *Model) requestCloseThen(next pendingAction) (tea.Model, tea.Cmd) {
	session := m.nb.Session()
	if !session.IsOpen() {
		if next.kind == pendingNone {
			m.status = "No note open"
		}
		return m.runPending(next)
	}
	if m.mode == modeEditNote {
		m.stopEditing()
	}

	name := filepath.Base(session.Path())
	decision, err := m.nb.RequestClose()
	if err != nil {
		m.setStatusError("Cannot close "+name+": "+describeError(err), err)
		return m, nil
	}
	if decision == notebook.NoChanges {
		m.afterClose()
		m.status = "Closed " + name
		return m.runPending(next)
	}

	m.pending = next
	m.mode = modeConfirmClose
	m.status = "Unsaved changes in " + name + ": (s)ave, (d)iscard, (c)ancel"
	return m, nil
}

// resolveClose applies the answer to the unsaved-changes prompt.
func (m *Model) resolveClose(choice notebook.CloseChoice) (tea.Model, tea.Cmd) {
	name := filepath.Base(m.nb.Session().Path())
	next := m.pending
	m.pending = pendingAction{}
	m.mode = modeBrowse

	if err := m.nb.ResolveClose(choice); err != nil {
		m.setStatusError("Error saving note: "+describeError(err), err, "path", m.nb.Session().Path())
		return m, nil
	}
	switch choice {
	case notebook.CancelClose:
		m.status = "Close cancelled"
		return m, nil
	case notebook.SaveAndClose:
		m.status = "Saved and closed " + name
	default:
		m.status = "Discarded changes to " + name
	}
	m.afterClose()
	return m.runPending(next)
}

func (m *Model) afterClose() {
	m.editor.Reset()
	m.refreshPreview()
}

func (m *Model) runPending(next pendingAction) (tea.Model, tea.Cmd) {
	switch next.kind {
	case pendingQuit:
		m.stopWatcher()
		return m, tea.Quit
	case pendingOpen:
		m.openRel(next.rel, next.edit)
	case pendingSelectRoot:
		return m, m.selectRoot(next.dir)
	}
	return m, nil
}

// toggleAutosave flips autosave and remembers the choice.
func (m *Model) toggleAutosave() {
	on := !m.nb.Session().Autosave()
	m.nb.SetAutosave(on)
	label := "off"
	if on {
		label = "on"
	}
	if m.prefs != nil {
		if err := m.prefs.SetAutosave(on); err != nil {
			m.setStatusError("Autosave "+label+" (not remembered)", err)
			return
		}
	}
	m.status = "Autosave " + label
}

// currentWordCount counts words in the live editor or the open document.
func (m *Model) currentWordCount() (int, bool) {
	if m.mode == modeEditNote {
		return notebook.WordCount(m.editor.Value()), true
	}
	if session := m.nb.Session(); session.IsOpen() {
		return notebook.WordCount(session.Content()), true
	}
	return 0, false
}

// describeError turns a notebook failure into a short footer message. The
// full error goes to the log.
func describeError(err error) string {
	switch {
	case errors.Is(err, notebook.ErrAlreadyExists):
		return "already exists"
	case errors.Is(err, notebook.ErrUnsupported):
		return "unsupported file type"
	case errors.Is(err, notebook.ErrNoDocumentOpen):
		return "no note open"
	case errors.Is(err, notebook.ErrInvalidName):
		return "invalid name"
	case errors.Is(err, notebook.ErrInvalidSelection):
		return "not allowed here"
	case errors.Is(err, notebook.ErrNoRoot):
		return "no storage directory"
	case errors.Is(err, notebook.ErrIO):
		return "filesystem error"
	}
	return err.Error()
}
