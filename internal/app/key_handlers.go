package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/skrib/internal/notebook"
)

// handleBrowseKey routes key presses in browse mode.
func (m *Model) handleBrowseKey(key string) (tea.Model, tea.Cmd) {
	switch m.keyToAction[key] {
	case actionQuit:
		return m.requestQuit()
	case actionHelp:
		return m.toggleHelp()
	case actionCursorUp:
		m.moveCursor(-1)
	case actionCursorDown:
		m.moveCursor(1)
	case actionJumpTop:
		return m.handleJumpTop()
	case actionJumpBottom:
		return m.handleJumpBottom()
	case actionExpandToggle:
		m.toggleExpand(true)
	case actionCollapse:
		m.toggleExpand(false)
	case actionOpen:
		return m.openSelected(false)
	case actionEditNote:
		return m.openSelected(true)
	case actionSave:
		m.saveNote()
	case actionCloseNote:
		return m.requestCloseThen(pendingAction{})
	case actionAutosave:
		m.toggleAutosave()
	case actionNewNote:
		m.startNewNote()
	case actionNewFolder:
		m.startNewFolder()
	case actionDelete:
		m.startDeleteSelected()
	case actionSelectRoot:
		m.startSelectRoot()
	case actionRefresh:
		return m.handleRefresh()
	case actionCopyContent:
		m.copyCurrentNoteContentToClipboard()
	case actionCopyPath:
		m.copyCurrentNotePathToClipboard()
	case actionPreviewScrollUp:
		m.viewport.ViewUp()
	case actionPreviewScrollDown:
		m.viewport.ViewDown()
	}
	return m, nil
}

// handleEditKey feeds keys to the editor and reports every content change
// to the notebook, which autosaves when enabled.
func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveNote()
		return m, nil
	case "esc":
		m.stopEditing()
		return m, nil
	case "ctrl+c":
		return m.requestQuit()
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.recordEdit(after)
	}
	return m, cmd
}

// handlePromptKey drives the name and root prompts.
func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "ctrl+s":
		return m.submitPrompt()
	case "esc":
		m.cancelPrompt()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmDeleteKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.deleteTargetConfirmed()
	default:
		m.deleteRel = ""
		m.mode = modeBrowse
		m.status = "Delete cancelled"
	}
	return m, nil
}

func (m *Model) handleConfirmCloseKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "s", "S", "ctrl+s":
		return m.resolveClose(notebook.SaveAndClose)
	case "d", "D":
		return m.resolveClose(notebook.DiscardAndClose)
	case "c", "C", "esc":
		return m.resolveClose(notebook.CancelClose)
	}
	return m, nil
}

// handleJumpTop jumps to the first item in the tree.
func (m *Model) handleJumpTop() (tea.Model, tea.Cmd) {
	if len(m.items) > 0 {
		m.cursor = 0
		m.adjustTreeOffset()
	}
	return m, nil
}

// handleJumpBottom jumps to the last item in the tree.
func (m *Model) handleJumpBottom() (tea.Model, tea.Cmd) {
	if len(m.items) > 0 {
		m.cursor = len(m.items) - 1
		m.adjustTreeOffset()
	}
	return m, nil
}

// handleRefresh rebuilds the tree from disk.
func (m *Model) handleRefresh() (tea.Model, tea.Cmd) {
	if err := m.rebuildFromDisk(); err != nil {
		m.setStatusError("Refresh failed: "+describeError(err), err)
		return m, nil
	}
	m.status = "Refreshed"
	return m, nil
}

// toggleHelp shows or hides the help screen.
func (m *Model) toggleHelp() (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.status = ""
	}
	return m, nil
}
