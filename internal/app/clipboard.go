package app

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/treykane/skrib/internal/notebook"
)

// copyCurrentNoteContentToClipboard copies the plain text of the open note.
// In edit mode the live editor buffer is used.
func (m *Model) copyCurrentNoteContentToClipboard() {
	session := m.nb.Session()
	if !session.IsOpen() {
		m.status = "No note open"
		return
	}
	markup := session.Content()
	if m.mode == modeEditNote {
		markup = m.editor.Value()
	}
	text := notebook.PlainText(markup)
	if text == "" {
		m.status = "No note content to copy"
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = fmt.Sprintf("Copied note content (%d chars)", len([]rune(text)))
}

// copyCurrentNotePathToClipboard copies the absolute path of the open note,
// or of the selected row when nothing is open.
func (m *Model) copyCurrentNotePathToClipboard() {
	path := m.nb.Session().Path()
	if path == "" {
		if node := m.selectedNode(); node != nil {
			path = m.nb.Tree().Resolve(node)
		}
	}
	if path == "" {
		m.status = "Nothing selected"
		return
	}
	if err := clipboard.WriteAll(path); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = "Copied path"
}
