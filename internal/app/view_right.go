package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/skrib/internal/notebook"
)

// renderRight draws the right-hand pane (editor, prompt, help, or preview).
func (m *Model) renderRight(width, height int) string {
	rightPaneStyle := previewPane
	headerStyle := previewHeader
	if m.mode == modeEditNote {
		rightPaneStyle = editPane
		headerStyle = editHeader
	}

	innerWidth := max(0, width-rightPaneStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-rightPaneStyle.GetVerticalFrameSize())
	contentHeight := max(0, innerHeight-1)

	var content string
	switch m.mode {
	case modeEditNote:
		content = m.editor.View()
	case modeNewNote, modeNewFolder, modeSelectRoot:
		m.input.Width = max(0, innerWidth-len(m.input.Prompt)-1)
		prompt, location, helper := m.inputModeMeta()
		content = strings.Join([]string{
			titleStyle.Render(prompt),
			location,
			"",
			m.input.View(),
			"",
			helper,
		}, "\n")
	default:
		if m.showHelp {
			content = m.renderHelp(innerWidth, contentHeight)
		} else {
			content = m.viewport.View()
		}
	}

	header := m.renderRightHeader(innerWidth, headerStyle)
	body := padBlock(content, innerWidth, contentHeight)
	return rightPaneStyle.Width(width).Height(height).Render(header + "\n" + body)
}

// inputModeMeta returns the title, location line and hint for a prompt.
func (m *Model) inputModeMeta() (string, string, string) {
	const hint = "Enter to confirm, Esc to cancel"
	switch m.mode {
	case modeNewNote:
		return "New note", mutedStyle.Render("In: " + m.parentLabel()), mutedStyle.Render(hint + ". Names without .html, .htm or .txt get .html.")
	case modeNewFolder:
		return "New folder", mutedStyle.Render("In: " + m.parentLabel()), mutedStyle.Render(hint)
	default:
		location := "No storage directory selected"
		if dir := m.nb.RootDir(); dir != "" {
			location = "Current: " + dir
		}
		return "Storage directory", mutedStyle.Render(location), mutedStyle.Render(hint + ". ~ expands to your home directory.")
	}
}

// renderRightHeader shows the open note relative to the root, with a marker
// while it has unsaved changes.
func (m *Model) renderRightHeader(width int, style lipgloss.Style) string {
	session := m.nb.Session()
	if !session.IsOpen() {
		return style.Width(width).Render(" " + truncate(mutedStyle.Render("No note open"), max(0, width-1)))
	}

	marker := ""
	if session.Dirty() {
		marker = " " + dirtyStyle.Render("[modified]")
	}
	avail := max(0, width-1-lipgloss.Width(marker))
	line := " " + truncateLeft(m.rightHeaderPath(), avail) + marker
	return style.Width(width).Render(line)
}

func (m *Model) rightHeaderPath() string {
	path := m.nb.Session().Path()
	root := m.nb.RootDir()
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// openWordCountLabel is the footer word count for the open note.
func (m *Model) openWordCountLabel() string {
	n, ok := m.currentWordCount()
	if !ok {
		return ""
	}
	return notebook.WordCountLabel(n)
}
