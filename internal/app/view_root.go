package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View draws the tree beside the right pane, with the status footer below.
// While a close or delete answer is pending the right pane asks the question.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	leftPane := m.renderTree(layout.LeftWidth, layout.ContentHeight)
	var rightPane string
	if title, lines, ok := m.confirmQuestion(); ok {
		rightPane = renderConfirm(title, lines, layout.RightWidth, layout.ContentHeight)
	} else {
		rightPane = m.renderRight(layout.RightWidth, layout.ContentHeight)
	}
	row := padBlock(lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane), m.width, layout.ContentHeight)

	view := row + "\n" + m.renderStatus(m.width, m.footerHeightForWidth(m.width))
	return padBlock(view, m.width, m.height)
}

// confirmQuestion describes the pending confirmation, if any.
func (m *Model) confirmQuestion() (string, []string, bool) {
	switch m.mode {
	case modeConfirmClose:
		name := filepath.Base(m.nb.Session().Path())
		return "Unsaved changes", []string{
			name + " has changes that are not on disk.",
			"",
			"s  save, then continue",
			"d  discard, then continue",
			"c  keep editing",
		}, true
	case modeConfirmDelete:
		lines := []string{"Delete " + m.deleteRel + "?"}
		if node := m.lookupRel(m.deleteRel); node != nil && node.IsDir() {
			lines = append(lines, "The folder and everything in it will be removed.")
		}
		return "Delete", append(lines, "", "y  delete", "any other key  cancel"), true
	}
	return "", nil, false
}

func renderConfirm(title string, lines []string, width, height int) string {
	innerWidth := max(0, width-confirmPane.GetHorizontalFrameSize())
	innerHeight := max(0, height-confirmPane.GetVerticalFrameSize())
	header := dirtyStyle.Width(innerWidth).Render(" " + truncate(title, max(0, innerWidth-1)))
	body := padBlock(strings.Join(lines, "\n"), innerWidth, max(0, innerHeight-1))
	return confirmPane.Width(width).Height(height).Render(header + "\n" + body)
}
