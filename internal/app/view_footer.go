package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	style := statusStyle
	if m.mode == modeEditNote {
		style = editStatus
	}
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, style.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

// buildStatusRows packs the help, context and status segments into at most
// rowLimit rows of the given width. fit reports whether everything fit.
func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := m.statusMessageSegment()

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

func (m *Model) statusHelpSegments() []string {
	switch m.mode {
	case modeEditNote:
		return []string{"Ctrl+S save", "Esc stop editing", "Ctrl+C quit"}
	case modeNewNote, modeNewFolder, modeSelectRoot:
		return []string{"Enter/Ctrl+S confirm", "Esc cancel"}
	case modeConfirmDelete:
		return []string{"y confirm delete", "any other key cancels"}
	case modeConfirmClose:
		return []string{"s save", "d discard", "c/Esc cancel"}
	}
	k := m.primaryKey
	return []string{
		k(actionCursorUp) + "/" + k(actionCursorDown) + " move",
		k(actionExpandToggle) + "/" + k(actionCollapse) + " expand",
		k(actionOpen) + " open",
		k(actionEditNote) + " edit",
		k(actionSave) + " save",
		k(actionCloseNote) + " close",
		k(actionNewNote) + " new",
		k(actionNewFolder) + " folder",
		k(actionDelete) + " delete",
		k(actionAutosave) + " autosave",
		k(actionSelectRoot) + " directory",
		k(actionRefresh) + " refresh",
		k(actionHelp) + " help",
		k(actionQuit) + " quit",
	}
}

func (m *Model) statusContextSegments() []string {
	parts := make([]string, 0, 3)
	if root := m.nb.RootDir(); root != "" {
		parts = append(parts, truncateLeft(root, 40))
	}
	if label := m.openWordCountLabel(); label != "" {
		parts = append(parts, label)
	}
	if m.nb.Session().Autosave() {
		parts = append(parts, "autosave on")
	} else {
		parts = append(parts, "autosave off")
	}
	return parts
}

func (m *Model) statusMessageSegment() string {
	return strings.TrimSpace(m.status)
}

// helpRows lists the browse actions in the order the help screen shows them.
var helpRows = []struct {
	action string
	label  string
}{
	{actionCursorUp, "Move selection up"},
	{actionCursorDown, "Move selection down"},
	{actionJumpTop, "Jump to top"},
	{actionJumpBottom, "Jump to bottom"},
	{actionExpandToggle, "Expand/collapse folder"},
	{actionCollapse, "Collapse folder or go to parent"},
	{actionOpen, "Open note (folders toggle)"},
	{actionEditNote, "Edit note"},
	{actionSave, "Save note"},
	{actionCloseNote, "Close note"},
	{actionAutosave, "Toggle autosave"},
	{actionNewNote, "New note in selected folder"},
	{actionNewFolder, "New folder in selected folder"},
	{actionDelete, "Delete (with confirmation)"},
	{actionSelectRoot, "Choose storage directory"},
	{actionRefresh, "Reload tree from disk"},
	{actionCopyContent, "Copy note text"},
	{actionCopyPath, "Copy note path"},
	{actionPreviewScrollUp, "Scroll preview up"},
	{actionPreviewScrollDown, "Scroll preview down"},
	{actionHelp, "Toggle help"},
	{actionQuit, "Quit"},
}

func (m *Model) renderHelp(width, height int) string {
	lines := []string{
		titleStyle.Render("Keyboard Shortcuts"),
		"",
		"Browse",
	}
	for _, row := range helpRows {
		keys := strings.Join(m.actionKeys[row.action], ", ")
		if keys == "" {
			keys = "unbound"
		}
		lines = append(lines, fmt.Sprintf("  %-20s %s", keys, row.label))
	}
	lines = append(lines,
		"",
		"Edit Note",
		"  Ctrl+S               Save",
		"  Esc                  Stop editing (note stays open)",
		"  Ctrl+C               Quit",
		"",
		"Unsaved Changes",
		"  s                    Save and close",
		"  d                    Discard and close",
		"  c or Esc             Keep editing",
		"",
		"Delete Confirmation",
		"  y                    Confirm delete",
		"  any other key        Cancel delete",
		"",
		"Press "+m.primaryKey(actionHelp)+" to return.",
	)

	visible := min(height, len(lines))
	out := make([]string, 0, visible)
	for i := 0; i < visible; i++ {
		out = append(out, truncate(lines[i], width))
	}
	return strings.Join(out, "\n")
}
