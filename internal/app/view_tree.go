package app

import (
	"fmt"
	"strings"
)

func (m *Model) renderTree(width, height int) string {
	innerWidth := max(0, width-paneStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-paneStyle.GetVerticalFrameSize())

	lines := []string{truncate(titleStyle.Render("Notes"), innerWidth)}

	visibleHeight := max(0, innerHeight-len(lines))
	start := min(m.treeOffset, max(0, len(m.items)-1))
	end := min(len(m.items), start+visibleHeight)

	openPath := ""
	if session := m.nb.Session(); session.IsOpen() {
		openPath = session.Path()
	}

	for i := start; i < end; i++ {
		item := m.items[i]
		if i == m.cursor {
			line := truncate(m.formatTreeItemPlain(item), innerWidth)
			lines = append(lines, selectedStyle.Width(innerWidth).Render(line))
			continue
		}
		open := !item.isDir && openPath != "" && m.nb.Tree().Resolve(item.node) == openPath
		lines = append(lines, truncate(m.formatTreeItem(item, open), innerWidth))
	}
	if len(m.items) == 0 {
		lines = append(lines, truncate(mutedStyle.Render("(no directory selected)"), innerWidth))
	}

	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	return paneStyle.Width(width).Height(height).Render(content)
}

func (m *Model) formatTreeItem(item treeItem, open bool) string {
	indent := strings.Repeat("  ", item.depth)
	if item.isDir {
		marker := treeClosedMark.Render("[+]")
		if m.isExpanded(item) {
			marker = treeOpenMark.Render("[-]")
		}
		return fmt.Sprintf("%s%s %s %s", indent, marker, treeDirTag.Render("DIR"), treeDirName.Render(item.name))
	}
	name := treeFileName.Render(item.name)
	if open {
		name = treeOpenFile.Render(item.name)
	}
	return fmt.Sprintf("%s    %s %s", indent, treeFileTag.Render(fileTag(item.name)), name)
}

func (m *Model) formatTreeItemPlain(item treeItem) string {
	indent := strings.Repeat("  ", item.depth)
	if item.isDir {
		marker := "[+]"
		if m.isExpanded(item) {
			marker = "[-]"
		}
		return fmt.Sprintf("%s%s DIR %s", indent, marker, item.name)
	}
	return fmt.Sprintf("%s    %s %s", indent, fileTag(item.name), item.name)
}

func (m *Model) isExpanded(item treeItem) bool {
	return item.node.IsRoot() || m.expanded[item.rel]
}

// fileTag labels a note row by format.
func fileTag(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".txt") {
		return "TXT"
	}
	return "HTM"
}
