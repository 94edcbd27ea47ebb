// layout.go centralizes the terminal layout calculations for the two-pane UI.
//
// The tree pane sits on the left and the preview/editor pane fills the rest.
// The footer reserves two or three rows depending on how much help and status
// text fits. The right pane loses one more row to the header that shows the
// open note's path.
package app

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	LeftWidth      int // width allocated to the tree pane (including border/padding)
	RightWidth     int // width allocated to the right pane (remainder after tree)
	ContentHeight  int // total height available for pane content (terminal height minus footer)
	ViewportWidth  int // usable width inside the right pane (after border/padding)
	ViewportHeight int // usable height inside the right pane (after border/padding and header)
}

// calculateLayout computes all UI dimensions based on terminal size and mode.
//
// The tree pane width is the smaller of DefaultTreeWidth and
// terminal_width / TreeWidthDivider. Preview and edit modes use panes with
// different frames, so the viewport size depends on the mode.
func (m *Model) calculateLayout() LayoutDimensions {
	leftWidth := min(DefaultTreeWidth, m.width/TreeWidthDivider)
	rightWidth := max(0, m.width-leftWidth)
	contentHeight := max(0, m.height-m.footerHeightForWidth(m.width))

	rightPaneStyle := previewPane
	if m.mode == modeEditNote {
		rightPaneStyle = editPane
	}

	return LayoutDimensions{
		LeftWidth:      leftWidth,
		RightWidth:     rightWidth,
		ContentHeight:  contentHeight,
		ViewportWidth:  max(0, rightWidth-rightPaneStyle.GetHorizontalFrameSize()),
		ViewportHeight: max(0, contentHeight-rightPaneStyle.GetVerticalFrameSize()-1),
	}
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
func (m *Model) footerHeightForWidth(width int) int {
	if _, fit := m.buildStatusRows(width, FooterMinRows); fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// updateLayout resizes the widgets after a resize or mode change. The preview
// is re-rendered when its width changes so paragraphs rewrap.
func (m *Model) updateLayout() {
	layout := m.calculateLayout()
	m.leftHeight = layout.ContentHeight

	widthChanged := m.viewport.Width != layout.ViewportWidth
	m.viewport.Width = layout.ViewportWidth
	m.viewport.Height = layout.ViewportHeight
	m.editor.SetWidth(layout.ViewportWidth)
	m.editor.SetHeight(layout.ViewportHeight)
	m.input.Width = max(0, layout.ViewportWidth-len(m.input.Prompt)-1)

	if widthChanged && m.mode != modeEditNote {
		m.refreshPreview()
	}
}
