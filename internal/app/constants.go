package app

// Layout constants define the default dimensions and spacing for the UI
const (
	// DefaultTreeWidth is the maximum width allocated to the tree view
	DefaultTreeWidth = 40

	// TreeWidthDivider determines tree width as terminal_width / this value
	// when terminal is narrow
	TreeWidthDivider = 3

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters allowed in the
	// name and directory prompts
	InputCharLimit = 255
)

// Rendering constants
const (
	// RenderWidthBucket is the granularity for width-based render caching.
	// Widths are rounded down to a multiple of this value.
	RenderWidthBucket = 20
)
