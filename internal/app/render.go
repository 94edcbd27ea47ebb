// render.go renders the open note into the preview pane.
//
// Notes are HTML fragments, so the preview first reduces them to plain
// paragraphs: line-break tags become paragraph breaks, bluemonday's strict
// policy strips every remaining tag (dropping script and style bodies), and
// entities are unescaped. The paragraphs are then laid out by Glamour at the
// viewport width.
//
// Glamour renderers are cached per width since creating one parses a style
// sheet. The style comes from SKRIB_GLAMOUR_STYLE or GLAMOUR_STYLE and
// defaults to "dark".
package app

import (
	"html"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"

	"github.com/treykane/skrib/internal/notebook"
)

var (
	stripPolicy = bluemonday.StrictPolicy()

	rendererCacheMu sync.Mutex
	rendererCache   = map[int]*glamour.TermRenderer{}
)

// refreshPreview redraws the preview for the open note, or a hint when
// nothing is open.
func (m *Model) refreshPreview() {
	session := m.nb.Session()
	switch {
	case m.nb.Tree() == nil:
		m.viewport.SetContent(mutedStyle.Render("Directory is not selected. Press " + m.primaryKey(actionSelectRoot) + " to choose one."))
	case !session.IsOpen():
		m.viewport.SetContent(mutedStyle.Render("Select a note and press " + m.primaryKey(actionOpen) + " to open it."))
	default:
		m.viewport.SetContent(renderPreview(session.Content(), m.viewport.Width))
	}
	m.viewport.GotoTop()
}

// previewText reduces note markup to plain paragraphs separated by blank
// lines.
func previewText(markup string) string {
	text := html.UnescapeString(stripPolicy.Sanitize(notebook.BreakLines(markup)))
	lines := strings.Split(text, "\n")
	paragraphs := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// renderPreview lays out markup for a pane of the given width. Rendering
// failures fall back to the plain text.
func renderPreview(markup string, width int) string {
	text := previewText(markup)
	if text == "" {
		return mutedStyle.Render("(empty note)")
	}
	renderer, err := rendererFor(renderWidthBucket(width))
	if err != nil {
		appLog.Warn("create preview renderer", "width", width, "error", err)
		return text
	}
	out, err := renderer.Render(escapeMarkdown(text))
	if err != nil {
		appLog.Warn("render preview", "error", err)
		return text
	}
	return strings.Trim(out, "\n")
}

// escapeMarkdown keeps note text literal when handed to Glamour.
func escapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, line := range strings.Split(text, "\n") {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		for _, r := range line {
			if strings.ContainsRune("\\`*_[]#<>|~-+!", r) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func rendererFor(width int) (*glamour.TermRenderer, error) {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if r, ok := rendererCache[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = r
	return r, nil
}

func glamourStyle() string {
	if style := os.Getenv("SKRIB_GLAMOUR_STYLE"); style != "" {
		return style
	}
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		return style
	}
	return "dark"
}
