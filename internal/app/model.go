package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/skrib/internal/notebook"
	"github.com/treykane/skrib/internal/watcher"
)

// mode controls the UI state and which input widget is active.
type mode int

const (
	modeBrowse mode = iota
	modeEditNote
	modeNewNote
	modeNewFolder
	modeSelectRoot
	modeConfirmDelete
	modeConfirmClose
)

// treeItem represents a single row in the left-hand tree pane.
type treeItem struct {
	node  *notebook.Node
	rel   string
	name  string
	depth int
	isDir bool
}

// Preferences is the slice of the preference store the UI needs beyond what
// the notebook itself persists.
type Preferences interface {
	Autosave() bool
	SetAutosave(on bool) error
	ChooserStartDir() string
	Keybindings() map[string]string
}

// Options configures New.
type Options struct {
	Notebook *notebook.Notebook
	Prefs    Preferences
	// Watch enables the filesystem watcher that rebuilds the tree on
	// external changes.
	Watch bool
	// Autosave turns autosave on for this run without storing it.
	Autosave bool
	// Status is shown in the footer on startup.
	Status string
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	nb    *notebook.Notebook
	prefs Preferences

	// Tree pane
	items      []treeItem
	expanded   map[string]bool
	cursor     int
	treeOffset int

	// UI widgets
	viewport   viewport.Model
	input      textinput.Model
	editor     textarea.Model
	mode       mode
	status     string
	showHelp   bool
	debugInput bool

	// Close flow and deferred actions waiting on it
	pending pendingAction
	// Relative path targeted by a delete confirmation
	deleteRel string

	keyToAction map[string]string
	actionKeys  map[string][]string

	// Filesystem watching
	watchEnabled bool
	watch        *watcher.Watcher
	watchCancel  context.CancelFunc

	// Layout sizing
	width      int
	height     int
	leftHeight int
}

// New prepares the initial UI model. The notebook may have no root yet; the
// user is then prompted to choose one.
func New(opts Options) (*Model, error) {
	if opts.Notebook == nil {
		return nil, fmt.Errorf("new model: notebook is required")
	}

	vp := viewport.New(0, 0)

	input := textinput.New()
	input.Placeholder = "Name"
	input.CharLimit = InputCharLimit

	editor := textarea.New()
	editor.Placeholder = "<p>Your note here...</p>"
	editor.CharLimit = 0
	applyEditorTheme(&editor)

	m := &Model{
		nb:           opts.Notebook,
		prefs:        opts.Prefs,
		expanded:     map[string]bool{},
		viewport:     vp,
		input:        input,
		editor:       editor,
		mode:         modeBrowse,
		status:       "Ready",
		debugInput:   os.Getenv("SKRIB_DEBUG_INPUT") != "",
		watchEnabled: opts.Watch,
	}
	var overrides map[string]string
	if m.prefs != nil {
		m.nb.SetAutosave(m.prefs.Autosave())
		overrides = m.prefs.Keybindings()
	}
	if opts.Autosave {
		m.nb.SetAutosave(true)
	}
	m.keyToAction, m.actionKeys = resolveKeybindings(overrides)

	m.rebuildTreeKeep("")
	m.refreshPreview()
	if m.nb.Tree() == nil {
		m.startSelectRoot()
	}
	if opts.Status != "" {
		m.status = opts.Status
	}
	return m, nil
}

// Init starts the filesystem watcher for the current root.
func (m *Model) Init() tea.Cmd {
	return m.restartWatcher()
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.adjustTreeOffset()
		return m, nil
	case treeChangedMsg:
		return m.handleTreeChanged(msg)
	case tea.KeyMsg:
		if m.shouldIgnoreInput(msg) {
			return m, nil
		}
		switch m.mode {
		case modeEditNote:
			return m.handleEditKey(msg)
		case modeNewNote, modeNewFolder, modeSelectRoot:
			return m.handlePromptKey(msg)
		case modeConfirmDelete:
			return m.handleConfirmDeleteKey(msg.String())
		case modeConfirmClose:
			return m.handleConfirmCloseKey(msg.String())
		default:
			return m.handleBrowseKey(msg.String())
		}
	}
	return m, nil
}

// Close releases the watcher. It is safe to call more than once.
func (m *Model) Close() {
	m.stopWatcher()
}

func (m *Model) shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	if containsControlRunes(msg.String()) {
		if m.debugInput {
			m.status = fmt.Sprintf("Ignored input: %q", msg.String())
		}
		return true
	}
	return false
}

// containsControlRunes detects terminal responses that leak into key events
// as runes.
func containsControlRunes(sequence string) bool {
	for _, r := range sequence {
		switch {
		case r == '\n' || r == '\t':
			continue
		case r < 32 || r == 127:
			return true
		}
	}
	return false
}
