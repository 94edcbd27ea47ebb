package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treykane/skrib/internal/notebook"
)

func TestOpenSelectedOpensNote(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.html")
	mustWriteFile(t, path, "<p>Hello</p>")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "a.html")
	press(m, "enter")

	session := m.nb.Session()
	if !session.IsOpen() || session.Path() != path {
		t.Fatalf("expected %s open, got open=%v path=%q", path, session.IsOpen(), session.Path())
	}
	if m.mode != modeBrowse {
		t.Fatalf("expected to stay in browse mode, got %v", m.mode)
	}
	if m.status != "Opened a.html" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestOpenSelectedOnDirectoryToggles(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "sub", "b.html"), "")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "sub")
	press(m, "enter")
	if !m.expanded["sub"] {
		t.Fatal("expected enter on a directory to expand it")
	}
	press(m, "e")
	if m.mode != modeBrowse || m.status != "Select a note to edit" {
		t.Fatalf("expected edit on a directory to be refused, mode=%v status=%q", m.mode, m.status)
	}
}

func TestOpenUnsupportedFileShowsError(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "readme.md"), "# hi")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "readme.md")
	press(m, "enter")

	if m.nb.Session().IsOpen() {
		t.Fatal("expected unsupported file to stay closed")
	}
	if m.status != "Cannot open readme.md: unsupported file type" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestEditAndSaveWritesEditorContent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.html")
	mustWriteFile(t, path, "<p>hi</p>")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "a.html")
	press(m, "e")
	if m.mode != modeEditNote {
		t.Fatalf("expected edit mode, got %v", m.mode)
	}
	if got := m.editor.Value(); got != "<p>hi</p>" {
		t.Fatalf("expected editor loaded with note, got %q", got)
	}

	typeText(m, "X")
	if !m.nb.Session().Dirty() {
		t.Fatal("expected edit to mark the note dirty")
	}
	if got := readFile(t, path); got != "<p>hi</p>" {
		t.Fatalf("expected disk untouched before save, got %q", got)
	}

	press(m, "ctrl+s")
	if got := readFile(t, path); got != "<p>hi</p>X" {
		t.Fatalf("expected saved content, got %q", got)
	}
	if m.nb.Session().Dirty() {
		t.Fatal("expected save to clear dirty")
	}
	if m.status != "Saved a.html" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestStopEditingKeepsNoteOpenAndDirty(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a.html"), "")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "a.html")
	press(m, "e")
	typeText(m, "draft")
	press(m, "esc")

	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode, got %v", m.mode)
	}
	if !m.nb.Session().IsOpen() || !m.nb.Session().Dirty() {
		t.Fatal("expected note to stay open with unsaved changes")
	}
	if m.status != "Unsaved changes (ctrl+s to save)" {
		t.Fatalf("unexpected status %q", m.status)
	}

	press(m, "e")
	if m.mode != modeEditNote || m.editor.Value() != "draft" {
		t.Fatalf("expected to resume editing the draft, mode=%v value=%q", m.mode, m.editor.Value())
	}
}

func TestQuitWithoutChangesQuits(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a.html"), "<p>a</p>")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "a.html")
	press(m, "enter")
	if cmd := press(m, "q"); !isQuit(cmd) {
		t.Fatal("expected q to quit when nothing is unsaved")
	}
}

func TestQuitWithUnsavedChangesAsksFirst(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.html")
	mustWriteFile(t, path, "<p>a</p>")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "a.html")
	press(m, "e")
	typeText(m, "X")

	if cmd := press(m, "ctrl+c"); cmd != nil {
		t.Fatal("expected no command while asking about unsaved changes")
	}
	if m.mode != modeConfirmClose {
		t.Fatalf("expected confirm-close mode, got %v", m.mode)
	}
	if !strings.Contains(m.status, "Unsaved changes in a.html") {
		t.Fatalf("unexpected status %q", m.status)
	}

	if cmd := press(m, "d"); !isQuit(cmd) {
		t.Fatal("expected discard to continue quitting")
	}
	if got := readFile(t, path); got != "<p>a</p>" {
		t.Fatalf("expected discard to leave disk alone, got %q", got)
	}
}

func TestConfirmCloseSaveThenOpensNextNote(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.html")
	b := filepath.Join(root, "b.html")
	mustWriteFile(t, a, "")
	mustWriteFile(t, b, "<p>b</p>")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "a.html")
	press(m, "e")
	typeText(m, "kept")
	press(m, "esc")

	selectRel(t, m, "b.html")
	press(m, "enter")
	if m.mode != modeConfirmClose {
		t.Fatalf("expected confirm-close mode, got %v", m.mode)
	}

	press(m, "s")
	if got := readFile(t, a); got != "kept" {
		t.Fatalf("expected a.html saved, got %q", got)
	}
	if got := m.nb.Session().Path(); got != b {
		t.Fatalf("expected b.html open, got %q", got)
	}
	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode, got %v", m.mode)
	}
}

func TestConfirmCloseCancelKeepsDocument(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.html")
	mustWriteFile(t, a, "")
	mustWriteFile(t, filepath.Join(root, "b.html"), "")
	m := newTestModel(t, root, nil)

	selectRel(t, m, "a.html")
	press(m, "e")
	typeText(m, "draft")
	press(m, "esc")
	selectRel(t, m, "b.html")
	press(m, "enter")
	press(m, "c")

	session := m.nb.Session()
	if session.Path() != a || !session.Dirty() {
		t.Fatalf("expected a.html still open and dirty, got path=%q dirty=%v", session.Path(), session.Dirty())
	}
	if m.status != "Close cancelled" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if got := readFile(t, a); got != "" {
		t.Fatalf("expected cancel to leave disk alone, got %q", got)
	}
}

func TestCloseNote(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a.html"), "<p>a</p>")
	m := newTestModel(t, root, nil)

	press(m, "x")
	if m.status != "No note open" {
		t.Fatalf("unexpected status %q", m.status)
	}

	selectRel(t, m, "a.html")
	press(m, "enter", "x")
	if m.nb.Session().IsOpen() {
		t.Fatal("expected note closed")
	}
	if m.status != "Closed a.html" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestToggleAutosaveRemembersChoiceAndSavesEdits(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.html")
	mustWriteFile(t, path, "")
	prefs := &fakePrefs{}
	m := newTestModel(t, root, prefs)

	press(m, "a")
	if !m.nb.Session().Autosave() || !prefs.autosave {
		t.Fatal("expected autosave enabled and remembered")
	}
	if m.status != "Autosave on" {
		t.Fatalf("unexpected status %q", m.status)
	}

	selectRel(t, m, "a.html")
	press(m, "e")
	typeText(m, "now")
	if got := readFile(t, path); got != "now" {
		t.Fatalf("expected autosave to write the edit, got %q", got)
	}
	if m.nb.Session().Dirty() {
		t.Fatal("expected autosaved note to be clean")
	}
}

func TestToggleAutosavePreferenceFailure(t *testing.T) {
	root := t.TempDir()
	m := newTestModel(t, root, &fakePrefs{autosaveErr: errors.New("read-only")})

	press(m, "a")
	if !m.nb.Session().Autosave() {
		t.Fatal("expected autosave to switch on for this run")
	}
	if m.status != "Autosave on (not remembered)" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestNewModelAppliesStoredAutosave(t *testing.T) {
	m := newTestModel(t, t.TempDir(), &fakePrefs{autosave: true})
	if !m.nb.Session().Autosave() {
		t.Fatal("expected stored autosave preference applied")
	}
}

func TestCurrentWordCount(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a.html"), "<p>one two</p><p>three</p>")
	m := newTestModel(t, root, nil)

	if _, ok := m.currentWordCount(); ok {
		t.Fatal("expected no count without an open note")
	}
	selectRel(t, m, "a.html")
	press(m, "enter")
	if n, ok := m.currentWordCount(); !ok || n != 3 {
		t.Fatalf("expected 3 words, got %d (ok=%v)", n, ok)
	}

	press(m, "e")
	typeText(m, " four")
	if n, _ := m.currentWordCount(); n != 4 {
		t.Fatalf("expected live count of 4, got %d", n)
	}
}

func TestDescribeError(t *testing.T) {
	cases := map[error]string{
		notebook.ErrAlreadyExists:    "already exists",
		notebook.ErrUnsupported:      "unsupported file type",
		notebook.ErrNoDocumentOpen:   "no note open",
		notebook.ErrInvalidName:      "invalid name",
		notebook.ErrInvalidSelection: "not allowed here",
		notebook.ErrNoRoot:           "no storage directory",
		notebook.ErrIO:               "filesystem error",
	}
	for err, want := range cases {
		wrapped := fmt.Errorf("op: %w", err)
		if got := describeError(wrapped); got != want {
			t.Fatalf("describeError(%v) = %q, want %q", err, got, want)
		}
	}
	if got := describeError(errors.New("boom")); got != "boom" {
		t.Fatalf("expected unknown errors verbatim, got %q", got)
	}
}

func TestContainsControlRunes(t *testing.T) {
	if !containsControlRunes("\x1b[1;1R") {
		t.Fatal("expected escape sequence to be detected")
	}
	if containsControlRunes("hello\tworld\n") {
		t.Fatal("expected tabs and newlines to be allowed")
	}
}
