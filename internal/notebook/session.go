package notebook

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CloseDecision is the outcome of RequestClose.
type CloseDecision int

const (
	// NoChanges means the editor matches disk; the session is already closed.
	NoChanges CloseDecision = iota
	// UnsavedChanges means the caller must pick a CloseChoice.
	UnsavedChanges
)

func (d CloseDecision) String() string {
	if d == UnsavedChanges {
		return "unsaved changes"
	}
	return "no changes"
}

// CloseChoice answers an UnsavedChanges prompt.
type CloseChoice int

const (
	SaveAndClose CloseChoice = iota
	DiscardAndClose
	CancelClose
)

// Session tracks the open document. It is either closed, or open on a path
// with a dirty flag that is set by every edit and cleared by a successful
// save. Autosave survives open/close cycles.
type Session struct {
	open     bool
	path     string
	content  string // editor content as last reported by Open or Edit
	dirty    bool
	autosave bool
}

// NewSession returns a closed session.
func NewSession() *Session {
	return &Session{}
}

func (s *Session) IsOpen() bool { return s.open }

// Path returns the open document's path, or "" when closed.
func (s *Session) Path() string { return s.path }

// Content returns the last editor content the session was told about.
func (s *Session) Content() string { return s.content }

// Dirty reports whether edits happened since the last save. It is a hint;
// RequestClose compares against disk.
func (s *Session) Dirty() bool { return s.dirty }

func (s *Session) Autosave() bool { return s.autosave }

// SetAutosave toggles autosave. It takes effect on the next edit.
func (s *Session) SetAutosave(on bool) { s.autosave = on }

// Open loads path and makes it the open document with a clean state. On
// failure the session is left exactly as it was.
func (s *Session) Open(path string) (string, error) {
	content, err := Load(path)
	if err != nil {
		return "", err
	}
	s.open = true
	s.path = path
	s.content = content
	s.dirty = false
	return content, nil
}

// Edit records new editor content and marks the session dirty. With
// autosave on, the content is persisted straight away; a failed autosave
// keeps the dirty flag and is retried by the next edit.
func (s *Session) Edit(content string) error {
	if !s.open {
		return ErrNoDocumentOpen
	}
	s.content = content
	s.dirty = true
	if !s.autosave {
		return nil
	}
	if err := s.persist(); err != nil {
		log.Warn("autosave failed", "path", s.path, "error", err)
		return fmt.Errorf("autosave: %w", err)
	}
	return nil
}

// Save persists the editor content when dirty; a clean session is a no-op.
func (s *Session) Save() error {
	if !s.open {
		return ErrNoDocumentOpen
	}
	if !s.dirty {
		return nil
	}
	return s.persist()
}

func (s *Session) persist() error {
	if err := Save(s.path, s.content); err != nil {
		log.Error("save document", "path", s.path, "error", err)
		return err
	}
	s.dirty = false
	return nil
}

// RequestClose re-reads the document from disk and compares it byte for byte
// with the editor content. A match closes the session and yields NoChanges.
// A mismatch, or a failed re-read, yields UnsavedChanges and keeps the
// session open for ResolveClose.
func (s *Session) RequestClose() (CloseDecision, error) {
	if !s.open {
		return NoChanges, ErrNoDocumentOpen
	}
	onDisk, err := Load(s.path)
	if err != nil {
		log.Warn("re-read before close", "path", s.path, "error", err)
		return UnsavedChanges, nil
	}
	if onDisk != s.content {
		return UnsavedChanges, nil
	}
	s.Clear()
	return NoChanges, nil
}

// ResolveClose applies the caller's answer to an UnsavedChanges prompt.
// SaveAndClose writes unconditionally, since the prompt may stem from the
// disk comparison alone; if that write fails the session stays open.
func (s *Session) ResolveClose(choice CloseChoice) error {
	if !s.open {
		return ErrNoDocumentOpen
	}
	switch choice {
	case SaveAndClose:
		if err := s.persist(); err != nil {
			return err
		}
		s.Clear()
	case DiscardAndClose:
		s.Clear()
	case CancelClose:
	}
	return nil
}

// Clear closes the session without touching disk.
func (s *Session) Clear() {
	s.open = false
	s.path = ""
	s.content = ""
	s.dirty = false
}

// within reports whether the open document is path or lies beneath it.
func (s *Session) within(path string) bool {
	if !s.open {
		return false
	}
	open := filepath.Clean(s.path)
	path = filepath.Clean(path)
	return open == path || strings.HasPrefix(open, path+string(filepath.Separator))
}
