package notebook

import (
	"errors"
	"fmt"
)

// Outcome classes surfaced to the UI. Callers classify with errors.Is; none
// of them leave the notebook unusable.
var (
	// ErrIO matches every *IOError.
	ErrIO = errors.New("filesystem operation failed")
	// ErrUnsupported is returned when opening a file whose extension is not
	// in SupportedExtensions.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrAlreadyExists is returned by create operations on a name collision.
	ErrAlreadyExists = errors.New("entry already exists")
	// ErrNoDocumentOpen is returned by save and edit with no open document.
	ErrNoDocumentOpen = errors.New("no document open")
	// ErrInvalidSelection is returned when an operation targets the wrong
	// kind of node (or no node at all).
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrInvalidName rejects proposed entry names that are empty, contain a
	// path separator, or are "." / "..".
	ErrInvalidName = errors.New("invalid name")
	// ErrNoRoot is returned by tree operations before a root is selected.
	ErrNoRoot = errors.New("no storage directory selected")
	// ErrNotRemembered is returned by SelectRoot when the switch succeeded
	// but the preference store could not record it.
	ErrNotRemembered = errors.New("storage directory not remembered")
)

// IOError records a failed filesystem operation on a single path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports ErrIO so callers need not type-assert.
func (e *IOError) Is(target error) bool { return target == ErrIO }

func ioError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
