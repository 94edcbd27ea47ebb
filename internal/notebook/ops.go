// ops.go implements the structural mutations. Each follows the same steps:
//
//  1. Validate the target node and the proposed name without touching disk.
//  2. Perform the filesystem operation.
//  3. Patch the tree in place (no re-scan) and close the session if the
//     open document was removed.
//
// A failure in step 2 leaves the tree untouched.

package notebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CreateFile creates an empty document named proposed inside parent, which
// must be a directory node (the root included). Names without a supported
// extension get DefaultExtension appended; supported ones keep their case.
func (nb *Notebook) CreateFile(parent *Node, proposed string) (*Node, error) {
	name, err := normalizeName(proposed)
	if err != nil {
		return nil, err
	}
	if !IsSupported(name) {
		name += DefaultExtension
	}
	return nb.create(parent, name, KindFile)
}

// CreateDirectory creates the directory name inside parent.
func (nb *Notebook) CreateDirectory(parent *Node, name string) (*Node, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return nb.create(parent, name, KindDirectory)
}

func (nb *Notebook) create(parent *Node, name string, kind Kind) (*Node, error) {
	if err := nb.checkNode(parent); err != nil {
		return nil, err
	}
	if !parent.IsDir() {
		return nil, fmt.Errorf("%w: new entries need a directory, %s is a file", ErrInvalidSelection, parent.Name())
	}

	path := filepath.Join(nb.tree.Resolve(parent), name)
	if _, err := os.Lstat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, ioError("stat", path, err)
	}

	var err error
	if kind == KindDirectory {
		err = os.Mkdir(path, DirPermission)
	} else {
		var f *os.File
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePermission)
		if err == nil {
			err = f.Close()
		}
	}
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}
	if err != nil {
		return nil, ioError("create", path, err)
	}

	log.Info("created entry", "path", path, "kind", kind.String())
	return nb.tree.AddChild(parent, name, kind), nil
}

// normalizeName trims and NFC-normalizes a proposed entry name and rejects
// names that would not stay a single path element.
func normalizeName(proposed string) (string, error) {
	name := norm.NFC.String(strings.TrimSpace(proposed))
	switch {
	case name == "", name == ".", name == "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidName, proposed)
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return "", fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, proposed)
	}
	return name, nil
}

// DeleteFile removes the file node n from disk and from the tree. Deleting
// the open document closes the session.
func (nb *Notebook) DeleteFile(n *Node) error {
	if err := nb.checkNode(n); err != nil {
		return err
	}
	if n.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidSelection, n.Name())
	}

	path := nb.tree.Resolve(n)
	if err := os.Remove(path); err != nil {
		return ioError("delete", path, err)
	}
	nb.tree.RemoveChild(n.parent, n)
	if nb.session.within(path) {
		nb.session.Clear()
	}
	log.Info("deleted file", "path", path)
	return nil
}

// DeleteDirectory removes the directory node n and everything below it,
// children before parents. The first failure stops the walk and is returned
// with the tree untouched, even though some entries may already be gone
// from disk; the next Rebuild reconciles the two.
func (nb *Notebook) DeleteDirectory(n *Node) error {
	if err := nb.checkNode(n); err != nil {
		return err
	}
	if !n.IsDir() {
		return fmt.Errorf("%w: %s is a file", ErrInvalidSelection, n.Name())
	}
	if n.IsRoot() {
		return fmt.Errorf("%w: cannot delete the storage directory itself", ErrInvalidSelection)
	}

	path := nb.tree.Resolve(n)
	if err := removeTree(path); err != nil {
		log.Error("delete directory", "path", path, "error", err)
		return err
	}
	nb.tree.RemoveChild(n.parent, n)
	if nb.session.within(path) {
		nb.session.Clear()
	}
	log.Info("deleted directory", "path", path)
	return nil
}

// removeTree deletes path post-order. Symlinks are removed, not followed.
func removeTree(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return ioError("stat", path, err)
	}
	if info.IsDir() {
		f, err := os.Open(path)
		if err != nil {
			return ioError("open", path, err)
		}
		entries, err := f.ReadDir(-1)
		f.Close()
		if err != nil {
			return ioError("read", path, err)
		}
		for _, entry := range entries {
			if err := removeTree(filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}
	}
	if err := os.Remove(path); err != nil {
		return ioError("delete", path, err)
	}
	return nil
}
