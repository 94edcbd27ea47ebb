package notebook

import (
	"os"
	"strings"
)

// File system permissions
const (
	// DirPermission is the permission mode for newly created directories
	DirPermission = 0o755

	// FilePermission is the permission mode for newly created files
	FilePermission = 0o644
)

// DefaultExtension is appended to new file names that lack a supported one.
const DefaultExtension = ".html"

// SupportedExtensions lists the suffixes that can be opened, matched
// case-insensitively.
var SupportedExtensions = []string{".html", ".htm", ".txt"}

// IsSupported reports whether name ends with a supported extension.
func IsSupported(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range SupportedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Load reads the whole document at path. Unsupported names are rejected
// before touching disk, and directories are never loaded.
func Load(path string) (string, error) {
	if !IsSupported(path) {
		return "", ErrUnsupported
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", ioError("open", path, err)
	}
	if info.IsDir() {
		return "", ErrInvalidSelection
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", ioError("read", path, err)
	}
	return string(data), nil
}

// Save replaces the content of path. The write is not atomic: a crash
// mid-write can leave a truncated file.
func Save(path, content string) error {
	if err := os.WriteFile(path, []byte(content), FilePermission); err != nil {
		return ioError("write", path, err)
	}
	return nil
}
