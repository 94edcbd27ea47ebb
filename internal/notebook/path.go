package notebook

import (
	"path/filepath"
	"strings"
)

// RelPath joins the names from the root's first descendant down to n with
// the platform separator. The synthetic root has an empty relative path.
// Names come verbatim from directory listings, so no cleaning is applied.
func RelPath(n *Node) string {
	if n == nil {
		return ""
	}
	var names []string
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, string(filepath.Separator))
}

// Resolve returns the absolute path of n under root.
func Resolve(root string, n *Node) string {
	return filepath.Join(root, RelPath(n))
}

// splitRel breaks a relative path into its names, ignoring empty segments.
func splitRel(rel string) []string {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" && p != "." {
			out = append(out, p)
		}
	}
	return out
}
