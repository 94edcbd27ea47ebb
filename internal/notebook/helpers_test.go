package notebook

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// captureLogOutput swaps the package logger while fn runs.
func captureLogOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	old := log
	log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	defer func() { log = old }()
	fn()
	return buf.String()
}

// openNotebook selects root without preferences.
func openNotebook(t *testing.T, root string) *Notebook {
	t.Helper()
	nb := New(nil)
	require.NoError(t, nb.SelectRoot(root))
	return nb
}

// lookup fetches the node at rel, failing the test when it is missing.
func lookup(t *testing.T, nb *Notebook, rel string) *Node {
	t.Helper()
	n := nb.Tree().Lookup(filepath.FromSlash(rel))
	require.NotNil(t, n, "expected %q in tree", rel)
	return n
}

// nodeSet returns the relative paths of every non-root node.
func nodeSet(tree *Tree) map[string]Kind {
	out := map[string]Kind{}
	tree.Walk(func(n *Node) bool {
		if !n.IsRoot() {
			out[RelPath(n)] = n.Kind()
		}
		return true
	})
	return out
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Getuid() == 0 {
		t.Skip("cannot test permission errors as root")
	}
}
