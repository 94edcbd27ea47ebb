package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/treykane/skrib/internal/notebook"
)

// treeEntry is the serialized form of a node.
type treeEntry struct {
	Name     string       `json:"name" yaml:"name"`
	Kind     string       `json:"kind" yaml:"kind"`
	Path     string       `json:"path,omitempty" yaml:"path,omitempty"`
	Children []*treeEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

func newTreeCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the storage directory tree",
		Long: `Print the storage directory as skrib mirrors it.

Examples:
  skrib tree                    # indented text
  skrib tree --format json      # nested JSON
  skrib tree --root ~/notes --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}
			dir, err := flags.storageDir(store)
			if err != nil {
				return fmt.Errorf("resolve storage directory: %w", err)
			}
			nb := notebook.New(nil)
			if err := nb.SelectRoot(dir); err != nil {
				return fmt.Errorf("open storage directory: %w", err)
			}
			return writeTree(cmd.OutOrStdout(), nb.Tree(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func writeTree(w io.Writer, tree *notebook.Tree, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		return writeTreeText(w, tree)
	case "json":
		data, err := json.MarshalIndent(toEntry(tree.Root()), "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toEntry(tree.Root())); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

func writeTreeText(w io.Writer, tree *notebook.Tree) error {
	var b strings.Builder
	tree.Walk(func(n *notebook.Node) bool {
		depth := 0
		for p := n.Parent(); p != nil; p = p.Parent() {
			depth++
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Name())
		if n.IsDir() {
			b.WriteByte('/')
		}
		b.WriteByte('\n')
		return true
	})
	_, err := io.WriteString(w, b.String())
	return err
}

func toEntry(n *notebook.Node) *treeEntry {
	e := &treeEntry{
		Name: n.Name(),
		Kind: n.Kind().String(),
		Path: filepath.ToSlash(notebook.RelPath(n)),
	}
	for _, child := range n.Children() {
		e.Children = append(e.Children, toEntry(child))
	}
	return e
}
