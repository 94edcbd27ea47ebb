// Package cli wires the skrib command tree. Running skrib with no
// subcommand starts the terminal UI; the subcommands work on the same
// storage directory without it.
package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treykane/skrib/internal/app"
	"github.com/treykane/skrib/internal/config"
	"github.com/treykane/skrib/internal/logging"
	"github.com/treykane/skrib/internal/notebook"
)

var log = logging.New("cli")

// startUI runs the Bubble Tea program until the user quits.
var startUI = func(opts app.Options) error {
	m, err := app.New(opts)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// globalFlags are shared by every command.
type globalFlags struct {
	root       string
	configPath string
}

func (g *globalFlags) openStore() (*config.Store, error) {
	if g.configPath != "" {
		return config.OpenAt(g.configPath)
	}
	return config.Open()
}

// storageDir returns --root when given, otherwise the stored directory.
func (g *globalFlags) storageDir(store *config.Store) (string, error) {
	if g.root != "" {
		return config.NormalizeDir(g.root)
	}
	return store.StorageDirectory()
}

// NewRootCmd builds the skrib command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var autosave bool

	cmd := &cobra.Command{
		Use:   "skrib",
		Short: "Browse and edit a directory of HTML and text notes",
		Long: `skrib mirrors a storage directory as a tree and edits the notes in it.

Run without a subcommand to open the terminal UI. Notes are .html, .htm or
.txt files; new notes get .html unless another supported extension is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(flags, autosave)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.root, "root", "r", "", "storage directory to use (remembered by the UI)")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.skrib/config.yaml)")
	cmd.Flags().BoolVarP(&autosave, "autosave", "a", false, "save every edit immediately for this run")

	cmd.AddCommand(
		newTreeCmd(flags),
		newCountCmd(),
		newRootDirCmd(flags),
	)
	return cmd
}

func runUI(flags *globalFlags, autosave bool) error {
	store, err := flags.openStore()
	if err != nil {
		return err
	}

	nb := notebook.New(store)
	status := ""
	if flags.root != "" {
		if err := nb.SelectRoot(flags.root); err != nil {
			if !errors.Is(err, notebook.ErrNotRemembered) {
				return fmt.Errorf("open storage directory: %w", err)
			}
			log.Warn("storage directory not remembered", "path", nb.RootDir(), "error", err)
			status = "Opened " + nb.RootDir() + " (choice not remembered)"
		}
	} else if err := nb.Restore(); err != nil {
		switch {
		case errors.Is(err, config.ErrNotConfigured):
		case errors.Is(err, config.ErrStaleDirectory):
			status = "Stored directory is no longer available: choose another"
		default:
			log.Warn("restore storage directory", "error", err)
			status = "Cannot open stored directory: choose another"
		}
	}

	return startUI(app.Options{
		Notebook: nb,
		Prefs:    store,
		Watch:    true,
		Autosave: autosave,
		Status:   status,
	})
}
