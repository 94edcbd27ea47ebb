package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treykane/skrib/internal/config"
	"github.com/treykane/skrib/internal/notebook"
)

func newRootDirCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "root [DIR]",
		Short: "Show or set the storage directory",
		Long: `Without arguments, print the remembered storage directory.
With DIR, check that it is a directory and remember it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				dir, err := store.StorageDirectory()
				if errors.Is(err, config.ErrNotConfigured) {
					return errors.New("no storage directory set; run: skrib root DIR")
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, dir)
				return nil
			}

			dir, err := config.NormalizeDir(args[0])
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}
			nb := notebook.New(store)
			if err := nb.SelectRoot(dir); err != nil {
				return fmt.Errorf("set storage directory: %w", err)
			}
			fmt.Fprintf(out, "storage directory set to %s\n", nb.RootDir())
			return nil
		},
	}
}
