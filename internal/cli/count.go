package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treykane/skrib/internal/notebook"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count FILE...",
		Short: "Count the words in notes",
		Long: `Count the words in one or more notes the same way the UI footer does:
line-break tags split words, other tags are dropped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			total := 0
			for _, path := range args {
				content, err := notebook.Load(path)
				if err != nil {
					return fmt.Errorf("count %s: %w", path, err)
				}
				n := notebook.WordCount(content)
				total += n
				fmt.Fprintf(out, "%s: %s\n", path, notebook.WordCountLabel(n))
			}
			if len(args) > 1 {
				fmt.Fprintf(out, "total: %s\n", notebook.WordCountLabel(total))
			}
			return nil
		},
	}
}
