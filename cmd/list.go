package cmd

import (
	"github.com/mouse-blink/logtag/internal/domain"
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string
var listParallelFlag int

const listLongDescription = `List the source files that hold log calls, with the number of call sites
"logtag build" would tag in each. Nothing is written.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [roots...]",
		Short: "List files and log call site counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(false, listExcludeFlags...)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Options: opts,
				Roots:   parseRoots(args),
				Threads: listParallelFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 4, "number of files read in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
