package cmd

import (
	"github.com/mouse-blink/logtag/internal/domain"
	"github.com/spf13/cobra"
)

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

const statusLongDescription = `Report staged originals left on disk. A staged file means a tag or build
was interrupted before it could restore; "logtag restore" recovers it.

Exits non-zero when any staged file is found.`

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [roots...]",
		Short: "Check roots for leftover staged files",
		Long:  statusLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := options(false)
			if err != nil {
				return err
			}

			return workflow.Status(domain.StatusArgs{Options: opts, Roots: parseRoots(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
