package cmd

import (
	"github.com/mouse-blink/logtag/internal/domain"
	"github.com/spf13/cobra"
)

// restoreCmd represents the restore command.
var restoreCmd = newRestoreCmd()

const restoreLongDescription = `Put staged originals back in place of tagged files. Safe to run any
number of times; with nothing staged it does nothing.

Use it after "logtag tag", or to recover a tree left tagged by an
interrupted build.`

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore [roots...]",
		Short: "Restore tagged trees",
		Long:  restoreLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(false)
			if err != nil {
				return err
			}

			// trap interrupts so a restore is never cut short
			_, stop := signalContext(cmd)
			defer stop()

			return workflow.Restore(domain.RestoreArgs{Options: opts, Roots: parseRoots(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
