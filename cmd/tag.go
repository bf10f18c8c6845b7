package cmd

import (
	"github.com/mouse-blink/logtag/internal/domain"
	"github.com/spf13/cobra"
)

var tagVerifyFlag bool

// tagCmd represents the tag command.
var tagCmd = newTagCmd()

const tagLongDescription = `Tag every log call under the given roots and leave them tagged. Run
"logtag restore" with the same roots to undo it.

A tree that still holds staged originals is refused. If tagging fails part
way, the files tagged so far are restored.`

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag [roots...]",
		Short: "Tag log calls without building",
		Long:  tagLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(tagVerifyFlag)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd)
			defer stop()

			return workflow.Tag(ctx, domain.TagArgs{Options: opts, Roots: parseRoots(args)})
		},
	}
	cmd.Flags().BoolVar(&tagVerifyFlag, "verify", false, "check that tagged Go files still parse")

	return cmd
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
