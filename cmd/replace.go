package cmd

import (
	"github.com/mouse-blink/logtag/internal/domain"
	m "github.com/mouse-blink/logtag/internal/model"
	"github.com/spf13/cobra"
)

var replaceRegexpFlag bool

// replaceCmd represents the replace command.
var replaceCmd = newReplaceCmd()

const replaceLongDescription = `Replace OLD with NEW in every source file under DIR, for example to switch
a service address before a release build.

OLD is literal text unless --regexp is given, in which case NEW may refer
to capture groups as ${1}. Refused while DIR holds staged originals.`

func newReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace DIR OLD NEW",
		Short: "Find and replace text across source files",
		Long:  replaceLongDescription,
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := options(false)
			if err != nil {
				return err
			}

			return workflow.Replace(domain.ReplaceArgs{
				Options: opts,
				Dir:     m.Path(args[0]),
				Old:     args[1],
				New:     args[2],
				Regexp:  replaceRegexpFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&replaceRegexpFlag, "regexp", "r", false, "treat OLD as a regular expression")

	return cmd
}

func init() {
	rootCmd.AddCommand(replaceCmd)
}
