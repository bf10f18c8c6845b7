package cmd

import (
	"strings"

	"github.com/mouse-blink/logtag/internal/domain"
	m "github.com/mouse-blink/logtag/internal/model"
	"github.com/spf13/cobra"
)

var buildDirFlag string
var buildCommandFlag string
var buildVerifyFlag bool

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

const buildLongDescription = `Tag every log call under the given roots, run the build command, then
restore the roots. The restore runs whether the build succeeds, fails or is
interrupted.

The build command and the directory it runs in default to the config file
("go build -v" in "." when there is none).`

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [roots...]",
		Short: "Tag log calls, build, and restore",
		Long:  buildLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(buildVerifyFlag)
			if err != nil {
				return err
			}

			dir := cfg.Build.Dir
			if buildDirFlag != "" {
				dir = buildDirFlag
			}

			command := cfg.Build.Command
			if buildCommandFlag != "" {
				command = strings.Fields(buildCommandFlag)
			}

			ctx, stop := signalContext(cmd)
			defer stop()

			return workflow.Build(ctx, domain.BuildArgs{
				Options: opts,
				Roots:   parseRoots(args),
				Dir:     m.Path(dir),
				Command: command,
				Env:     cfg.BuildEnv(),
			})
		},
	}
	cmd.Flags().StringVarP(&buildDirFlag, "dir", "d", "", "directory the build command runs in")
	cmd.Flags().StringVar(&buildCommandFlag, "command", "", "build command, split on whitespace")
	cmd.Flags().BoolVar(&buildVerifyFlag, "verify", false, "check that tagged Go files still parse before building")

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
