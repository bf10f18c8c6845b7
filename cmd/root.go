// Package cmd provides the root command and CLI setup for logtag.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/logtag/internal/adapter"
	"github.com/mouse-blink/logtag/internal/config"
	"github.com/mouse-blink/logtag/internal/controller"
	"github.com/mouse-blink/logtag/internal/domain"
	m "github.com/mouse-blink/logtag/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fsAdapter adapter.SourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var compilerAdapter adapter.CompilerAdapter
var scanner domain.Scanner
var tagger domain.Tagger
var restorer domain.Restorer
var orchestrator domain.Orchestrator
var replacer domain.Replacer
var workflow domain.Workflow
var ui controller.UI

var logLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
var logger = newLogger(logLevel)

// cfg is loaded before every command runs.
var cfg = config.Default()

func init() {
	ui = controller.NewUI(os.Stdout, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	compilerAdapter = adapter.NewLocalCompilerAdapter()
	scanner = domain.NewScanner(fsAdapter, logger)
	tagger = domain.NewTagger(fsAdapter, goFileAdapter, logger)
	restorer = domain.NewRestorer(fsAdapter, scanner, logger)
	orchestrator = domain.NewOrchestrator(fsAdapter, compilerAdapter, scanner, tagger, restorer, logger)
	replacer = domain.NewReplacer(fsAdapter, scanner, logger)
	workflow = domain.NewWorkflow(
		ui,
		scanner,
		tagger,
		orchestrator,
		replacer,
		logger,
	)
}

var configFlag string
var verboseFlag bool
var extFlag string
var markerFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `logtag instruments logging calls with the file and line they were made
from, runs a build, and puts the source trees back exactly as they were.

Every call to Error("...), Debug("...), Info("...) or Warning("...) gets
"[file.go:LINE]," injected at the start of its message. Originals are kept
next to the source as staged copies (main.go -> main.goo) until restore.

Roots accept Go-style patterns; scans are always recursive:
  - ./...          the current directory
  - ./pkg/...      the pkg directory
  - ./cmd ./pkg    several directories`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "logtag",
		Short:        "Tag log calls with their source location at build time",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verboseFlag {
				logLevel.SetLevel(zap.DebugLevel)
			}

			return loadConfig(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultFile, "path to the config file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&extFlag, "ext", m.DefaultLiveExt, "extension of the source files to tag")
	cmd.PersistentFlags().StringVar(&markerFlag, "marker", m.DefaultStagedMarker, "character appended to the extension of staged originals")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() { _ = logger.Sync() }()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(level zap.AtomicLevel) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	zapCfg.Encoding = "console"
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.DisableStacktrace = true

	l, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return l.Named("logtag")
}

// loadConfig reads the config file and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("ext") {
		loaded.LiveExt = extFlag
	}

	if cmd.Flags().Changed("marker") {
		loaded.StagedMarker = markerFlag
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger.Debug("config loaded", zap.String("path", configFlag), zap.Strings("roots", cfg.Roots))

	return nil
}

// options builds the domain options from the loaded config. extraExclude
// adds command-line patterns to the configured ones.
func options(verify bool, extraExclude ...string) (domain.Options, error) {
	ext, err := cfg.Extensions()
	if err != nil {
		return domain.Options{}, err
	}

	withExtra := *cfg
	withExtra.Exclude = append(append([]string(nil), cfg.Exclude...), extraExclude...)

	exclude, err := withExtra.ExcludePatterns()
	if err != nil {
		return domain.Options{}, err
	}

	return domain.Options{
		Extensions: ext,
		SkipDirs:   cfg.SkipDirs,
		Exclude:    exclude,
		Verify:     cfg.Verify || verify,
	}, nil
}

// parseRoots falls back to the configured roots when none are given.
func parseRoots(args []string) m.SourceTree {
	if len(args) == 0 {
		return cfg.Tree()
	}

	roots := make(m.SourceTree, 0, len(args))
	for _, arg := range args {
		roots = append(roots, m.Path(arg))
	}

	return roots
}

// signalContext is cancelled on SIGINT or SIGTERM so a running build can
// still restore the trees before exiting.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
