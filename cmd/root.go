package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SuperMag99/FootPrintX/internal/browser"
	"github.com/SuperMag99/FootPrintX/internal/clipboard"
	"github.com/SuperMag99/FootPrintX/internal/config"
	"github.com/SuperMag99/FootPrintX/internal/dork"
	"github.com/SuperMag99/FootPrintX/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by every command of one invocation.
type app struct {
	flagConfig  string
	flagVerbose bool

	cfg    *config.Config
	logger *zap.Logger

	copyFn func(string) error
	openFn func(string) error
}

func newApp() *app {
	return &app{
		logger: zap.NewNop(),
		copyFn: clipboard.Copy,
		openFn: browser.Open,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "footprintx",
		Short: "Passive OSINT dork generator",
		Long: `footprintx builds search-engine queries ("dorks") for passive OSINT lookups of
Instagram and X handles, people, LinkedIn profiles and email addresses.

Run without arguments for the interactive interface, or use a subcommand to
print dorks to stdout.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runTUI,
	}

	root.PersistentFlags().StringVar(&a.flagConfig, "config", "", "path to config file")
	root.PersistentFlags().BoolVarP(&a.flagVerbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		a.handleCmd("instagram <handle>", "Dorks for an Instagram username", dork.KindInstagram, "ig", "insta"),
		a.handleCmd("x <handle>", "Dorks for an X (Twitter) handle", dork.KindX, "twitter"),
		a.personCmd(),
		a.linkedinCmd(),
		a.emailCmd(),
		a.askCmd(),
		a.enginesCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.NewOrNop(logging.Options{
		Path:       cfg.LogPath(),
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Verbose:    a.flagVerbose,
	})
	a.logger.Debug("config loaded", zap.String("command", cmd.Name()), zap.Bool("ai", cfg.AIEnabled()))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "footprintx %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func Execute() {
	if err := newApp().rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
