package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pushrelease/internal/ui/console"
	"github.com/zjrosen/pushrelease/internal/ui/styles"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "pushrelease",
	Short: "Bump the version, commit, tag, push and publish a release",
	Long: `Automates a release: increments the semantic version in your manifest files,
mirrors it into named config entries, commits, tags and pushes with git, and
optionally publishes to npm.

Examples:
  pushrelease push               # patch release
  pushrelease push minor         # minor release
  pushrelease push git           # use "git describe" as the version
  pushrelease push-only major    # only bump the version
  pushrelease push-commit        # commit, tag and push the current version
  pushrelease push --dry-run -v  # show what would happen`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			styles.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .pushrelease.yaml, then ~/.config/pushrelease/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs to PUSHRELEASE_LOG (default: ~/.config/pushrelease/debug.log)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")
}

// Execute runs the root command. SIGINT and SIGTERM cancel the running
// release, which kills any git or npm child process.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		console.New(os.Stdout, os.Stderr, false).Error(err)
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
