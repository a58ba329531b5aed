package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pushrelease/internal/app"
	"github.com/zjrosen/pushrelease/internal/presentation"
	"github.com/zjrosen/pushrelease/internal/release"
)

// pushCommand describes one of the push aliases.
type pushCommand struct {
	use   string
	short string
	mode  release.Mode
	// maxArgs is the number of positional arguments accepted.
	maxArgs int
}

var pushCommands = []pushCommand{
	{
		use:     "push [increment[:mode]]",
		short:   "Bump, commit, tag and push a release",
		maxArgs: 2,
	},
	{
		use:     "push-only [increment]",
		short:   "Only bump the version",
		mode:    release.ModeBumpOnly,
		maxArgs: 1,
	},
	{
		use:   "push-commit",
		short: "Commit, tag and push without bumping the version",
		mode:  release.ModeCommitOnly,
	},
	{
		use:     "push-release [increment]",
		short:   "Bump, commit, tag, push and publish to npm",
		mode:    release.ModePushRelease,
		maxArgs: 1,
	},
	{
		use:     "push-publish [increment]",
		short:   "Only publish the current version to npm",
		mode:    release.ModePushPublish,
		maxArgs: 1,
	},
}

func init() {
	for _, pc := range pushCommands {
		rootCmd.AddCommand(newPushCmd(pc))
	}
}

func newPushCmd(pc pushCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   pc.use,
		Short: pc.short,
		Long: pc.short + `.

The increment is one of major, minor, patch (default) or git. "git" takes the
version from "git describe" instead of incrementing it.`,
		Args: cobra.MaximumNArgs(pc.maxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd, taskArgs(args, pc.mode))
		},
	}

	cmd.Flags().Bool("dry-run", false, "show file diffs and commands without changing anything")
	cmd.Flags().Bool("strict", false, "treat warnings as errors")
	cmd.Flags().StringSlice("files", nil, "files to bump (overrides release.files)")
	cmd.Flags().String("push-to", "", "remote to push to (overrides release.push_to)")
	cmd.Flags().StringSlice("release-branch", nil, "branches releases are expected from")
	cmd.Flags().BoolP("verbose", "v", false, "print diffs and skipped commands")
	cmd.Flags().Bool("json", false, "print a JSON summary on stdout, progress goes to stderr")
	return cmd
}

// taskArgs joins positional arguments into the "<increment>:<mode>" form.
// A fixed mode replaces any mode given on the command line.
func taskArgs(args []string, mode release.Mode) string {
	joined := strings.Join(args, ":")
	if mode == release.ModeFull {
		return joined
	}
	kind, _, _ := strings.Cut(joined, ":")
	return kind + ":" + string(mode)
}

func runPush(cmd *cobra.Command, args string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	asJSON, _ := cmd.Flags().GetBool("json")

	out := cmd.OutOrStdout()
	if asJSON {
		out = cmd.ErrOrStderr()
	}

	state, err := app.Run(cmd.Context(), app.Params{
		ConfigFile: cfgFile,
		Flags:      cmd.Flags(),
		TaskArgs:   args,
		Verbose:    verbose,
		Version:    version,
		Out:        out,
		ErrOut:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	if asJSON {
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatSummary(presentation.FromState(state))
	}
	return nil
}
