// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the shared
// configuration/logging bootstrap for every subcommand.

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/passbuilder/buildvars"
	"github.com/toeirei/passbuilder/internal/config"
	"github.com/toeirei/passbuilder/internal/i18n"
	"github.com/toeirei/passbuilder/internal/logging"
	"github.com/toeirei/passbuilder/internal/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app carries what the commands of one root command share.
type app struct {
	cfg     config.Config
	cfgFile string
	verbose bool

	// rand feeds suggestion suffixes; nil means crypto/rand.
	rand io.Reader
	// writeClipboard is clipboard.WriteAll outside tests.
	writeClipboard func(string) error
	// runTUI starts the interactive screen.
	runTUI func(tui.Options) error
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, _, err = config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.Setup(cmd.ErrOrStderr(), a.cfg.Log.Level); err != nil {
		return err
	}
	if a.verbose {
		logging.SetDebug(true)
	}
	if err := i18n.Init(); err != nil {
		return fmt.Errorf("load messages: %w", err)
	}
	logging.Debugf("config resolved: log.level=%s output=%s copy=%t", a.cfg.Log.Level, a.cfg.Output, a.cfg.Copy)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// getConfigPathFromCli returns the --config path when the user set one.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		writeClipboard: clipboard.WriteAll,
		runTUI:         tui.Run,
	})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passbuilder",
		Short: "Passbuilder turns a memorable phrase into a password suggestion.",
		Long: `Passbuilder checks a passphrase against three requirements:
six or more words, at least one number word (zero to ten), and no
repeated words. When all three hold it derives a password from the
initials of the phrase, swaps the first number word for its digits,
alternates the case and adds a random symbol and digit.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, _ := resolveBuildVersion(nil)
			return a.runTUI(tui.Options{
				ShowPlaybook: a.cfg.TUI.ShowPlaybook,
				Rand:         a.rand,
				Version:      v,
			})
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-level", "info", `Log level ("debug", "info", "warn", "error")`)
	cmd.PersistentFlags().StringP("output", "o", "text", `Output format ("text", "json", "yaml")`)

	cmd.AddCommand(
		newCheckCmd(a),
		newSuggestCmd(a),
		newPlaybookCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/passbuilder" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
