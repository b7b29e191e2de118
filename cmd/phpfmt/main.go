// Command phpfmt formats PHP source files, grounded on MacroPower-x's cmd/magicschema/main.go
// (a cobra.Command with RunE, SilenceErrors/SilenceUsage, and a Config.RegisterFlags(flags)
// call) and on the teacher module's cmd/dotx/main.go subcommand dispatch (fmt/inspect/lsp/watch
// here narrowed to fmt/check, since the PHP lexer/parser, LSP, and watch subsystems are external
// collaborators outside this module's scope; see spec.md §1).
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/teleivo/phpfmt/config"
	"github.com/teleivo/phpfmt/formatter"
	"github.com/teleivo/phpfmt/internal/drive"
	"github.com/teleivo/phpfmt/internal/log"
	"github.com/teleivo/phpfmt/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, err := config.Load("")
	if err != nil {
		// Load("") never reads a file, so this can only fail if formatter.DefaultSettings()
		// itself were invalid; fail loudly rather than silently run with a broken Config.
		panic(err)
	}

	var configPath, logLevel, logFormat string

	root := &cobra.Command{
		Use:           "phpfmt",
		Short:         "phpfmt formats PHP source code",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version.Version(),
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a phpfmt YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "logfmt", "log format: logfmt, json")

	fmtCmd := &cobra.Command{
		Use:   "fmt [path]",
		Short: "Format PHP source read from stdin, a file, or a directory tree in place",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(configPath, cfg, cmd.Flags())
			if err != nil {
				return err
			}
			if err := setupLogging(logLevel, logFormat); err != nil {
				return err
			}
			return runFmt(args, os.Stdin, os.Stdout, settings)
		},
	}
	cfg.RegisterFlags(fmtCmd.Flags())

	checkCmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Report files that are not correctly formatted, like gofmt -l",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(configPath, cfg, cmd.Flags())
			if err != nil {
				return err
			}
			if err := setupLogging(logLevel, logFormat); err != nil {
				return err
			}
			return runCheck(args[0], os.Stdout, settings)
		},
	}
	cfg.RegisterFlags(checkCmd.Flags())

	root.AddCommand(fmtCmd, checkCmd)
	return root
}

// resolveSettings applies the CLI > file > built-in precedence config.Config establishes: base
// already holds CLI overrides bound directly to its Settings fields by RegisterFlags (cobra has
// parsed flags by the time a RunE runs). When --config names a file, its values fill in every
// field the user did NOT explicitly pass on the command line, identified via flags.Changed —
// without that check, a CLI flag left at its zero-looking default could never be told apart from
// one the user typed.
func resolveSettings(configPath string, base *config.Config, flags *pflag.FlagSet) (formatter.Settings, error) {
	if err := base.ResolveFlags(); err != nil {
		return formatter.Settings{}, err
	}
	if configPath == "" {
		return base.Settings, nil
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return formatter.Settings{}, err
	}

	settings := loaded.Settings
	if flags.Changed(base.Flags.PrintWidth) {
		settings.PrintWidth = base.Settings.PrintWidth
	}
	if flags.Changed(base.Flags.TabWidth) {
		settings.TabWidth = base.Settings.TabWidth
	}
	if flags.Changed(base.Flags.UseTabs) {
		settings.UseTabs = base.Settings.UseTabs
	}
	if flags.Changed(base.Flags.TrailingComma) {
		settings.TrailingComma = base.Settings.TrailingComma
	}
	if flags.Changed(base.Flags.BreakPromotedPropertiesList) {
		settings.BreakPromotedPropertiesList = base.Settings.BreakPromotedPropertiesList
	}
	if flags.Changed(base.Flags.MethodChainBreakingStyle) {
		settings.MethodChainBreakingStyle = base.Settings.MethodChainBreakingStyle
	}
	return settings, nil
}

func setupLogging(level, format string) error {
	handler, err := log.CreateHandlerWithStrings(os.Stderr, level, format)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func runFmt(args []string, stdin io.Reader, stdout io.Writer, settings formatter.Settings) error {
	parse := unimplementedParse

	if len(args) == 0 {
		return drive.Reader(stdin, stdout, parse, settings)
	}

	path := args[0]
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open path: %w", err)
	}
	if fi.IsDir() {
		return drive.Dir(path, parse, settings)
	}
	return drive.File(path, parse, settings)
}

func runCheck(path string, stdout io.Writer, settings formatter.Settings) error {
	changed, err := drive.Changed(path, unimplementedParse, settings)
	if err != nil {
		return err
	}
	if changed {
		_, err := fmt.Fprintln(stdout, path)
		return err
	}
	return nil
}
