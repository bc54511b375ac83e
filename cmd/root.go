// Package cmd provides the root command and CLI setup for navmend.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"navmend.dev/pkg/navmend/internal/adapter"
	"navmend.dev/pkg/navmend/internal/controller"
	"navmend.dev/pkg/navmend/internal/domain"
	m "navmend.dev/pkg/navmend/internal/model"
)

var fsAdapter adapter.SourceFSAdapter

// newWorkflow builds the workflow for a command; tests replace it.
var newWorkflow = defaultWorkflow

var excludeFlag []string
var logFileFlag string
var verboseFlag bool
var noTUIFlag bool

var parallelFlag int
var dryRunFlag bool
var backupDirFlag string

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
}

const pathsHelp = `Each path is a directory scanned recursively for .html files.
Without paths the current directory is used. Directories whose name matches
an exclusion entry exactly are never entered, so "backups" does not skip
"backups2024". The defaults are:
  backups, backupsbeforemobile, __pycache__, .git`

const rootLongDescription = `navmend rewrites the top navigation block of every HTML page in a site tree.

The region between <nav id="topnav"> and the next </nav> is replaced with the
navigation template. Links of the template are prefixed with "../" once per
directory level so that every page points back at the site root.

` + pathsHelp

const listLongDescription = `List the HTML files that would be processed, with their depth and
whether a navigation block was found.

` + pathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "navmend [paths...]",
		Short:        "Rewrite the top navigation of a static HTML site",
		Long:         rootLongDescription,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newWorkflow(cmd).Update(cmd.Context(), domain.UpdateArgs{
				DiscoverArgs: discoverArgs(args),
				Nav:          navArgs(),
				Parallel:     viper.GetInt(runParallelConfigKey),
				DryRun:       viper.GetBool(runDryRunConfigKey),
				BackupDir:    m.Path(viper.GetString(runBackupDirConfigKey)),
			})

			return err
		},
	}

	configureRootFlags(cmd)
	configureUpdateFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludeFlag, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exact directory name to skip (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().BoolVar(&noTUIFlag, noTUIFlagName, false, "print plain lines instead of the interactive progress view")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noTUIFlagName), noTUIFlagName)
}

func configureUpdateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files processed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), runParallelConfigKey)

	cmd.Flags().BoolVarP(&dryRunFlag, dryRunFlagName, "n", viper.GetBool(runDryRunConfigKey), "show a diff for each file instead of writing it")
	bindFlagToConfig(cmd.Flags().Lookup(dryRunFlagName), runDryRunConfigKey)

	cmd.Flags().StringVar(&backupDirFlag, backupDirFlagName, viper.GetString(runBackupDirConfigKey), "copy originals into this directory before writing")
	bindFlagToConfig(cmd.Flags().Lookup(backupDirFlagName), runBackupDirConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func defaultWorkflow(cmd *cobra.Command) domain.Workflow {
	interactive := !viper.GetBool(noTUIFlagName) && controller.IsTTY(os.Stdout)

	return domain.NewWorkflow(fsAdapter, controller.NewUI(cmd, interactive))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func discoverArgs(args []string) domain.DiscoverArgs {
	return domain.DiscoverArgs{
		Paths:   parsePaths(args),
		Exclude: excludeList(),
	}
}

// excludeList merges the built-in exclusions with the configured ones.
func excludeList() []string {
	exclude := append([]string{}, domain.DefaultExclude...)

	for _, name := range viper.GetStringSlice(excludeConfigKey) {
		if name != "" {
			exclude = append(exclude, name)
		}
	}

	return exclude
}

func navArgs() domain.NavArgs {
	return domain.NavArgs{
		TemplateFile: m.Path(viper.GetString(navTemplateFileConfigKey)),
		Links:        domain.LinkTable(viper.GetStringSlice(navLinksConfigKey)),
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
