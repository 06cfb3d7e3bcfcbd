// Package cli implements the courses-config command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/handiism/courses-manager/internal/config"
	xlog "github.com/handiism/courses-manager/internal/log"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	dir        string
	configPath string
	logLevel   string
}

func (o *options) store() *config.Store {
	return config.NewStore(o.dir)
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "courses-config",
		Short:   "Inspect and edit courses-manager configuration files",
		Version: version,
		Long: `Inspect and edit courses-manager configuration files.

Without --config, the first courses_manager_config_*.json file in the
working directory is used. When none exists a default file is created.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			xlog.Configure(xlog.Config{
				Level:  opts.logLevel,
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", "", "working directory to search for config files (default: current directory)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $LOG_LEVEL or warn")

	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newLocateCmd(opts))
	rootCmd.AddCommand(newSetCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newEditCmd(opts))

	return rootCmd
}
