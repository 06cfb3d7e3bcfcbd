package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/courses-manager/internal/config"
	xlog "github.com/handiism/courses-manager/internal/log"
	"github.com/handiism/courses-manager/internal/tui"
)

// newEditCmd creates the edit command
func newEditCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			requested := opts.logLevel
			if requested == "" {
				requested = os.Getenv("LOG_LEVEL")
			}
			logger := xlog.New(xlog.Config{
				Level:  tui.LogLevel(requested),
				Output: cmd.ErrOrStderr(),
			}).With().Str("component", "config").Logger()

			store := config.NewStore(opts.dir, config.WithLogger(logger))
			return tui.Run(store, opts.configPath)
		},
	}
}
