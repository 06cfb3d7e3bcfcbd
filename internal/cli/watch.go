package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/courses-manager/internal/config"
)

// newWatchCmd creates the watch command
func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the configuration every time its file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := opts.store()
			cfg, source, err := store.Resolve(opts.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printConfig(out, "table", newConfigView(source, cfg)); err != nil {
				return err
			}

			return store.Watch(cmd.Context(), source, func(cfg *config.Configuration, err error) {
				fmt.Fprintln(out)
				if err != nil {
					fmt.Fprintf(out, "%s %v\n", invalidStyle.Render("✗"), err)
					return
				}
				_ = printConfig(out, "table", newConfigView(source, cfg))
			})
		},
	}
}
