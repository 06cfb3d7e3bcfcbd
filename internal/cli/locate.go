package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/courses-manager/internal/config"
)

// ErrNoConfigFile is returned by locate when the directory holds no config file.
var ErrNoConfigFile = errors.New("no config file found")

// newLocateCmd creates the locate command
func newLocateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Print the config file that would be used without --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, found, err := opts.store().FindAlternative()
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w matching %s", ErrNoConfigFile, config.FilePattern)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
