package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInitCmd creates the init command
func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a new default config file",
		Long: `Write a new default config file with a random name to the working directory.

Existing config files are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := opts.store().CreateDefault()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
