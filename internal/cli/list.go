package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// newListCmd creates the list command
func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every config file in the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := opts.store().Candidates(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "no config files found")
				return nil
			}

			for _, c := range candidates {
				if c.Valid() {
					fmt.Fprintf(out, "%s %s\n", validStyle.Render("✓"), c.Path)
					continue
				}
				fmt.Fprintf(out, "%s %s: %v\n", invalidStyle.Render("✗"), c.Path, c.Err)
			}
			return nil
		},
	}
}
