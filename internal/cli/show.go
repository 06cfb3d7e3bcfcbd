package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/handiism/courses-manager/internal/config"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Width(20)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// configView is the printable form of a resolved configuration.
type configView struct {
	Source          string `json:"source" yaml:"source"`
	CoursesFilePath string `json:"courses_file_path" yaml:"courses_file_path"`
	GradeLength     int    `json:"grade_length" yaml:"grade_length"`
	NameLength      int    `json:"name_length" yaml:"name_length"`
	PointsLength    int    `json:"points_length" yaml:"points_length"`
}

func newConfigView(source string, cfg *config.Configuration) configView {
	return configView{
		Source:          source,
		CoursesFilePath: cfg.CoursesFilePath,
		GradeLength:     cfg.GradeLength,
		NameLength:      cfg.NameLength,
		PointsLength:    cfg.PointsLength,
	}
}

// newShowCmd creates the show command
func newShowCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the resolved configuration and the file it came from.

Examples:
  courses-config show
  courses-config show --output json
  courses-config -c my_config.json show --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := opts.store().Resolve(opts.configPath)
			if err != nil {
				return err
			}
			return printConfig(cmd.OutOrStdout(), output, newConfigView(source, cfg))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	return cmd
}

func printConfig(w io.Writer, format string, v configView) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		rows := []struct {
			label string
			value any
		}{
			{"Courses file", v.CoursesFilePath},
			{"Name width", v.NameLength},
			{"Grade width", v.GradeLength},
			{"Points width", v.PointsLength},
		}
		fmt.Fprintln(w, sourceStyle.Render(v.Source))
		for _, r := range rows {
			fmt.Fprintf(w, "%s%v\n", labelStyle.Render(r.label), r.value)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}
