package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/courses-manager/internal/config"
)

// setters maps CLI keys to field updates. Width values only need to parse
// as integers.
var setters = map[string]func(cfg *config.Configuration, value string) error{
	"courses-file-path": func(cfg *config.Configuration, value string) error {
		cfg.CoursesFilePath = value
		return nil
	},
	"name-length": func(cfg *config.Configuration, value string) error {
		return setInt(&cfg.NameLength, value)
	},
	"grade-length": func(cfg *config.Configuration, value string) error {
		return setInt(&cfg.GradeLength, value)
	},
	"points-length": func(cfg *config.Configuration, value string) error {
		return setInt(&cfg.PointsLength, value)
	},
}

func setInt(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer %q", value)
	}
	*dst = n
	return nil
}

func settableKeys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// newSetCmd creates the set command
func newSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and write the file back.

Keys: ` + strings.Join(settableKeys(), ", ") + `

Examples:
  courses-config set name-length 40
  courses-config set courses-file-path /srv/data/courses.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			set, ok := setters[key]
			if !ok {
				return fmt.Errorf("unknown key %q (want one of %s)", key, strings.Join(settableKeys(), ", "))
			}

			store := opts.store()
			cfg, source, err := store.Resolve(opts.configPath)
			if err != nil {
				return err
			}

			if err := set(cfg, value); err != nil {
				return fmt.Errorf("set %s: %w", key, err)
			}

			if err := store.Save(cfg, source); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s to: %s\n", key, value)
			return nil
		},
	}
}
