// Package config provides configuration management for courses-manager.
//
// This package handles:
//   - Loading and saving the configuration from JSON files
//   - Default configuration values and generated default files
//   - Locating config files in a working directory
//   - Watching a config file for changes
//
// # Default Configuration
//
// DefaultConfiguration returns the built-in values without touching disk:
//
//	cfg := config.DefaultConfiguration()
//	// courses.json, name width 30, grade width 3, points width 4
//
// # Loading
//
// A Store is bound to a working directory. Load never fails because a file is
// missing: it falls back to any courses_manager_config_*.json file in the
// directory, and when there is none it writes a new default file.
//
//	store := config.NewStore("/path/to/workdir")
//	cfg, err := store.Load("")
//	if errors.Is(err, config.ErrInvalidConfig) {
//	    // the file exists but is malformed
//	}
//
// # Saving
//
// Save replaces the target atomically. Keys are written in sorted order and
// the courses file path is stored in absolute form:
//
//	cfg.NameLength = 40
//	err := store.Save(cfg, "courses_manager_config_0123.json")
//
// # File Format
//
//	{"courses_file_path": "/abs/path/courses.json", "grade_length": 3, "name_length": 30, "points_length": 4}
package config
