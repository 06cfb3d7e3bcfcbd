package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	ioutils "github.com/handiism/courses-manager/internal/io"
	xlog "github.com/handiism/courses-manager/internal/log"
)

const (
	// FilePrefix and FileSuffix frame the random identifier in generated
	// config file names.
	FilePrefix = "courses_manager_config_"
	FileSuffix = ".json"

	// FilePattern matches generated config files.
	FilePattern = FilePrefix + "*" + FileSuffix

	// maxLoadAttempts bounds how many candidate paths Load tries before
	// falling back to a fresh default file.
	maxLoadAttempts = 2
)

// Store loads and saves configuration files relative to a working directory.
type Store struct {
	dir    string
	logger *zerolog.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithLogger replaces the store's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = &l
	}
}

// NewStore returns a Store rooted at dir. An empty dir means the process
// working directory; any other dir is made absolute.
func NewStore(dir string, opts ...Option) *Store {
	if dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}
	s := &Store{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// log returns the configured logger, or the global "config" component logger.
func (s *Store) log() *zerolog.Logger {
	if s.logger == nil {
		l := xlog.WithComponent("config")
		return &l
	}
	return s.logger
}

// Dir returns the directory the store resolves relative paths against.
func (s *Store) Dir() string {
	return s.dir
}

// GenerateFileName returns a fresh courses_manager_config_<hex>.json name
// built from a random 128-bit identifier.
func GenerateFileName() string {
	id := uuid.New()
	return FilePrefix + hex.EncodeToString(id[:]) + FileSuffix
}

// IsConfigFileName reports whether name matches FilePattern.
func IsConfigFileName(name string) bool {
	ok, _ := filepath.Match(FilePattern, name)
	return ok
}

// CreateDefault writes the default configuration to a newly named file in the
// store directory. It returns the in-memory configuration, whose
// CoursesFilePath stays relative, and the path of the file written.
func (s *Store) CreateDefault() (*Configuration, string, error) {
	cfg := DefaultConfiguration()
	path := s.resolve(GenerateFileName())

	if err := s.Save(cfg, path); err != nil {
		return nil, "", err
	}

	s.log().Info().
		Str("event", "config.default_created").
		Str("path", path).
		Msg("created default config file")

	return cfg, path, nil
}

// Save writes cfg to path as a flat JSON object with sorted keys, replacing
// any existing file. CoursesFilePath is stored in absolute form.
func (s *Store) Save(cfg *Configuration, path string) error {
	data, err := cfg.encode(s.dir)
	if err != nil {
		return err
	}

	path = s.resolve(path)
	if err := ioutils.WriteFile(path, data); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// FindAlternative returns the first file in the store directory matching
// FilePattern, in directory-listing order. found is false when nothing matches.
func (s *Store) FindAlternative() (path string, found bool, err error) {
	matches, err := s.matches()
	if err != nil {
		return "", false, err
	}
	if len(matches) == 0 {
		return "", false, nil
	}
	return matches[0], true, nil
}

// Load returns the configuration stored at path.
//
// When path is empty or is not a regular file, Load falls back to the first
// alternative config file in the store directory, and when there is none it
// creates a new default file. Note that this means Load can write to disk.
//
// A file that exists but does not parse yields a *ParseError.
func (s *Store) Load(path string) (*Configuration, error) {
	cfg, _, err := s.Resolve(path)
	return cfg, err
}

// Resolve behaves like Load and also returns the file the configuration
// was read from or written to.
func (s *Store) Resolve(path string) (*Configuration, string, error) {
	candidate := path
	for attempt := 0; attempt < maxLoadAttempts; attempt++ {
		resolved := s.resolve(candidate)
		if resolved != "" && ioutils.IsRegularFile(resolved) {
			cfg, err := s.read(resolved)
			if err != nil {
				return nil, "", err
			}
			return cfg, resolved, nil
		}

		alt, found, err := s.FindAlternative()
		if err != nil {
			return nil, "", err
		}
		if !found {
			break
		}

		s.log().Debug().
			Str("event", "config.alternative_found").
			Str("requested", path).
			Str("alternative", alt).
			Msg("using alternative config file")
		candidate = alt
	}

	s.log().Debug().
		Str("event", "config.fallback_default").
		Str("requested", path).
		Msg("no usable config file, creating default")

	return s.CreateDefault()
}

// ReadFile parses the config file at path without any fallback.
func (s *Store) ReadFile(path string) (*Configuration, error) {
	return s.read(s.resolve(path))
}

func (s *Store) read(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// matches lists entries in the store directory whose names match FilePattern.
func (s *Store) matches() ([]string, error) {
	dir := s.dir
	if dir == "" {
		dir = "."
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list config directory: %w", err)
	}

	var out []string
	for _, e := range entries {
		if IsConfigFileName(e.Name()) {
			out = append(out, s.resolve(e.Name()))
		}
	}
	return out, nil
}

func (s *Store) resolve(path string) string {
	if path == "" || s.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dir, path)
}

var defaultStore = NewStore("")

// Load resolves configuration in the process working directory. See Store.Load.
func Load(path string) (*Configuration, error) {
	return defaultStore.Load(path)
}

// Save writes cfg to path. See Store.Save.
func Save(cfg *Configuration, path string) error {
	return defaultStore.Save(cfg, path)
}

// CreateDefault writes a default config file to the process working directory.
func CreateDefault() (*Configuration, string, error) {
	return defaultStore.CreateDefault()
}

// FindAlternative searches the process working directory for config files.
func FindAlternative() (string, bool, error) {
	return defaultStore.FindAlternative()
}
