package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

// Default values used by CreateDefault.
const (
	DefaultCoursesFilePath = "courses.json"
	DefaultNameLength      = 30
	DefaultGradeLength     = 3
	DefaultPointsLength    = 4
)

// Configuration holds the courses data-file path and the display column
// widths used when rendering course tables.
type Configuration struct {
	CoursesFilePath string
	NameLength      int
	GradeLength     int
	PointsLength    int
}

// DefaultConfiguration returns the built-in configuration without touching disk.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		CoursesFilePath: DefaultCoursesFilePath,
		NameLength:      DefaultNameLength,
		GradeLength:     DefaultGradeLength,
		PointsLength:    DefaultPointsLength,
	}
}

// rawFormat is the on-disk layout, with pointers so absent keys can be told
// apart from zero values.
type rawFormat struct {
	CoursesFilePath *string `json:"courses_file_path"`
	GradeLength     *int    `json:"grade_length"`
	NameLength      *int    `json:"name_length"`
	PointsLength    *int    `json:"points_length"`
}

// encode renders c as one line of JSON with sorted keys and ", " / ": "
// separators. A relative CoursesFilePath is made absolute against baseDir.
func (c *Configuration) encode(baseDir string) ([]byte, error) {
	coursesPath, err := absolutePath(baseDir, c.CoursesFilePath)
	if err != nil {
		return nil, err
	}

	var quoted bytes.Buffer
	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(coursesPath); err != nil {
		return nil, err
	}

	return fmt.Appendf(nil,
		`{"courses_file_path": %s, "grade_length": %d, "name_length": %d, "points_length": %d}`,
		bytes.TrimRight(quoted.Bytes(), "\n"), c.GradeLength, c.NameLength, c.PointsLength,
	), nil
}

// decode parses a flat JSON object that must carry exactly the four
// configuration keys. Errors wrap ErrMissingField or ErrUnknownField where
// that is the cause.
func decode(data []byte) (*Configuration, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw rawFormat
	if err := dec.Decode(&raw); err != nil {
		if field, ok := unknownField(err); ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		return nil, err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}

	switch {
	case raw.CoursesFilePath == nil:
		return nil, fmt.Errorf("%w: courses_file_path", ErrMissingField)
	case raw.NameLength == nil:
		return nil, fmt.Errorf("%w: name_length", ErrMissingField)
	case raw.GradeLength == nil:
		return nil, fmt.Errorf("%w: grade_length", ErrMissingField)
	case raw.PointsLength == nil:
		return nil, fmt.Errorf("%w: points_length", ErrMissingField)
	}

	return &Configuration{
		CoursesFilePath: *raw.CoursesFilePath,
		NameLength:      *raw.NameLength,
		GradeLength:     *raw.GradeLength,
		PointsLength:    *raw.PointsLength,
	}, nil
}

// absolutePath resolves p against baseDir, or the process working directory
// when baseDir is empty.
func absolutePath(baseDir, p string) (string, error) {
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	if baseDir != "" {
		p = filepath.Join(baseDir, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", p, err)
	}
	return abs, nil
}
