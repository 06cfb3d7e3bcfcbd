package ioutils

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
)

// DefaultFileMode is the permission used for files written by WriteFileAtomic.
const DefaultFileMode os.FileMode = 0644

// WriteFileAtomic replaces the file at path with whatever write produces.
//
// The data goes to a temporary file in the destination directory, which is
// fsynced and renamed over path only if write returns nil. A reader never
// observes a partially written file. The destination directory must exist.
//
// Returns an error if:
//   - The temporary file cannot be created (directory missing or not writable)
//   - write returns an error
//   - The final rename fails (for example, path is a directory)
//
// Example:
//
//	err := WriteFileAtomic("/data/config.json", func(w io.Writer) error {
//	    _, err := w.Write(data)
//	    return err
//	})
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(DefaultFileMode))
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", path, err)
	}
	defer func() {
		// No-op after a successful CloseAtomicallyReplace.
		if cerr := pending.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("cleanup pending file for %s: %w", path, cerr)
		}
	}()

	if err := write(pending); err != nil {
		return err
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// WriteFile writes data to path atomically with mode 0644.
func WriteFile(path string, data []byte) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// IsRegularFile reports whether path exists and is a regular file.
// Symlinks are followed; directories, devices and missing paths report false.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
