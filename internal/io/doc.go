// Package ioutils provides file system utilities for courses-manager.
//
// This package contains functions for:
//   - Atomic file replacement (temp file, fsync, rename)
//   - Regular-file checks used when resolving config paths
//
// # Atomic Writes
//
// WriteFileAtomic streams into a pending file and only replaces the
// destination once the writer callback succeeds:
//
//	err := ioutils.WriteFileAtomic("/path/to/config.json", func(w io.Writer) error {
//	    return json.NewEncoder(w).Encode(v)
//	})
//
// WriteFile is the byte-slice shorthand:
//
//	err := ioutils.WriteFile("/path/to/file.txt", []byte("content"))
//
// # File Checks
//
//	if ioutils.IsRegularFile(path) {
//	    // safe to open and parse
//	}
package ioutils
