// Package vfs is the file access layer of the font cache: packaged archives
// layered over a directory, a writable directory for generated files, and
// lookups in the platform font directories.
package vfs

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// Sentinel errors for vfs package.
var (
	// ErrInvalidPath is returned for absolute paths and paths leaving the
	// file system root.
	ErrInvalidPath = errors.New("vfs: invalid path")

	// ErrSystemLookupDisabled is returned by FindSystemFile when system
	// font directories are not searched.
	ErrSystemLookupDisabled = errors.New("vfs: system font lookup disabled")
)

// FS is the file service used by the font cache. Names are slash
// separated and relative to the file system root.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	Exists(name string) bool

	// InPak reports whether name is served from a packaged archive and
	// returns its CRC-32 checksum.
	InPak(name string) (checksum uint32, ok bool)

	// FindSystemFile returns the host path of a font file found in the
	// platform font directories.
	FindSystemFile(name string) (string, error)
}

// clean validates name and returns its canonical form.
func clean(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	if name == "" || path.IsAbs(name) {
		return "", &fs.PathError{Op: "open", Path: name, Err: ErrInvalidPath}
	}
	c := path.Clean(name)
	if c == "." || c == ".." || strings.HasPrefix(c, "../") {
		return "", &fs.PathError{Op: "open", Path: name, Err: ErrInvalidPath}
	}
	return c, nil
}
