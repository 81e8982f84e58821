// Package source acquires program text from the filesystem and classifies
// read failures into the handful of cases a user can actually act on.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// ErrPermission reports a file the process may not read.
var ErrPermission = errors.New("Unable to read the file due lack of permission")

// NotFoundError reports a path whose final element does not exist.
type NotFoundError struct {
	Name string // file name
	Dir  string // containing directory
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("The file %q located in %q doesn't exist", e.Name, e.Dir)
}

// MalformedPathError reports a path that routes through a non-directory,
// like file.txt/.. — it cannot name a file.
type MalformedPathError struct {
	Path string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("The %q doesn't point to a file, review it", e.Path)
}

// IsDirectoryError reports a path naming a directory where a file is needed.
type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("The %q doesn't point to a file, it's a directory", e.Path)
}

// ReadFile returns the text at path, or one of the classified errors above.
// Failures it cannot classify come back wrapped, with the os error intact.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		name := filepath.Base(path)
		if name == "." || name == string(filepath.Separator) {
			return "", fmt.Errorf("Unexpected error processing the file: %w", err)
		}
		return "", &NotFoundError{Name: name, Dir: filepath.Dir(path)}

	case errors.Is(err, syscall.ENOTDIR):
		return "", &MalformedPathError{Path: path}

	case errors.Is(err, fs.ErrPermission):
		return "", ErrPermission

	case errors.Is(err, syscall.EISDIR):
		return "", &IsDirectoryError{Path: path}
	}

	// Reading a directory does not always surface EISDIR through os.ReadFile;
	// fall back to a stat check before giving up on classification.
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return "", &IsDirectoryError{Path: path}
	}

	return "", fmt.Errorf("Unexpected error processing the file: %w", err)
}
