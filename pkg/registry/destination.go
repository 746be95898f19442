package registry

import (
	"io/fs"
	"os"
)

// CreateDestination opens the destination file for a writer, enforcing the
// shared path and overwrite semantics: an empty path fails with a
// not-found class error, an existing file fails with *OverwriteError unless
// overwrite is set. The caller owns the returned handle.
func CreateDestination(path string, overwrite bool) (*os.File, error) {
	if path == "" {
		return nil, &fs.PathError{Op: "create", Path: path, Err: fs.ErrNotExist}
	}
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return nil, &OverwriteError{Path: path}
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	return os.Create(path)
}
