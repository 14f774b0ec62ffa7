package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrExists = errors.New("output file already exists")

// WriteFileAtomic writes data to a temporary file next to path, and renames it into place once everything is written and synced.
// A failure at any point leaves no partial output behind.
// An existing file at path is only replaced when overwrite is set.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode, overwrite bool) (err error) {
	if !overwrite {
		if _, statErr := os.Lstat(path); statErr == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return statErr
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
