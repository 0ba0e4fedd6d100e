package pages

import (
	"errors"
	"io/fs"
	"os"
)

// EnsureEntries creates an empty file at every path that does not exist yet
// and returns the paths it actually created. Existing regular files are left
// untouched. The first failure stops the pass with a *FileCreationError.
func EnsureEntries(paths []string) ([]string, error) {
	var created []string
	for _, p := range paths {
		ok, err := ensureFile(p)
		if err != nil {
			return created, &FileCreationError{Path: p, Err: err}
		}
		if ok {
			created = append(created, p)
		}
	}
	return created, nil
}

func ensureFile(p string) (bool, error) {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err == nil {
		return true, f.Close()
	}
	if !errors.Is(err, fs.ErrExist) {
		return false, err
	}
	info, statErr := os.Stat(p)
	if statErr != nil {
		return false, statErr
	}
	if info.IsDir() {
		return false, errors.New("a directory is in the way")
	}
	return false, nil
}
