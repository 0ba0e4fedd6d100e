// Package fsutil provides file system utility functions over fs.FS, so that
// callers can be exercised against an in-memory tree as well as the disk.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// FindFilesByExtension recursively searches root inside fsys for all files
// ending with the specified extension. Returned names are slash-separated and
// relative to fsys, in lexical walk order.
func FindFilesByExtension(fsys fs.FS, root string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, p)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// ListDirs returns the base names of the immediate children of dir that are
// directories. Symlinks are followed; a dangling symlink is skipped. Plain
// files are never returned. The order is the order of fs.ReadDir, which is
// sorted by name.
func ListDirs(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
			continue
		}
		if entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		info, err := fs.Stat(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		if info.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

// FileExists reports whether name exists in fsys and is not a directory.
// A missing file is not an error.
func FileExists(fsys fs.FS, name string) (bool, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
