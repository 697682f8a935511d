// SPDX-License-Identifier: GPL-3.0-or-later

package pathcheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDirectory creates path, including missing parents, unless it is
// already an existing directory.
func EnsureDirectory(path string) error {
	if IsExistingDirectory(path) {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

// EnsureFile creates path as an empty regular file, including missing
// parents, unless it is already an existing regular file.
func EnsureFile(path string) error {
	if IsExistingFile(path) {
		return nil
	}
	if IsExistingPath(path) {
		return fmt.Errorf("%s: not a regular file", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	filep, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return filep.Close()
}

// ResolvePath returns the canonical absolute form of path.
//
// A relative path is joined to the working directory. Components are then
// walked left to right: symbolic links are evaluated as soon as they are
// reached, so ".." always refers to the parent of the resolved directory,
// as the kernel would see it. Components that do not exist yet are kept as
// they are, so resolving a path that does not exist is not an error.
func ResolvePath(path string) (string, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = wd + string(filepath.Separator) + path
	}
	volume := filepath.VolumeName(path)
	resolved := volume + string(filepath.Separator)
	for _, name := range strings.FieldsFunc(path[len(volume):], func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	}) {
		switch name {
		case ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}
		next := filepath.Join(resolved, name)
		target, err := filepath.EvalSymlinks(next)
		switch {
		case err == nil:
			resolved = target
		case errors.Is(err, os.ErrNotExist):
			resolved = next
		default:
			return "", err
		}
	}
	return resolved, nil
}
