// SPDX-License-Identifier: GPL-3.0-or-later

package pathcheck

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// maxPathLen is the longest accepted path name (PATH_MAX on Linux).
	maxPathLen = 4096

	// maxNameLen is the longest accepted path component (NAME_MAX).
	maxNameLen = 255
)

// IsValidPath returns whether path is a syntactically valid path name.
//
// A valid path is not empty, contains no NUL bytes, and respects the
// PATH_MAX and NAME_MAX limits. It does not need to exist.
func IsValidPath(path string) bool {
	if path == "" || len(path) > maxPathLen || strings.ContainsRune(path, 0) {
		return false
	}
	for _, elem := range strings.Split(filepath.ToSlash(path), "/") {
		if len(elem) > maxNameLen {
			return false
		}
	}
	return true
}

func stat(path string) (fs.FileInfo, bool) {
	info, err := os.Stat(path)
	return info, err == nil
}

// IsExistingPath returns whether path exists, following symlinks.
func IsExistingPath(path string) bool {
	_, ok := stat(path)
	return ok
}

// IsReadablePath returns whether path exists and is readable.
func IsReadablePath(path string) bool {
	return IsExistingPath(path) && access(path, accessRead)
}

// IsWritablePath returns whether path exists and is writable.
func IsWritablePath(path string) bool {
	return IsExistingPath(path) && access(path, accessWrite)
}

// IsExecutablePath returns whether path exists and is executable
// (searchable, for directories).
func IsExecutablePath(path string) bool {
	return IsExistingPath(path) && access(path, accessExecute)
}

// IsExistingDirectory returns whether path is an existing directory.
func IsExistingDirectory(path string) bool {
	info, ok := stat(path)
	return ok && info.IsDir()
}

// IsReadableDirectory returns whether path is a readable directory.
func IsReadableDirectory(path string) bool {
	return IsExistingDirectory(path) && access(path, accessRead)
}

// IsWritableDirectory returns whether path is a writable directory.
func IsWritableDirectory(path string) bool {
	return IsExistingDirectory(path) && access(path, accessWrite)
}

// IsExecutableDirectory returns whether path is a searchable directory.
func IsExecutableDirectory(path string) bool {
	return IsExistingDirectory(path) && access(path, accessExecute)
}

// IsValidDirectory returns whether path is valid and could name a
// directory, i.e., it is not an existing non-directory.
func IsValidDirectory(path string) bool {
	if !IsValidPath(path) {
		return false
	}
	info, ok := stat(path)
	return !ok || info.IsDir()
}

// IsExistingFile returns whether path is an existing regular file.
func IsExistingFile(path string) bool {
	info, ok := stat(path)
	return ok && info.Mode().IsRegular()
}

// IsReadableFile returns whether path is a readable regular file.
func IsReadableFile(path string) bool {
	return IsExistingFile(path) && access(path, accessRead)
}

// IsWritableFile returns whether path is a writable regular file.
func IsWritableFile(path string) bool {
	return IsExistingFile(path) && access(path, accessWrite)
}

// IsExecutableFile returns whether path is an executable regular file.
func IsExecutableFile(path string) bool {
	return IsExistingFile(path) && access(path, accessExecute)
}

// IsValidFile returns whether path is valid and could name a file,
// i.e., it is not an existing directory.
func IsValidFile(path string) bool {
	if !IsValidPath(path) {
		return false
	}
	info, ok := stat(path)
	return !ok || !info.IsDir()
}

// IsEmptyFile returns whether path is an existing, empty regular file.
func IsEmptyFile(path string) bool {
	info, ok := stat(path)
	return ok && info.Mode().IsRegular() && info.Size() == 0
}

// HasExtension returns a predicate matching paths whose extension is one
// of exts. The comparison ignores case and the leading dot is optional,
// so "TXT", ".txt", and "txt" are equivalent.
func HasExtension(exts ...string) func(string) bool {
	want := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		want[normalizeExt(ext)] = struct{}{}
	}
	return func(path string) bool {
		ext := filepath.Ext(path)
		if ext == "" {
			return false
		}
		_, found := want[normalizeExt(ext)]
		return found
	}
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
