// SPDX-License-Identifier: GPL-3.0-or-later

package pathcheck

import (
	"strings"

	"github.com/bassosimone/argcheck"
)

// newCheck builds a check descriptor whose messages are derived from noun
// and the failure description (e.g., "file", "does not exist").
func newCheck(name string, fn argcheck.Func[string, bool], noun, failure string) argcheck.Descriptor[bool] {
	return argcheck.Descriptor[bool]{
		Name:     name,
		Func:     fn,
		Singular: noun + " " + failure,
		Plural:   "at least one " + noun + " " + failure,
	}
}

// PathIsValid accepts syntactically valid paths.
func PathIsValid() argcheck.Descriptor[bool] {
	return newCheck("path-is-valid", argcheck.PureFunc(IsValidPath), "path", "is not valid")
}

// PathExists accepts existing paths.
func PathExists() argcheck.Descriptor[bool] {
	return newCheck("path-exists", argcheck.PureFunc(IsExistingPath), "path", "does not exist")
}

// PathDoesNotExist accepts paths that do not exist.
func PathDoesNotExist() argcheck.Descriptor[bool] {
	return newCheck("path-does-not-exist", argcheck.Not(argcheck.PureFunc(IsExistingPath)), "path", "exists")
}

// PathIsReadable accepts existing readable paths.
func PathIsReadable() argcheck.Descriptor[bool] {
	return newCheck("path-is-readable", argcheck.PureFunc(IsReadablePath), "path", "is not readable")
}

// PathIsNotReadable accepts paths that are missing or not readable.
func PathIsNotReadable() argcheck.Descriptor[bool] {
	return newCheck("path-is-not-readable", argcheck.Not(argcheck.PureFunc(IsReadablePath)), "path", "is readable")
}

// PathIsWritable accepts existing writable paths.
func PathIsWritable() argcheck.Descriptor[bool] {
	return newCheck("path-is-writable", argcheck.PureFunc(IsWritablePath), "path", "is not writable")
}

// PathIsNotWritable accepts paths that are missing or not writable.
func PathIsNotWritable() argcheck.Descriptor[bool] {
	return newCheck("path-is-not-writable", argcheck.Not(argcheck.PureFunc(IsWritablePath)), "path", "is writable")
}

// PathIsExecutable accepts existing executable paths.
func PathIsExecutable() argcheck.Descriptor[bool] {
	return newCheck("path-is-executable", argcheck.PureFunc(IsExecutablePath), "path", "is not executable")
}

// PathIsNotExecutable accepts paths that are missing or not executable.
func PathIsNotExecutable() argcheck.Descriptor[bool] {
	return newCheck("path-is-not-executable", argcheck.Not(argcheck.PureFunc(IsExecutablePath)), "path", "is executable")
}

// DirectoryIsValid accepts valid paths that are not existing non-directories.
func DirectoryIsValid() argcheck.Descriptor[bool] {
	return newCheck("directory-is-valid", argcheck.PureFunc(IsValidDirectory), "directory", "is not valid")
}

// DirectoryExists accepts existing directories.
func DirectoryExists() argcheck.Descriptor[bool] {
	return newCheck("directory-exists", argcheck.PureFunc(IsExistingDirectory), "directory", "does not exist")
}

// DirectoryDoesNotExist accepts paths that are not existing directories.
func DirectoryDoesNotExist() argcheck.Descriptor[bool] {
	return newCheck("directory-does-not-exist", argcheck.Not(argcheck.PureFunc(IsExistingDirectory)), "directory", "exists")
}

// DirectoryIsReadable accepts readable directories.
func DirectoryIsReadable() argcheck.Descriptor[bool] {
	return newCheck("directory-is-readable", argcheck.PureFunc(IsReadableDirectory), "directory", "is not readable")
}

// DirectoryIsNotReadable accepts paths that are not readable directories.
func DirectoryIsNotReadable() argcheck.Descriptor[bool] {
	return newCheck("directory-is-not-readable", argcheck.Not(argcheck.PureFunc(IsReadableDirectory)), "directory", "is readable")
}

// DirectoryIsWritable accepts writable directories.
func DirectoryIsWritable() argcheck.Descriptor[bool] {
	return newCheck("directory-is-writable", argcheck.PureFunc(IsWritableDirectory), "directory", "is not writable")
}

// DirectoryIsNotWritable accepts paths that are not writable directories.
func DirectoryIsNotWritable() argcheck.Descriptor[bool] {
	return newCheck("directory-is-not-writable", argcheck.Not(argcheck.PureFunc(IsWritableDirectory)), "directory", "is writable")
}

// DirectoryIsExecutable accepts searchable directories.
func DirectoryIsExecutable() argcheck.Descriptor[bool] {
	return newCheck("directory-is-executable", argcheck.PureFunc(IsExecutableDirectory), "directory", "is not executable")
}

// DirectoryIsNotExecutable accepts paths that are not searchable directories.
func DirectoryIsNotExecutable() argcheck.Descriptor[bool] {
	return newCheck("directory-is-not-executable", argcheck.Not(argcheck.PureFunc(IsExecutableDirectory)), "directory", "is executable")
}

// FileIsValid accepts valid paths that are not existing directories.
func FileIsValid() argcheck.Descriptor[bool] {
	return newCheck("file-is-valid", argcheck.PureFunc(IsValidFile), "file", "is not valid")
}

// FileExists accepts existing regular files.
func FileExists() argcheck.Descriptor[bool] {
	return newCheck("file-exists", argcheck.PureFunc(IsExistingFile), "file", "does not exist")
}

// FileDoesNotExist accepts paths that are not existing regular files.
func FileDoesNotExist() argcheck.Descriptor[bool] {
	return newCheck("file-does-not-exist", argcheck.Not(argcheck.PureFunc(IsExistingFile)), "file", "exists")
}

// FileIsReadable accepts readable regular files.
func FileIsReadable() argcheck.Descriptor[bool] {
	return newCheck("file-is-readable", argcheck.PureFunc(IsReadableFile), "file", "is not readable")
}

// FileIsNotReadable accepts paths that are not readable regular files.
func FileIsNotReadable() argcheck.Descriptor[bool] {
	return newCheck("file-is-not-readable", argcheck.Not(argcheck.PureFunc(IsReadableFile)), "file", "is readable")
}

// FileIsWritable accepts writable regular files.
func FileIsWritable() argcheck.Descriptor[bool] {
	return newCheck("file-is-writable", argcheck.PureFunc(IsWritableFile), "file", "is not writable")
}

// FileIsNotWritable accepts paths that are not writable regular files.
func FileIsNotWritable() argcheck.Descriptor[bool] {
	return newCheck("file-is-not-writable", argcheck.Not(argcheck.PureFunc(IsWritableFile)), "file", "is writable")
}

// FileIsExecutable accepts executable regular files.
func FileIsExecutable() argcheck.Descriptor[bool] {
	return newCheck("file-is-executable", argcheck.PureFunc(IsExecutableFile), "file", "is not executable")
}

// FileIsNotExecutable accepts paths that are not executable regular files.
func FileIsNotExecutable() argcheck.Descriptor[bool] {
	return newCheck("file-is-not-executable", argcheck.Not(argcheck.PureFunc(IsExecutableFile)), "file", "is executable")
}

// FileIsEmpty accepts empty regular files.
func FileIsEmpty() argcheck.Descriptor[bool] {
	return newCheck("file-is-empty", argcheck.PureFunc(IsEmptyFile), "file", "is not empty")
}

// FileIsNotEmpty accepts paths that are not empty regular files.
func FileIsNotEmpty() argcheck.Descriptor[bool] {
	return newCheck("file-is-not-empty", argcheck.Not(argcheck.PureFunc(IsEmptyFile)), "file", "is empty")
}

// FileHasExtension accepts paths whose extension is one of exts.
func FileHasExtension(exts ...string) argcheck.Descriptor[bool] {
	failure := "does not have extension " + strings.Join(exts, " or ")
	return newCheck("file-has-extension", argcheck.PureFunc(HasExtension(exts...)), "file", failure)
}

// EnsureDirectoryExists creates missing directories, parents included.
func EnsureDirectoryExists() argcheck.Descriptor[argcheck.Unit] {
	return argcheck.Descriptor[argcheck.Unit]{
		Name:     "ensure-directory",
		Func:     argcheck.EffectFunc(EnsureDirectory),
		Singular: "cannot create directory",
		Plural:   "cannot create at least one directory",
	}
}

// EnsureFileExists creates missing files as empty files, parents included.
func EnsureFileExists() argcheck.Descriptor[argcheck.Unit] {
	return argcheck.Descriptor[argcheck.Unit]{
		Name:     "ensure-file",
		Func:     argcheck.EffectFunc(EnsureFile),
		Singular: "cannot create file",
		Plural:   "cannot create at least one file",
	}
}

// PathIsResolved replaces each path with its canonical absolute form.
func PathIsResolved() argcheck.Descriptor[string] {
	return argcheck.Descriptor[string]{
		Name: "resolve-path",
		Func: argcheck.FallibleFunc(ResolvePath),
	}
}
