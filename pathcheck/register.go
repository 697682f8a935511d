// SPDX-License-Identifier: GPL-3.0-or-later

package pathcheck

import "github.com/bassosimone/argcheck"

// Register adds every validator in this package to reg.
//
// The "file-has-extension" entry takes the accepted extensions from the
// allow-list passed to [argcheck.Entry.New].
func Register(reg *argcheck.Registry) error {
	return reg.Register(
		argcheck.CheckEntry("path is valid", PathIsValid()),
		argcheck.CheckEntry("path exists", PathExists()),
		argcheck.CheckEntry("path does not exist", PathDoesNotExist()),
		argcheck.CheckEntry("path is readable", PathIsReadable()),
		argcheck.CheckEntry("path is not readable", PathIsNotReadable()),
		argcheck.CheckEntry("path is writable", PathIsWritable()),
		argcheck.CheckEntry("path is not writable", PathIsNotWritable()),
		argcheck.CheckEntry("path is executable", PathIsExecutable()),
		argcheck.CheckEntry("path is not executable", PathIsNotExecutable()),
		argcheck.CheckEntry("directory path is valid", DirectoryIsValid()),
		argcheck.CheckEntry("directory exists", DirectoryExists()),
		argcheck.CheckEntry("directory does not exist", DirectoryDoesNotExist()),
		argcheck.CheckEntry("directory is readable", DirectoryIsReadable()),
		argcheck.CheckEntry("directory is not readable", DirectoryIsNotReadable()),
		argcheck.CheckEntry("directory is writable", DirectoryIsWritable()),
		argcheck.CheckEntry("directory is not writable", DirectoryIsNotWritable()),
		argcheck.CheckEntry("directory is executable", DirectoryIsExecutable()),
		argcheck.CheckEntry("directory is not executable", DirectoryIsNotExecutable()),
		argcheck.CheckEntry("file path is valid", FileIsValid()),
		argcheck.CheckEntry("file exists", FileExists()),
		argcheck.CheckEntry("file does not exist", FileDoesNotExist()),
		argcheck.CheckEntry("file is readable", FileIsReadable()),
		argcheck.CheckEntry("file is not readable", FileIsNotReadable()),
		argcheck.CheckEntry("file is writable", FileIsWritable()),
		argcheck.CheckEntry("file is not writable", FileIsNotWritable()),
		argcheck.CheckEntry("file is executable", FileIsExecutable()),
		argcheck.CheckEntry("file is not executable", FileIsNotExecutable()),
		argcheck.CheckEntry("file is empty", FileIsEmpty()),
		argcheck.CheckEntry("file is not empty", FileIsNotEmpty()),
		fileHasExtensionEntry(),
		argcheck.TransformEntry("create the directory if missing", EnsureDirectoryExists()),
		argcheck.TransformEntry("create the file if missing", EnsureFileExists()),
		argcheck.ReplaceEntry("replace the path with its canonical absolute form", PathIsResolved()),
	)
}

func fileHasExtensionEntry() argcheck.Entry {
	return argcheck.Entry{
		Name: "file-has-extension",
		Help: "file has one of the --allow extensions",
		New: func(cfg *argcheck.Config, logger argcheck.SLogger, allowed []string) (argcheck.Action, error) {
			if err := argcheck.ValidateAllowList("file-has-extension", allowed); err != nil {
				return nil, err
			}
			return argcheck.AsAction(argcheck.NewCheck(cfg, FileHasExtension(allowed...), logger))
		},
	}
}
