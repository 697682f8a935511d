// SPDX-License-Identifier: GPL-3.0-or-later

// Package pathcheck contains path, file, and directory validators.
//
// The Is* functions are plain predicates. The functions returning an
// [argcheck.Descriptor] (e.g., [FileExists], [DirectoryIsWritable]) describe
// ready-to-use validators for [argcheck.NewCheck], [argcheck.NewTransform],
// and [argcheck.NewTransformAndReplace]. [Register] adds all of them to an
// [argcheck.Registry].
//
// Permission checks use access(2) on unix systems, so they take the
// effective user and group into account, and permission bits elsewhere.
package pathcheck
