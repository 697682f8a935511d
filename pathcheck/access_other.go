//go:build !unix

// SPDX-License-Identifier: GPL-3.0-or-later

package pathcheck

import "os"

const (
	accessRead    = 0o444
	accessWrite   = 0o222
	accessExecute = 0o111
)

// access approximates access(2) using the permission bits.
func access(path string, mode uint32) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return uint32(info.Mode().Perm())&mode != 0
}
