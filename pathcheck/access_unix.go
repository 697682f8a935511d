//go:build unix

// SPDX-License-Identifier: GPL-3.0-or-later

package pathcheck

import "golang.org/x/sys/unix"

const (
	accessRead    = unix.R_OK
	accessWrite   = unix.W_OK
	accessExecute = unix.X_OK
)

// access returns whether the calling process may access path with mode.
func access(path string, mode uint32) bool {
	return unix.Access(path, mode) == nil
}
