// SPDX-License-Identifier: GPL-3.0-or-later

package pathcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture is a temporary directory populated with well-known entries.
type fixture struct {
	// dir is the fixture root with symlinks evaluated.
	dir string
}

// newFixture creates the following tree inside [testing.T.TempDir]:
//
//	file.txt    regular file with content, mode 0644
//	empty.txt   empty regular file, mode 0644
//	script.sh   regular file, mode 0755
//	subdir/     directory, mode 0755
func newFixture(t *testing.T) *fixture {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.sh"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	return &fixture{dir: dir}
}

// path returns the absolute path of name inside the fixture.
func (f *fixture) path(name string) string {
	return filepath.Join(f.dir, name)
}

// skipIfRoot skips tests relying on permission denial, which root bypasses.
func skipIfRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
}
