//go:build !windows

package transfer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestMergeDirMoveSkipsSpecialFiles(t *testing.T) {
	// A fifo cannot be transferred; the merge skips it, moves everything
	// else, and leaves only the directories still holding skipped entries.
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dest := filepath.Join(tmp, "dest")
	createTestTree(t, src, testTree{
		"a":   "regular",
		"sub": testTree{"b": "nested"},
	})
	require.NoError(t, unix.Mkfifo(filepath.Join(src, "pipe"), 0o644))

	_, err := MergeDir(src, dest, testCtx(Move))
	require.NoError(t, err)

	assert.Equal(t, "regular", readFile(t, filepath.Join(dest, "a")))
	assert.Equal(t, "nested", readFile(t, filepath.Join(dest, "sub", "b")))
	assert.NoFileExists(t, filepath.Join(src, "a"))
	assert.NoDirExists(t, filepath.Join(src, "sub"))

	// The source root survives with just the skipped fifo in it.
	assert.DirExists(t, src)
	var st unix.Stat_t
	require.NoError(t, unix.Lstat(filepath.Join(src, "pipe"), &st))
	assert.Equal(t, uint32(unix.S_IFIFO), uint32(st.Mode)&unix.S_IFMT)
}
