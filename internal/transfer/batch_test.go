package transfer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchSingleFileMove(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a")
	dest := filepath.Join(tmp, "b")
	writeFile(t, src, "content")

	summary, err := RunBatch([]string{src}, dest, testCtx(Move))
	require.NoError(t, err)
	assert.NoFileExists(t, src)
	assert.Equal(t, "content", readFile(t, dest))
	assert.Contains(t, summary, "Moved")
}

func TestRunBatchTrailingSeparatorCreatesDir(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a")
	writeFile(t, src, "content")
	dest := filepath.Join(tmp, "newdir") + "/"

	_, err := RunBatch([]string{src}, dest, testCtx(Move))
	require.NoError(t, err)
	assert.Equal(t, "content", readFile(t, filepath.Join(tmp, "newdir", "a")))
}

func TestRunBatchMultipleFilesIntoDir(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	b := filepath.Join(tmp, "b")
	writeFile(t, a, "A")
	writeFile(t, b, "B")
	dest := filepath.Join(tmp, "dest")
	require.NoError(t, os.Mkdir(dest, 0o755))

	var streamed []string
	ctx := testCtx(Copy)
	ctx.Report = func(line string) { streamed = append(streamed, line) }

	summary, err := RunBatch([]string{a, b}, dest, ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", readFile(t, filepath.Join(dest, "a")))
	assert.Equal(t, "B", readFile(t, filepath.Join(dest, "b")))

	// One line per source, streamed in caller order, same as the result.
	require.Len(t, streamed, 2)
	assert.Contains(t, streamed[0], ShellQuote(a))
	assert.Contains(t, streamed[1], ShellQuote(b))
	assert.Equal(t, strings.Join(streamed, "\n"), summary)
}

func TestRunBatchMissingSource(t *testing.T) {
	tmp := t.TempDir()
	_, err := RunBatch([]string{filepath.Join(tmp, "ghost")}, filepath.Join(tmp, "d"), testCtx(Move))
	require.ErrorIs(t, err, ErrSourceNotFound)
}

func TestRunBatchMixedSourceKinds(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	writeFile(t, file, "x")
	dir := filepath.Join(tmp, "dir")
	require.NoError(t, os.Mkdir(dir, 0o755))
	dest := filepath.Join(tmp, "dest")
	require.NoError(t, os.Mkdir(dest, 0o755))

	_, err := RunBatch([]string{file, dir}, dest, testCtx(Move))
	require.ErrorIs(t, err, ErrMixedSources)
	assert.FileExists(t, file)
	assert.DirExists(t, dir)
}

func TestRunBatchMultipleSourcesRequireDirDest(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	b := filepath.Join(tmp, "b")
	writeFile(t, a, "A")
	writeFile(t, b, "B")
	dest := filepath.Join(tmp, "plainfile")
	writeFile(t, dest, "not a dir")

	_, err := RunBatch([]string{a, b}, dest, testCtx(Move))
	require.ErrorIs(t, err, ErrDirDestRequired)

	// Validation failed before any mutation.
	assert.Equal(t, "A", readFile(t, a))
	assert.Equal(t, "B", readFile(t, b))
	assert.Equal(t, "not a dir", readFile(t, dest))
}

func TestRunBatchDestinationExistsPropagates(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a")
	dest := filepath.Join(tmp, "b")
	writeFile(t, src, "new")
	writeFile(t, dest, "old")

	_, err := RunBatch([]string{src}, dest, testCtx(Move))
	require.ErrorIs(t, err, ErrDestinationExists)
	assert.Equal(t, "new", readFile(t, src))
	assert.Equal(t, "old", readFile(t, dest))

	ctx := testCtx(Move)
	ctx.Force = true
	_, err = RunBatch([]string{src}, dest, ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", readFile(t, dest))
}

func TestRunBatchDirMergesUnderDest(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "b")
	createTestTree(t, src, testTree{"c": "X"})
	dest := filepath.Join(tmp, "dest")
	require.NoError(t, os.Mkdir(dest, 0o755))

	_, err := RunBatch([]string{src}, dest, testCtx(Move))
	require.NoError(t, err)
	assert.Equal(t, "X", readFile(t, filepath.Join(dest, "b", "c")))
	assert.NoDirExists(t, src)
}

func TestRunBatchDryRunIsNoOp(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	createTestTree(t, src, testTree{"a": "x", "sub": testTree{"b": "y"}})
	file := filepath.Join(tmp, "plain")
	writeFile(t, file, "z")
	dest := filepath.Join(tmp, "dest")
	require.NoError(t, os.Mkdir(dest, 0o755))

	before := readTestTree(t, tmp)

	ctx := testCtx(Move)
	ctx.DryRun = true
	summary, err := RunBatch([]string{src}, dest, ctx)
	require.NoError(t, err)
	assert.Contains(t, summary, "would merge")
	assert.Contains(t, summary, ShellQuote(filepath.Join(dest, "src")))

	ctx = testCtx(Copy)
	ctx.DryRun = true
	summary, err = RunBatch([]string{file}, dest, ctx)
	require.NoError(t, err)
	assert.Contains(t, summary, "would copy")

	assert.Equal(t, before, readTestTree(t, tmp))
}

func TestRunBatchDryRunStillValidates(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	writeFile(t, file, "x")
	dir := filepath.Join(tmp, "dir")
	require.NoError(t, os.Mkdir(dir, 0o755))
	dest := filepath.Join(tmp, "dest")
	require.NoError(t, os.Mkdir(dest, 0o755))

	ctx := testCtx(Move)
	ctx.DryRun = true
	_, err := RunBatch([]string{file, dir}, dest, ctx)
	require.ErrorIs(t, err, ErrMixedSources)
}

func TestRunBatchCancellationBetweenSources(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	writeFile(t, a, "A")
	dest := filepath.Join(tmp, "dest")
	require.NoError(t, os.Mkdir(dest, 0o755))

	stubExit(t)
	ctx := testCtx(Move)
	ctx.Token = &Token{}
	ctx.Token.Set()

	defer func() {
		r := recover()
		require.IsType(t, exitCalled{}, r)
		assert.Equal(t, CancelExitCode, r.(exitCalled).code)
		assert.Equal(t, "A", readFile(t, a))
	}()
	_, _ = RunBatch([]string{a}, dest, ctx)
	t.Fatal("batch should have terminated through the exit seam")
}
