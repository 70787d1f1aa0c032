package transfer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testTree describes a directory as nested maps: string values are file
// contents, nested testTree values are subdirectories.
type testTree map[string]interface{}

func createTestTree(t *testing.T, root string, tree testTree) {
	t.Helper()
	for name, content := range tree {
		path := filepath.Join(root, name)
		switch v := content.(type) {
		case string:
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(v), 0o644))
		case testTree:
			require.NoError(t, os.MkdirAll(path, 0o755))
			createTestTree(t, path, v)
		default:
			t.Fatalf("unsupported tree value %T", content)
		}
	}
}

func readTestTree(t *testing.T, root string) testTree {
	t.Helper()
	tree := make(testTree)
	entries, err := os.ReadDir(root)
	if err != nil {
		return tree
	}
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			tree[entry.Name()] = readTestTree(t, path)
		} else {
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			tree[entry.Name()] = string(content)
		}
	}
	return tree
}

func testCtx(mode Mode) *Context {
	return &Context{Mode: mode, Log: zerolog.Nop()}
}

// recordSink captures every progress call for assertions.
type recordSink struct {
	totals  []int64
	labels  []string
	handles []*recordHandle
}

func (s *recordSink) Add(total int64, label string) Handle {
	s.totals = append(s.totals, total)
	s.labels = append(s.labels, label)
	h := &recordHandle{}
	s.handles = append(s.handles, h)
	return h
}

type recordHandle struct {
	positions []int64
	finished  bool
}

func (h *recordHandle) SetPosition(n int64) { h.positions = append(h.positions, n) }
func (h *recordHandle) FinishAndClear()     { h.finished = true }

type exitCalled struct{ code int }

// stubExit replaces the process-exit seam so cancellation can be asserted.
// The stub panics with exitCalled to stop the call chain the way a real
// exit would.
func stubExit(t *testing.T) {
	t.Helper()
	prev := osExit
	osExit = func(code int) { panic(exitCalled{code}) }
	t.Cleanup(func() { osExit = prev })
}
