package transfer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// MergeDir reconciles srcDir into destDir: missing destination directories
// are created, each regular file is handed to TransferFile, and on Move the
// emptied source tree is removed bottom-up once everything has transferred.
// Destination entries with no corresponding source entry are left untouched.
//
// Traversal is deterministic: entries at each level are processed in
// lexicographic order, so repeated runs over the same tree state produce
// the same operation sequence. Cancellation is polled once per top-level
// entry, never mid-file.
func MergeDir(srcDir, destDir string, ctx *Context) (*Outcome, error) {
	start := time.Now()
	ctx.Log.Trace().Str("src", srcDir).Str("dest", destDir).Stringer("mode", ctx.Mode).Msg("merge directory")

	srcInfo, err := os.Stat(srcDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", srcDir, ErrSourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", srcDir, err)
	}
	if !srcInfo.IsDir() {
		return nil, fmt.Errorf("%s: %w", srcDir, ErrSourceWrongType)
	}
	if destInfo, err := os.Stat(destDir); err == nil {
		if !destInfo.IsDir() {
			return nil, fmt.Errorf("%s: %w", destDir, ErrDestinationKindMismatch)
		}
	} else if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", destDir, err)
	}

	total, err := treeSize(srcDir)
	if err != nil {
		return nil, err
	}

	handle := ctx.sink().Add(total, ctx.Mode.Gerund()+" "+filepath.Base(srcDir))
	defer handle.FinishAndClear()

	m := &merger{ctx: ctx, handle: handle}
	top, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", srcDir, err)
	}
	for _, entry := range top {
		srcPath := filepath.Join(srcDir, entry.Name())
		ctx.pollCancel(srcPath)
		if err := m.mergeEntry(srcPath, filepath.Join(destDir, entry.Name()), entry); err != nil {
			return nil, err
		}
	}

	if ctx.Mode == Move {
		if err := removeEmptyDirs(srcDir, ctx); err != nil {
			return nil, err
		}
	}

	elapsed := time.Since(start)
	summary := fmt.Sprintf("Merged in %s: %s => %s",
		HumanDuration(elapsed), ShellQuote(srcDir), ShellQuote(destDir))
	return &Outcome{Bytes: m.processed, Elapsed: elapsed, Strategy: "merged", Summary: summary}, nil
}

type merger struct {
	ctx       *Context
	handle    Handle
	processed int64
}

type mergeTask struct {
	src   string
	dest  string
	entry fs.DirEntry
}

// mergeEntry walks one top-level entry with an explicit work stack instead
// of recursing, so arbitrarily deep trees cannot exhaust the call stack.
// Children are pushed in reverse name order to keep the processing sequence
// lexicographic.
func (m *merger) mergeEntry(src, dest string, entry fs.DirEntry) error {
	stack := []mergeTask{{src: src, dest: dest, entry: entry}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case task.entry.IsDir():
			if info, err := os.Stat(task.dest); err == nil && !info.IsDir() {
				return fmt.Errorf("%s: %w", task.dest, ErrDestinationKindMismatch)
			}
			if err := os.MkdirAll(task.dest, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", task.dest, err)
			}
			children, err := os.ReadDir(task.src)
			if err != nil {
				return fmt.Errorf("read %s: %w", task.src, err)
			}
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, mergeTask{
					src:   filepath.Join(task.src, children[i].Name()),
					dest:  filepath.Join(task.dest, children[i].Name()),
					entry: children[i],
				})
			}
		case task.entry.Type()&fs.ModeSymlink != 0:
			if err := m.transferSymlink(task.src, task.dest); err != nil {
				return err
			}
		case task.entry.Type().IsRegular():
			if err := m.transferFile(task.src, task.dest); err != nil {
				return err
			}
		default:
			m.ctx.Log.Warn().Str("path", task.src).Msg("skipping special file")
		}
	}
	return nil
}

func (m *merger) transferFile(src, dest string) error {
	if info, err := os.Lstat(dest); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s: %w", dest, ErrDestinationKindMismatch)
		}
		if !m.ctx.Force {
			return fmt.Errorf("%s: %w", dest, ErrDestinationExists)
		}
	}

	out, err := TransferFile(&Request{
		Src:    src,
		Dest:   dest,
		Ctx:    m.ctx,
		Cursor: &Cursor{Base: m.processed, Handle: m.handle},
	})
	if err != nil {
		return err
	}
	m.processed += out.Bytes
	m.handle.SetPosition(m.processed)
	return nil
}

// transferSymlink recreates the link at the destination rather than
// following it.
func (m *merger) transferSymlink(src, dest string) error {
	if _, err := os.Lstat(dest); err == nil {
		if !m.ctx.Force {
			return fmt.Errorf("%s: %w", dest, ErrDestinationExists)
		}
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("remove %s: %w", dest, err)
		}
	}
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("readlink %s: %w", src, err)
	}
	if err := os.Symlink(target, dest); err != nil {
		return fmt.Errorf("symlink %s: %w", dest, err)
	}
	if m.ctx.Mode == Move {
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("remove %s: %w", src, err)
		}
	}
	return nil
}

// treeSize sums the byte length of every regular file under root, driving
// one aggregate progress bar for the whole merge.
func treeSize(root string) (int64, error) {
	var total int64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walk %s: %w", root, err)
	}
	return total, nil
}

// removeEmptyDirs removes root and every emptied subdirectory, deepest
// first. It is called only after all contents have been confirmed
// transferred; a directory still holding entries at this point (a skipped
// special file) is left in place rather than failing the merge.
func removeEmptyDirs(root string, ctx *Context) error {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil {
			return fmt.Errorf("read %s: %w", dirs[i], err)
		}
		if len(entries) > 0 {
			ctx.Log.Debug().Str("path", dirs[i]).Msg("leaving non-empty directory")
			continue
		}
		if err := os.Remove(dirs[i]); err != nil {
			return fmt.Errorf("remove %s: %w", dirs[i], err)
		}
		ctx.Log.Debug().Str("path", dirs[i]).Msg("removed empty directory")
	}
	return nil
}
