package transfer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RunBatch validates and sequences transfers of every source into dest.
// Sources are processed in the order given; validation happens before any
// filesystem mutation, so a batch rejected here never partially executes.
// Each completed source's summary line is logged immediately and the joined
// summary is returned.
func RunBatch(sources []string, dest string, ctx *Context) (string, error) {
	ctx.Log.Trace().Strs("sources", sources).Str("dest", dest).Stringer("mode", ctx.Mode).Msg("run batch")
	start := time.Now()

	isDir := make([]bool, len(sources))
	for i, src := range sources {
		info, err := os.Stat(src)
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", src, ErrSourceNotFound)
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", src, err)
		}
		if !info.IsDir() && !info.Mode().IsRegular() {
			return "", fmt.Errorf("%s: %w", src, ErrInvalidSource)
		}
		isDir[i] = info.IsDir()
	}

	if len(sources) > 1 {
		if info, err := os.Stat(dest); err != nil || !info.IsDir() {
			return "", fmt.Errorf("%s: %w", dest, ErrDirDestRequired)
		}
		for _, d := range isDir[1:] {
			if d != isDir[0] {
				return "", ErrMixedSources
			}
		}
	}

	if ctx.DryRun {
		return dryRun(sources, dest, isDir, ctx), nil
	}

	var stats batchStats
	var lines []string
	for i, src := range sources {
		ctx.pollCancel(src)

		resolved, err := ResolveDest(src, dest, ctx.Force)
		if err != nil {
			return strings.Join(lines, "\n"), err
		}

		var outcome *Outcome
		if isDir[i] {
			outcome, err = MergeDir(src, resolved, ctx)
		} else {
			outcome, err = TransferFile(&Request{Src: src, Dest: resolved, Ctx: ctx})
		}
		if err != nil {
			return strings.Join(lines, "\n"), err
		}

		stats.record(isDir[i], outcome.Bytes)
		ctx.report(outcome.Summary)
		lines = append(lines, outcome.Summary)
	}

	ctx.Log.Debug().Msg(stats.render(time.Since(start)))
	return strings.Join(lines, "\n"), nil
}

// dryRun reports the intended action and destination for every source
// without touching the filesystem.
func dryRun(sources []string, dest string, isDir []bool, ctx *Context) string {
	var lines []string
	for i, src := range sources {
		action := ctx.Mode.String()
		if isDir[i] {
			action = "merge"
		}
		line := fmt.Sprintf("would %s %s => %s",
			action, ShellQuote(src), ShellQuote(intendedDest(src, dest)))
		ctx.report(line)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// intendedDest derives the destination a source would resolve to, without
// the existence and policy checks of ResolveDest: dry runs succeed
// unconditionally once batch validation has passed.
func intendedDest(src, dest string) string {
	if info, err := os.Stat(dest); (err == nil && info.IsDir()) || (errors.Is(err, fs.ErrNotExist) && hasTrailingSeparator(dest)) {
		return filepath.Join(dest, filepath.Base(filepath.Clean(src)))
	}
	return dest
}

type batchStats struct {
	files int64
	dirs  int64
	bytes int64
}

func (s *batchStats) record(isDir bool, bytes int64) {
	if isDir {
		s.dirs++
	} else {
		s.files++
	}
	s.bytes += bytes
}

func (s *batchStats) render(elapsed time.Duration) string {
	plural := "files"
	if s.files == 1 {
		plural = "file"
	}
	return fmt.Sprintf("%d %s, %d directories, %s in %s",
		s.files, plural, s.dirs, HumanBytes(s.bytes), HumanDuration(elapsed))
}
