package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// copyBufSize is the chunk size for the buffered fallback copy; progress is
// reported once per chunk.
const copyBufSize = 1 << 20

var errCloneUnsupported = errors.New("copy-on-write clone not supported")

// TransferFile moves or copies one regular file. Strategies are attempted
// cheapest first: an atomic rename (Move) or a copy-on-write clone (Copy),
// then a buffered streaming copy when the primitive fails with a
// cross-device or unsupported condition. Any other OS error is fatal.
//
// The destination-exists-without-force check belongs to ResolveDest and has
// already happened by the time this runs; an existing destination is
// overwritten unconditionally.
func TransferFile(req *Request) (*Outcome, error) {
	ctx := req.Ctx
	start := time.Now()
	ctx.Log.Trace().Str("src", req.Src).Str("dest", req.Dest).Stringer("mode", ctx.Mode).Msg("transfer file")

	info, err := os.Stat(req.Src)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", req.Src, err)
	}
	if err := os.MkdirAll(filepath.Dir(req.Dest), 0o755); err != nil {
		return nil, fmt.Errorf("create parent of %s: %w", req.Dest, err)
	}

	var primitive string
	var primErr error
	switch ctx.Mode {
	case Move:
		primitive = "renamed"
		primErr = os.Rename(req.Src, req.Dest)
	case Copy:
		primitive = "reflinked"
		// The clone primitives want an empty target.
		if _, err := os.Lstat(req.Dest); err == nil {
			if err := os.Remove(req.Dest); err != nil {
				return nil, fmt.Errorf("remove %s: %w", req.Dest, err)
			}
		}
		primErr = cloneFile(req.Src, req.Dest)
	}

	if primErr == nil {
		elapsed := time.Since(start)
		ctx.Log.Debug().Str("src", req.Src).Str("dest", req.Dest).Msgf("%s instantly", primitive)
		return req.outcome(info.Size(), elapsed, primitive), nil
	}

	reason, recoverable := classify(primErr)
	if !recoverable {
		return nil, primErr
	}
	ctx.Log.Debug().Str("src", req.Src).Str("dest", req.Dest).Str("reason", reason).
		Msg("falling back to buffered copy")

	written, err := copyContents(req, info)
	if err != nil {
		return nil, err
	}
	if ctx.Mode == Move {
		if err := os.Remove(req.Src); err != nil {
			return nil, fmt.Errorf("remove %s: %w", req.Src, err)
		}
	}

	elapsed := time.Since(start)
	ctx.Log.Debug().Str("src", req.Src).Str("dest", req.Dest).
		Str("size", HumanBytes(written)).Msgf("%s via buffered copy", ctx.Mode.Past())
	return req.outcome(written, elapsed, "copied"), nil
}

// copyContents streams src into dest through a fixed-size buffer, advancing
// the progress position after every chunk. The final reported position is
// exactly the number of bytes written.
func copyContents(req *Request, info os.FileInfo) (int64, error) {
	in, err := os.Open(req.Src)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", req.Src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(req.Dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", req.Dest, err)
	}

	cursor := req.Cursor
	var handle Handle
	if cursor == nil {
		handle = req.Ctx.sink().Add(info.Size(), filepath.Base(req.Src))
		cursor = &Cursor{Handle: handle}
	}

	buf := make([]byte, copyBufSize)
	var written int64
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				out.Close()
				_ = os.Remove(req.Dest)
				return written, fmt.Errorf("write %s: %w", req.Dest, werr)
			}
			written += int64(n)
			cursor.Advance(written)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			out.Close()
			_ = os.Remove(req.Dest)
			return written, fmt.Errorf("read %s: %w", req.Src, rerr)
		}
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(req.Dest)
		return written, fmt.Errorf("close %s: %w", req.Dest, err)
	}
	_ = os.Chtimes(req.Dest, info.ModTime(), info.ModTime())
	if handle != nil {
		handle.FinishAndClear()
	}
	return written, nil
}

func (r *Request) outcome(bytes int64, elapsed time.Duration, strategy string) *Outcome {
	summary := fmt.Sprintf("%s in %s: %s => %s",
		r.Ctx.Mode.Past(), HumanDuration(elapsed), ShellQuote(r.Src), ShellQuote(r.Dest))
	return &Outcome{Bytes: bytes, Elapsed: elapsed, Strategy: strategy, Summary: summary}
}
