// Package transfer moves or copies filesystem entries between two paths,
// picking the cheapest OS primitive available (rename, copy-on-write clone)
// and falling back to a buffered streaming copy across devices. It covers
// single files, recursive directory merges, and batches of either.
package transfer

import (
	"time"

	"github.com/rs/zerolog"
)

// Mode selects between relocating and duplicating entries.
type Mode int

const (
	Move Mode = iota
	Copy
)

func (m Mode) String() string {
	if m == Copy {
		return "copy"
	}
	return "move"
}

// Gerund is the in-progress verb for status labels ("Moving", "Copying").
func (m Mode) Gerund() string {
	if m == Copy {
		return "Copying"
	}
	return "Moving"
}

// Past is the completed verb for summary lines ("Moved", "Copied").
func (m Mode) Past() string {
	if m == Copy {
		return "Copied"
	}
	return "Moved"
}

// Context is the configuration bundle threaded through one invocation.
// It is constructed once per batch and passed by pointer to every layer;
// nothing in this package reads ambient global state.
type Context struct {
	Mode   Mode
	Force  bool
	DryRun bool
	Sink   Sink
	Token  *Token
	Log    zerolog.Logger

	// Report, when set, receives each completed source's summary line as
	// soon as it is available, ahead of the joined batch result.
	Report func(line string)
}

func (c *Context) report(line string) {
	if c.Report != nil {
		c.Report(line)
	}
}

func (c *Context) sink() Sink {
	if c.Sink == nil {
		return NopSink{}
	}
	return c.Sink
}

// Request is one resolved (source, destination) pair. Cursor is non-nil
// when the file is part of a directory merge and its byte progress should
// advance the merge's aggregate bar instead of a standalone one.
type Request struct {
	Src    string
	Dest   string
	Ctx    *Context
	Cursor *Cursor
}

// Outcome describes one completed transfer.
type Outcome struct {
	Bytes    int64
	Elapsed  time.Duration
	Strategy string
	Summary  string
}
