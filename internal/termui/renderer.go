// Package termui renders progress and result lines for the transfer core.
// The core only reports numeric positions and short labels; everything
// visual lives here.
package termui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/mvxtool/mvx/internal/transfer"
)

const (
	barWidth       = 40
	renderInterval = 100 * time.Millisecond
	fallbackWidth  = 80
)

// Renderer draws a single-line progress bar on a terminal, redrawing in
// place with carriage returns. It implements transfer.Sink. On a
// non-terminal writer it renders nothing.
type Renderer struct {
	out     *os.File
	enabled bool

	mu        sync.Mutex
	termWidth int
}

func NewRenderer(out *os.File) *Renderer {
	r := &Renderer{
		out:     out,
		enabled: isatty.IsTerminal(out.Fd()),
	}
	r.updateWidth()
	r.watchResize()
	return r
}

func (r *Renderer) Add(total int64, label string) transfer.Handle {
	if !r.enabled {
		return transfer.NopSink{}.Add(total, label)
	}
	return &bar{
		r:     r,
		total: total,
		label: label,
		start: time.Now(),
	}
}

func (r *Renderer) updateWidth() {
	w, _, err := term.GetSize(int(r.out.Fd()))
	if err != nil || w <= 0 {
		w = fallbackWidth
	}
	r.mu.Lock()
	r.termWidth = w
	r.mu.Unlock()
}

func (r *Renderer) width() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.termWidth
}

type bar struct {
	r        *Renderer
	total    int64
	label    string
	start    time.Time
	pos      int64
	lastDraw time.Time
	finished bool
}

// SetPosition records cumulative progress and redraws, throttled so fast
// small chunks do not flood the terminal. The final position always draws.
func (b *bar) SetPosition(n int64) {
	if b.finished {
		return
	}
	b.pos = n
	now := time.Now()
	if n < b.total && now.Sub(b.lastDraw) < renderInterval {
		return
	}
	b.lastDraw = now
	b.draw()
}

func (b *bar) FinishAndClear() {
	if b.finished {
		return
	}
	b.finished = true
	fmt.Fprint(b.r.out, "\r\033[K")
}

func (b *bar) draw() {
	elapsed := time.Since(b.start).Seconds()
	var rate float64
	if elapsed > 0 {
		rate = float64(b.pos) / elapsed
	}

	status := fmt.Sprintf("[%s] %s/%s | %s/s",
		asciiBar(b.pos, b.total, barWidth),
		transfer.HumanBytes(b.pos),
		transfer.HumanBytes(b.total),
		transfer.HumanBytes(int64(rate)),
	)

	remaining := b.r.width() - len(status) - 4
	if remaining > 10 && b.label != "" {
		status += " | " + truncateMiddle(b.label, remaining)
	}

	// Assume the line is either empty or previous progress being overwritten.
	fmt.Fprint(b.r.out, "\r"+status+"\033[K")
}

func asciiBar(pos, total int64, width int) string {
	filled := 0
	if total > 0 {
		filled = int(pos * int64(width) / total)
	}
	if filled > width {
		filled = width
	}
	out := make([]byte, width)
	for i := range out {
		switch {
		case i < filled:
			out[i] = '='
		case i == filled:
			out[i] = '>'
		default:
			out[i] = ' '
		}
	}
	return string(out)
}
