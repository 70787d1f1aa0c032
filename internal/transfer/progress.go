package transfer

// Sink receives numeric progress from the engine. Rendering lives outside
// this package; the engine only reports totals, positions, and short labels.
type Sink interface {
	Add(total int64, label string) Handle
}

// Handle is one live progress bar. Positions are cumulative bytes and are
// monotonically non-decreasing; the fallback copy path drives the position
// to exactly the byte total before finishing.
type Handle interface {
	SetPosition(n int64)
	FinishAndClear()
}

// NopSink discards all progress. Used for quiet and dry runs, and whenever
// no sink was configured.
type NopSink struct{}

func (NopSink) Add(int64, string) Handle { return nopHandle{} }

type nopHandle struct{}

func (nopHandle) SetPosition(int64) {}
func (nopHandle) FinishAndClear() {}

// Cursor offsets a file's byte progress into a larger aggregate bar, so a
// merge shows one bar spanning the whole tree while each file still reports
// its own cumulative count.
type Cursor struct {
	Base   int64
	Handle Handle
}

func (c *Cursor) Advance(n int64) {
	c.Handle.SetPosition(c.Base + n)
}
