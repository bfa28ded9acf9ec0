package progress

import (
	"context"
	"io"
	"sync"

	"github.com/vbauerster/mpb/v6"
	"github.com/vbauerster/mpb/v6/decor"
)

// Bar layout
const (
	TerminalWidth    = 64
	TerminalBarWidth = 40
	percentTotal     = 100
)

// Terminal draws the indicator as an mpb bar. A busy phase is an elapsed
// timer; a determinate phase is a percentage bar.
type Terminal struct {
	mu          sync.Mutex
	progress    *mpb.Progress
	bar         *mpb.Bar
	name        string
	determinate bool
}

// NewTerminal creates a terminal indicator writing to w
func NewTerminal(ctx context.Context, w io.Writer, name string) *Terminal {
	return &Terminal{
		progress: mpb.NewWithContext(ctx,
			mpb.WithWidth(TerminalWidth),
			mpb.WithOutput(w),
		),
		name: name,
	}
}

// SetName changes the label used by the next bar
func (t *Terminal) SetName(name string) {
	t.mu.Lock()
	t.name = name
	t.mu.Unlock()
}

// Busy shows an elapsed timer until a percentage is known
func (t *Terminal) Busy() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dropLocked()
	t.bar = t.progress.AddBar(0,
		mpb.BarWidth(TerminalBarWidth),
		mpb.PrependDecorators(decor.Name(t.name, decor.WC{W: len(t.name) + 1, C: decor.DidentRight})),
		mpb.AppendDecorators(decor.Elapsed(decor.ET_STYLE_GO)),
	)
	t.determinate = false
}

// SetPercent moves the determinate bar, replacing the busy one if needed
func (t *Terminal) SetPercent(percent int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bar == nil || !t.determinate {
		t.dropLocked()
		t.bar = t.progress.AddBar(percentTotal,
			mpb.BarWidth(TerminalBarWidth),
			mpb.PrependDecorators(decor.Name(t.name, decor.WC{W: len(t.name) + 1, C: decor.DidentRight})),
			mpb.AppendDecorators(decor.Percentage(decor.WC{W: 5})),
		)
		t.determinate = true
	}
	t.bar.SetCurrent(int64(percent))
}

// Stop removes the current bar
func (t *Terminal) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dropLocked()
}

// Wait flushes the container; call once after the last Stop
func (t *Terminal) Wait() {
	t.progress.Wait()
}

func (t *Terminal) dropLocked() {
	if t.bar != nil {
		t.bar.Abort(!t.determinate)
		t.bar = nil
	}
	t.determinate = false
}
