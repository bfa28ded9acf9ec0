package progress

import (
	"math"
	"sync"
)

// Indicator is the visual side of progress reporting
type Indicator interface {
	// Busy switches to an indeterminate animation
	Busy()
	// SetPercent shows a determinate fill, 0 to 100
	SetPercent(percent int)
	// Stop hides the indicator
	Stop()
}

// Reporter normalizes byte counts into a percentage and forwards it to an Indicator
type Reporter struct {
	mu        sync.Mutex
	indicator Indicator
	percent   int
	running   bool
	owner     uint64 // bumped by every Busy and TryBusy
}

// NewReporter creates a reporter; a nil indicator is replaced by Noop
func NewReporter(indicator Indicator) *Reporter {
	if indicator == nil {
		indicator = Noop{}
	}
	return &Reporter{indicator: indicator}
}

// Busy starts the indeterminate mode and resets the percentage
func (r *Reporter) Busy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.percent = 0
	r.running = true
	r.owner++
	r.indicator.Busy()
}

// TryBusy starts the indeterminate mode only when the indicator is idle.
// It returns a token for Release and false when someone else shows progress.
func (r *Reporter) TryBusy() (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return 0, false
	}
	r.percent = 0
	r.running = true
	r.owner++
	r.indicator.Busy()
	return r.owner, true
}

// Release stops the indicator if token still owns it. A later Busy takes
// ownership, so a stale Release leaves the newer progress untouched.
func (r *Reporter) Release(token uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running || r.owner != token {
		return
	}
	r.percent = 0
	r.running = false
	r.indicator.Stop()
}

// OnBytes records a transfer tick. A non-positive total means the size is
// unknown: the tick is ignored and the indicator keeps its busy mode.
func (r *Reporter) OnBytes(loaded, total int64) {
	if total <= 0 {
		return
	}

	percent := Percent(loaded, total)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.percent = percent
	r.indicator.SetPercent(percent)
}

// Percent returns the last computed percentage
func (r *Reporter) Percent() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.percent
}

// Running reports whether the indicator is currently shown
func (r *Reporter) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Stop hides the indicator and resets the percentage to 0
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.percent = 0
	r.running = false
	r.indicator.Stop()
}

// Percent computes round(loaded*100/total) clamped to [0,100]; 0 when total is unknown
func Percent(loaded, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(loaded) * 100 / float64(total)))
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
