package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// IndicatorMode is what the progress indicator currently shows
type IndicatorMode int

const (
	IndicatorHidden IndicatorMode = iota
	IndicatorBusy
	IndicatorDeterminate
)

// ProgressIndicator renders progress under the URL row: an infinite bar while
// the size is unknown, a percentage bar once it is. It is safe to call from
// any goroutine; widget changes are posted with fyne.Do.
type ProgressIndicator struct {
	mu      sync.Mutex
	mode    IndicatorMode
	percent int

	bar     *widget.ProgressBar
	spinner *widget.ProgressBarInfinite
	content *fyne.Container
}

// NewProgressIndicator creates a hidden indicator
func NewProgressIndicator() *ProgressIndicator {
	p := &ProgressIndicator{
		bar:     widget.NewProgressBar(),
		spinner: widget.NewProgressBarInfinite(),
	}
	p.bar.Max = 100
	p.bar.TextFormatter = func() string {
		return fmt.Sprintf(ProgressLabelFormat, int(p.bar.Value))
	}
	p.spinner.Stop()
	p.bar.Hide()
	p.spinner.Hide()
	p.content = container.NewStack(p.bar, p.spinner)
	p.content.Hide()
	return p
}

// Content returns the canvas object to place in the layout
func (p *ProgressIndicator) Content() fyne.CanvasObject {
	return p.content
}

// Busy shows the infinite bar
func (p *ProgressIndicator) Busy() {
	p.set(IndicatorBusy, 0)
}

// SetPercent shows the percentage bar
func (p *ProgressIndicator) SetPercent(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p.set(IndicatorDeterminate, percent)
}

// Stop hides the indicator
func (p *ProgressIndicator) Stop() {
	p.set(IndicatorHidden, 0)
}

// Mode returns the current mode
func (p *ProgressIndicator) Mode() IndicatorMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Percent returns the shown percentage
func (p *ProgressIndicator) Percent() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.percent
}

func (p *ProgressIndicator) set(mode IndicatorMode, percent int) {
	p.mu.Lock()
	p.mode = mode
	p.percent = percent
	p.mu.Unlock()

	fyne.Do(p.render)
}

// render applies the latest state; it runs on the UI goroutine
func (p *ProgressIndicator) render() {
	mode, percent := p.Mode(), p.Percent()

	switch mode {
	case IndicatorBusy:
		p.bar.Hide()
		p.spinner.Show()
		p.spinner.Start()
		p.content.Show()
	case IndicatorDeterminate:
		p.spinner.Stop()
		p.spinner.Hide()
		p.bar.SetValue(float64(percent))
		p.bar.Show()
		p.content.Show()
	default:
		p.spinner.Stop()
		p.spinner.Hide()
		p.bar.SetValue(0)
		p.bar.Hide()
		p.content.Hide()
	}
}
