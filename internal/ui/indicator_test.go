package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-grabber/internal/progress"
)

func TestProgressIndicator_Modes(t *testing.T) {
	test.NewApp()
	p := NewProgressIndicator()

	if p.Mode() != IndicatorHidden {
		t.Fatalf("Expected hidden indicator, got %v", p.Mode())
	}

	p.Busy()
	if p.Mode() != IndicatorBusy || p.Percent() != 0 {
		t.Errorf("Expected busy at 0, got %v at %d", p.Mode(), p.Percent())
	}

	p.SetPercent(42)
	if p.Mode() != IndicatorDeterminate || p.Percent() != 42 {
		t.Errorf("Expected determinate at 42, got %v at %d", p.Mode(), p.Percent())
	}

	p.SetPercent(150)
	if p.Percent() != 100 {
		t.Errorf("Expected clamp to 100, got %d", p.Percent())
	}

	p.Stop()
	if p.Mode() != IndicatorHidden || p.Percent() != 0 {
		t.Errorf("Expected hidden at 0, got %v at %d", p.Mode(), p.Percent())
	}
}

func TestProgressIndicator_DrivenByReporter(t *testing.T) {
	test.NewApp()
	p := NewProgressIndicator()
	r := progress.NewReporter(p)

	r.Busy()
	r.OnBytes(50, -1)
	if p.Mode() != IndicatorBusy {
		t.Errorf("Unknown total should keep busy mode, got %v", p.Mode())
	}

	r.OnBytes(25, 100)
	if p.Mode() != IndicatorDeterminate || p.Percent() != 25 {
		t.Errorf("Expected 25%%, got %v at %d", p.Mode(), p.Percent())
	}

	r.Stop()
	if p.Mode() != IndicatorHidden {
		t.Errorf("Expected hidden after stop, got %v", p.Mode())
	}
}
