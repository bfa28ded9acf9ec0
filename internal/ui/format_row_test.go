package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-grabber/internal/model"
)

func TestKindIcon(t *testing.T) {
	tests := []struct {
		format   model.FormatDescriptor
		expected string
	}{
		{model.FormatDescriptor{HasVideo: true, HasAudio: true}, IconVideo},
		{model.FormatDescriptor{HasVideo: true}, IconVideo},
		{model.FormatDescriptor{HasAudio: true}, IconAudio},
		{model.FormatDescriptor{}, IconUnknown},
	}

	for _, tt := range tests {
		if got := KindIcon(tt.format.Kind()); got != tt.expected {
			t.Errorf("KindIcon(%+v) = %s, want %s", tt.format, got, tt.expected)
		}
	}
}

func TestFormatRow_Update(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	row := NewFormatRow(l)

	f := model.FormatDescriptor{FormatID: "22", Ext: "mp4", Resolution: "1280x720", FileSize: "10MB", HasVideo: true, HasAudio: true}

	row.Update(f, false, false)
	if row.nameLabel.Text != "1280x720 (mp4)" {
		t.Errorf("Unexpected label %q", row.nameLabel.Text)
	}
	if row.sizeLabel.Text != "10MB" {
		t.Errorf("Unexpected size %q", row.sizeLabel.Text)
	}
	if row.downloadBtn.Disabled() {
		t.Error("Button should be enabled while idle")
	}

	row.Update(f, true, true)
	if !row.downloadBtn.Disabled() {
		t.Error("Button should be disabled while busy")
	}
	if row.downloadBtn.Text != l.GetText(KeyDownloading) {
		t.Errorf("Active row should read %q, got %q", l.GetText(KeyDownloading), row.downloadBtn.Text)
	}

	row.Update(model.FormatDescriptor{FormatID: "140", Ext: "m4a", HasAudio: true}, true, false)
	if row.downloadBtn.Text != l.GetText(KeyDownload) {
		t.Errorf("Inactive row should read %q, got %q", l.GetText(KeyDownload), row.downloadBtn.Text)
	}
	if row.sizeLabel.Text != l.GetText(KeySizeUnknown) {
		t.Errorf("Expected unknown size text, got %q", row.sizeLabel.Text)
	}
}

func TestFormatRow_TapCallsOnDownload(t *testing.T) {
	test.NewApp()
	row := NewFormatRow(NewLocalization())

	var got string
	row.OnDownload = func(id string) { got = id }
	row.Update(model.FormatDescriptor{FormatID: "18", Ext: "mp4"}, false, false)

	test.Tap(row.downloadBtn)
	if got != "18" {
		t.Errorf("Expected OnDownload(18), got %q", got)
	}

	got = ""
	row.Update(model.FormatDescriptor{FormatID: "18", Ext: "mp4"}, true, false)
	test.Tap(row.downloadBtn)
	if got != "" {
		t.Errorf("Disabled button should not call OnDownload, got %q", got)
	}
}
