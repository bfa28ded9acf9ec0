package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ytget/yt-grabber/internal/model"
)

func TestPrintFormats(t *testing.T) {
	var buf bytes.Buffer
	video := model.VideoRef{ID: "abc123", Title: "Demo"}
	formats := []model.FormatDescriptor{
		{FormatID: "22", Ext: "mp4", Resolution: "1280x720", FileSize: "10MB", HasVideo: true, HasAudio: true},
		{FormatID: "140", Ext: "m4a", FormatNote: "medium", HasAudio: true},
	}

	printFormats(&buf, video, formats)
	out := buf.String()

	for _, want := range []string{"Demo [abc123]", "ID", "1280x720 (mp4)", "10MB", "medium (m4a)", "audio"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if got := lines[len(lines)-1]; !strings.HasSuffix(strings.TrimSpace(got), "-") {
		t.Errorf("Unknown size should print as -, got %q", got)
	}
}
