package model

import (
	"encoding/json"
	"testing"
)

func TestFormatDescriptor_Label(t *testing.T) {
	tests := []struct {
		name     string
		format   FormatDescriptor
		expected string
	}{
		{
			name:     "resolution takes precedence",
			format:   FormatDescriptor{Resolution: "1280x720", FormatNote: "720p", Ext: "mp4"},
			expected: "1280x720 (mp4)",
		},
		{
			name:     "falls back to format note",
			format:   FormatDescriptor{FormatNote: "medium", Ext: "webm"},
			expected: "medium (webm)",
		},
		{
			name:     "only extension",
			format:   FormatDescriptor{Ext: "mp4"},
			expected: "(mp4)",
		},
		{
			name:     "no extension",
			format:   FormatDescriptor{Resolution: "audio only"},
			expected: "audio only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Label(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatDescriptor_Kind(t *testing.T) {
	tests := []struct {
		hasAudio bool
		hasVideo bool
		expected MediaKind
	}{
		{true, true, KindVideo},
		{false, true, KindVideo},
		{true, false, KindAudio},
		{false, false, KindUnknown},
	}

	for _, test := range tests {
		f := FormatDescriptor{HasAudio: test.hasAudio, HasVideo: test.hasVideo}
		if got := f.Kind(); got != test.expected {
			t.Errorf("Kind() with audio=%v video=%v = %s, expected %s", test.hasAudio, test.hasVideo, got, test.expected)
		}
	}
}

func TestFormatDescriptor_UnmarshalWire(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		expectedSize SizeLabel
	}{
		{
			name:         "string size",
			payload:      `{"format_id":"18","ext":"mp4","hasVideo":true,"hasAudio":true,"filesize":"10MB"}`,
			expectedSize: "10MB",
		},
		{
			name:         "numeric size",
			payload:      `{"format_id":"18","ext":"mp4","hasVideo":true,"hasAudio":true,"filesize":10000000}`,
			expectedSize: "10 MB",
		},
		{
			name:         "null size",
			payload:      `{"format_id":"18","ext":"mp4","hasVideo":true,"hasAudio":true,"filesize":null}`,
			expectedSize: "",
		},
		{
			name:         "missing size",
			payload:      `{"format_id":"18","ext":"mp4","hasVideo":true,"hasAudio":true}`,
			expectedSize: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FormatDescriptor
			if err := json.Unmarshal([]byte(tt.payload), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.FormatID != "18" || f.Ext != "mp4" || !f.HasAudio || !f.HasVideo {
				t.Errorf("unexpected descriptor: %+v", f)
			}
			if f.FileSize != tt.expectedSize {
				t.Errorf("expected size %q, got %q", tt.expectedSize, f.FileSize)
			}
		})
	}
}

func TestSizeLabel_InvalidJSON(t *testing.T) {
	var f FormatDescriptor
	if err := json.Unmarshal([]byte(`{"filesize":true}`), &f); err == nil {
		t.Error("expected error for boolean filesize")
	}
}

func TestVideoRef_IsZero(t *testing.T) {
	if !(VideoRef{}).IsZero() {
		t.Error("empty ref should be zero")
	}
	if (VideoRef{ID: "abc"}).IsZero() {
		t.Error("ref with id should not be zero")
	}
}
