package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// VideoRef identifies the video the catalog was resolved for
type VideoRef struct {
	URL   string `json:"url"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

// IsZero reports whether no video has been resolved
func (v VideoRef) IsZero() bool {
	return v == VideoRef{}
}

// MediaKind tells which streams a format carries
type MediaKind string

const (
	KindVideo   MediaKind = "video"
	KindAudio   MediaKind = "audio"
	KindUnknown MediaKind = "unknown"
)

// SizeLabel is the approximate size of a format as reported by the service.
// The service sends either a ready label ("10MB") or a byte count.
type SizeLabel string

// UnmarshalJSON accepts a string, a number of bytes, or null
func (s *SizeLabel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SizeLabel(str)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("filesize: %w", err)
	}
	if n <= 0 || math.IsNaN(n) {
		*s = ""
		return nil
	}
	*s = SizeLabel(humanize.Bytes(uint64(n)))
	return nil
}

// String returns the label text
func (s SizeLabel) String() string {
	return string(s)
}

// FormatDescriptor is one downloadable variant of a video
type FormatDescriptor struct {
	FormatID   string    `json:"format_id"`
	Ext        string    `json:"ext"`
	Resolution string    `json:"resolution,omitempty"`
	FormatNote string    `json:"format_note,omitempty"`
	FileSize   SizeLabel `json:"filesize,omitempty"`
	HasAudio   bool      `json:"hasAudio"`
	HasVideo   bool      `json:"hasVideo"`
}

// Kind returns video when a video stream is present, audio for audio-only formats
func (f FormatDescriptor) Kind() MediaKind {
	switch {
	case f.HasVideo:
		return KindVideo
	case f.HasAudio:
		return KindAudio
	default:
		return KindUnknown
	}
}

// Label returns resolution (or format note) followed by the container in parentheses
func (f FormatDescriptor) Label() string {
	name := strings.TrimSpace(f.Resolution)
	if name == "" {
		name = strings.TrimSpace(f.FormatNote)
	}
	if f.Ext == "" {
		return name
	}
	if name == "" {
		return "(" + f.Ext + ")"
	}
	return name + " (" + f.Ext + ")"
}
