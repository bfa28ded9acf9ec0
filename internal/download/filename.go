package download

import (
	"regexp"

	"github.com/ytget/yt-grabber/internal/platform"
)

var dispositionFilename = regexp.MustCompile(`filename="([^"]+)"`)

// FilenameFromDisposition extracts the first quoted filename="..." token of
// a Content-Disposition header, or returns the default name
func FilenameFromDisposition(header string) string {
	m := dispositionFilename.FindStringSubmatch(header)
	if m == nil {
		return platform.DefaultFileName
	}
	return m[1]
}
