package platform

import (
	"fmt"
	"log"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// Delivery defaults
const (
	DefaultFileName  = "download.mp4"
	DefaultMimeType  = "video/mp4"
	DefaultExtension = ".mp4"

	// TempFilePattern names the transient file a payload is staged in
	TempFilePattern = ".ytgrab-*.part"

	// MaxNameAttempts bounds the "name (n).ext" search
	MaxNameAttempts = 1000
)

// Extensions for the media types the service is known to send. The system
// mime table often lacks video types, so these are checked first.
var knownExtensions = map[string]string{
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
	"video/3gpp": ".3gp",
	"audio/mp4":  ".m4a",
	"audio/mpeg": ".mp3",
	"audio/webm": ".weba",
	"audio/ogg":  ".ogg",
}

// invalidNameChars are replaced in delivered file names
const invalidNameChars = `<>:"/\|?*`

// FileDelivery saves completed payloads into a download directory
type FileDelivery struct {
	mu  sync.RWMutex
	dir string
}

// NewFileDelivery creates a delivery into dir
func NewFileDelivery(dir string) *FileDelivery {
	return &FileDelivery{dir: dir}
}

// Dir returns the target directory
func (d *FileDelivery) Dir() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dir
}

// SetDirectory changes the target directory for later deliveries
func (d *FileDelivery) SetDirectory(dir string) {
	d.mu.Lock()
	d.dir = dir
	d.mu.Unlock()
}

// Deliver writes data under filename and returns the final path. The bytes
// are staged in a transient file that is released before Deliver returns,
// whether or not the save succeeds. Existing files are never overwritten.
func (d *FileDelivery) Deliver(data []byte, filename, mimeType string) (string, error) {
	dir := d.Dir()
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	name := SanitizeFileName(filename, mimeType)

	tmp, err := os.CreateTemp(dir, TempFilePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create transient file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write transient file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close transient file: %w", err)
	}
	if err := os.Chmod(tmpPath, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}

	target, err := availablePath(dir, name)
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}

	log.Printf("Delivery: saved %s (%d bytes)", target, len(data))
	return target, nil
}

// SanitizeFileName reduces a suggested name to a safe base name. A name
// without extension gets one derived from mimeType.
func SanitizeFileName(filename, mimeType string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), `\`, "/"))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(invalidNameChars, r) {
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, " .")

	if name == "" {
		return DefaultFileName
	}
	if filepath.Ext(name) == "" {
		name += ExtensionForType(mimeType)
	}
	return name
}

// ExtensionForType maps a media type to a file extension, defaulting to .mp4
func ExtensionForType(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return DefaultExtension
	}
	if ext, ok := knownExtensions[mediaType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return DefaultExtension
}

// availablePath returns dir/name, or dir/"name (n).ext" when taken
func availablePath(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i < MaxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		p := filepath.Join(dir, candidate)
		if _, err := os.Lstat(p); os.IsNotExist(err) {
			return p, nil
		}
	}
	return "", fmt.Errorf("no free file name for %s in %s", name, dir)
}
