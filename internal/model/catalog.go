package model

import (
	"log"
	"sync"
)

// FormatCatalog holds the formats of the currently resolved video.
// Video and formats are always replaced together so the catalog never
// mixes two resolutions.
type FormatCatalog struct {
	mu      sync.RWMutex
	video   VideoRef
	formats []FormatDescriptor
}

// NewFormatCatalog creates an empty catalog
func NewFormatCatalog() *FormatCatalog {
	return &FormatCatalog{}
}

// Replace swaps in a new resolution. Duplicate format ids keep their first occurrence.
func (c *FormatCatalog) Replace(video VideoRef, formats []FormatDescriptor) {
	seen := make(map[string]struct{}, len(formats))
	list := make([]FormatDescriptor, 0, len(formats))
	for _, f := range formats {
		if _, dup := seen[f.FormatID]; dup {
			log.Printf("Catalog: dropping duplicate format %q for video %s", f.FormatID, video.ID)
			continue
		}
		seen[f.FormatID] = struct{}{}
		list = append(list, f)
	}

	c.mu.Lock()
	c.video = video
	c.formats = list
	c.mu.Unlock()
}

// Clear drops the current resolution
func (c *FormatCatalog) Clear() {
	c.mu.Lock()
	c.video = VideoRef{}
	c.formats = nil
	c.mu.Unlock()
}

// Video returns the resolved video, zero if none
func (c *FormatCatalog) Video() VideoRef {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.video
}

// Formats returns a copy of the formats list
func (c *FormatCatalog) Formats() []FormatDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]FormatDescriptor, len(c.formats))
	copy(out, c.formats)
	return out
}

// Snapshot returns the video and its formats read under one lock
func (c *FormatCatalog) Snapshot() (VideoRef, []FormatDescriptor) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]FormatDescriptor, len(c.formats))
	copy(out, c.formats)
	return c.video, out
}

// Lookup finds a format by id
func (c *FormatCatalog) Lookup(formatID string) (FormatDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, f := range c.formats {
		if f.FormatID == formatID {
			return f, true
		}
	}
	return FormatDescriptor{}, false
}

// Len returns the number of formats
func (c *FormatCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.formats)
}

// Empty reports whether nothing is resolved
func (c *FormatCatalog) Empty() bool {
	return c.Len() == 0
}
