package download

import (
	"context"

	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/remote"
)

// FormatSource resolves a video URL into its formats
type FormatSource interface {
	Formats(ctx context.Context, videoURL string) (*remote.FormatsResponse, error)
}

// Transfer streams a chosen format. The channel ends with exactly one final event.
type Transfer interface {
	Download(ctx context.Context, req remote.DownloadRequest) <-chan remote.Event
}

// Service is the remote collaborator
type Service interface {
	FormatSource
	Transfer
}

// Deliverer hands a completed payload to the host as a savable file
type Deliverer interface {
	Deliver(data []byte, filename, mimeType string) (string, error)
}

// CatalogReader is the read-only view of the formats catalog
type CatalogReader interface {
	Video() model.VideoRef
	Formats() []model.FormatDescriptor
	Snapshot() (model.VideoRef, []model.FormatDescriptor)
	Lookup(formatID string) (model.FormatDescriptor, bool)
	Len() int
	Empty() bool
}

// Downloader defines the interface of the workflow used by the user interfaces.
type Downloader interface {
	SetUpdateCallback(func(model.DownloadSession))
	Lookup(ctx context.Context, videoURL string) (model.VideoRef, error)
	Download(ctx context.Context, formatID string) error
	Catalog() CatalogReader
	Session() model.DownloadSession
	Last() model.DownloadSession
	Busy() bool
}
