package download

import (
	"context"
	"log"
	"strings"

	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/progress"
)

// Resolver looks up the formats of a video URL and fills the catalog
type Resolver struct {
	source   FormatSource
	catalog  *model.FormatCatalog
	reporter *progress.Reporter
	notifier Notifier
}

// NewResolver creates a resolver
func NewResolver(source FormatSource, catalog *model.FormatCatalog, reporter *progress.Reporter, notifier Notifier) *Resolver {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Resolver{
		source:   source,
		catalog:  catalog,
		reporter: reporter,
		notifier: notifier,
	}
}

// Resolve replaces the catalog with the formats of videoURL. On failure the
// catalog is cleared so formats of a previous video are never shown next to
// a URL they do not belong to, and a notice is shown.
func (r *Resolver) Resolve(ctx context.Context, videoURL string) (model.VideoRef, error) {
	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		return model.VideoRef{}, r.fail(videoURL, ErrEmptyURL)
	}

	// A running download keeps the indicator
	if token, ok := r.reporter.TryBusy(); ok {
		defer r.reporter.Release(token)
	}

	log.Printf("Resolver: fetching formats for %s", videoURL)
	resp, err := r.source.Formats(ctx, videoURL)
	if err != nil {
		return model.VideoRef{}, r.fail(videoURL, err)
	}

	ref := model.VideoRef{URL: videoURL, ID: resp.ID, Title: resp.Title}
	r.catalog.Replace(ref, resp.Formats)

	log.Printf("Resolver: %q (%s) has %d formats", ref.Title, ref.ID, r.catalog.Len())
	return ref, nil
}

func (r *Resolver) fail(videoURL string, cause error) error {
	r.catalog.Clear()
	err := &LookupError{URL: videoURL, Err: cause}
	r.notifier.Notify(err)
	return err
}
