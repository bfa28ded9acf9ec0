package download

import (
	"context"
	"log"

	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/progress"
)

// Workflow owns the catalog and wires the resolver and the controller
// around one shared progress reporter.
type Workflow struct {
	catalog    *model.FormatCatalog
	reporter   *progress.Reporter
	resolver   *Resolver
	controller *Controller
	notifier   Notifier
}

// NewWorkflow creates the workflow for svc, delivering files through delivery
func NewWorkflow(svc Service, delivery Deliverer, indicator progress.Indicator, notifier Notifier) *Workflow {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	catalog := model.NewFormatCatalog()
	reporter := progress.NewReporter(indicator)

	return &Workflow{
		catalog:    catalog,
		reporter:   reporter,
		resolver:   NewResolver(svc, catalog, reporter, notifier),
		controller: NewController(svc, catalog, reporter, delivery, notifier),
		notifier:   notifier,
	}
}

// SetUpdateCallback sets the callback function for session updates
func (w *Workflow) SetUpdateCallback(callback func(model.DownloadSession)) {
	w.controller.SetUpdateCallback(callback)
}

// Lookup resolves videoURL into the catalog
func (w *Workflow) Lookup(ctx context.Context, videoURL string) (model.VideoRef, error) {
	return w.resolver.Resolve(ctx, videoURL)
}

// Download starts the download of a catalog format by id
func (w *Workflow) Download(ctx context.Context, formatID string) error {
	f, ok := w.catalog.Lookup(formatID)
	if !ok {
		log.Printf("Workflow: format %s is not in the catalog", formatID)
		err := &DownloadError{FormatID: formatID, Err: ErrUnknownFormat}
		w.notifier.Notify(err)
		return err
	}
	return w.controller.StartDownload(ctx, f)
}

// Catalog returns the read-only catalog view
func (w *Workflow) Catalog() CatalogReader {
	return w.catalog
}

// Session returns the current download session
func (w *Workflow) Session() model.DownloadSession {
	return w.controller.Session()
}

// Last returns the most recent finished session
func (w *Workflow) Last() model.DownloadSession {
	return w.controller.Last()
}

// Busy reports whether a download is in flight
func (w *Workflow) Busy() bool {
	return w.controller.Busy()
}

// Percent returns the reporter's current percentage
func (w *Workflow) Percent() int {
	return w.reporter.Percent()
}

var _ Downloader = (*Workflow)(nil)
