package download

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/platform"
	"github.com/ytget/yt-grabber/internal/progress"
	"github.com/ytget/yt-grabber/internal/remote"
)

// Controller runs downloads one at a time
type Controller struct {
	mu       sync.Mutex
	session  model.DownloadSession
	last     model.DownloadSession
	transfer Transfer
	catalog  *model.FormatCatalog
	reporter *progress.Reporter
	delivery Deliverer
	notifier Notifier
	onUpdate func(model.DownloadSession) // callback for UI updates
}

// NewController creates an idle controller
func NewController(transfer Transfer, catalog *model.FormatCatalog, reporter *progress.Reporter, delivery Deliverer, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Controller{
		session:  model.IdleSession(),
		last:     model.IdleSession(),
		transfer: transfer,
		catalog:  catalog,
		reporter: reporter,
		delivery: delivery,
		notifier: notifier,
	}
}

// SetUpdateCallback sets the callback function for session updates
func (c *Controller) SetUpdateCallback(callback func(model.DownloadSession)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// Session returns the current session
func (c *Controller) Session() model.DownloadSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Last returns the outcome of the most recent finished download
func (c *Controller) Last() model.DownloadSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Busy reports whether a download is in flight
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Status.IsActive()
}

// StartDownload downloads format of the catalog's video and delivers the
// file. It returns ErrDownloadInFlight without side effects while another
// download runs. Every other path ends back in Idle with 0%.
func (c *Controller) StartDownload(ctx context.Context, format model.FormatDescriptor) (err error) {
	if !c.begin(format.FormatID) {
		log.Printf("Download: format %s rejected, another download is in flight", format.FormatID)
		return ErrDownloadInFlight
	}

	var outputPath string
	var size int64
	defer func() {
		c.finish(outputPath, size, err)
	}()

	c.reporter.Busy()

	video := c.catalog.Video()
	if video.IsZero() {
		return c.fail(format.FormatID, ErrNoVideo)
	}

	req := remote.DownloadRequest{
		URL:      video.URL,
		FormatID: format.FormatID,
		HasAudio: format.HasAudio,
		HasVideo: format.HasVideo,
		ID:       video.ID,
	}
	log.Printf("Download: format %s of %s started", format.FormatID, video.ID)

	var payload *remote.Payload
	var transferErr error
	for ev := range c.transfer.Download(ctx, req) {
		switch {
		case ev.Err != nil:
			transferErr = ev.Err
		case ev.Payload != nil:
			payload = ev.Payload
		default:
			c.reporter.OnBytes(ev.Loaded, ev.Total)
			c.setPercent(c.reporter.Percent())
		}
	}

	if transferErr != nil {
		return c.fail(format.FormatID, transferErr)
	}
	if payload == nil {
		return c.fail(format.FormatID, ErrNoResult)
	}

	filename := FilenameFromDisposition(payload.ContentDisposition)
	p, err := c.delivery.Deliver(payload.Data, filename, mimeTypeOf(payload))
	if err != nil {
		return c.fail(format.FormatID, &SaveError{Err: err})
	}

	outputPath, size = p, int64(len(payload.Data))
	log.Printf("Download: format %s delivered to %s", format.FormatID, outputPath)
	return nil
}

// begin moves Idle -> InFlight, false if a session is already in flight
func (c *Controller) begin(formatID string) bool {
	c.mu.Lock()
	if c.session.Status.IsActive() {
		c.mu.Unlock()
		return false
	}
	c.session = model.DownloadSession{
		ID:        generateSessionID(),
		FormatID:  formatID,
		Status:    model.SessionInFlight,
		Percent:   0,
		StartedAt: time.Now(),
	}
	s := c.session
	c.mu.Unlock()

	c.notifyUpdate(s)
	return true
}

// finish records the outcome and returns to Idle
func (c *Controller) finish(outputPath string, size int64, err error) {
	c.reporter.Stop()

	c.mu.Lock()
	last := c.session
	last.FinishedAt = time.Now()
	last.OutputPath = outputPath
	last.Size = size
	if err != nil {
		last.Status = model.SessionFailed
		last.LastError = err.Error()
	} else {
		last.Status = model.SessionCompleted
		last.Percent = 100
	}
	c.last = last
	c.session = model.IdleSession()
	s := c.session
	c.mu.Unlock()

	c.notifyUpdate(s)
}

func (c *Controller) setPercent(percent int) {
	c.mu.Lock()
	if !c.session.Status.IsActive() || c.session.Percent == percent {
		c.mu.Unlock()
		return
	}
	c.session.Percent = percent
	s := c.session
	c.mu.Unlock()

	c.notifyUpdate(s)
}

func (c *Controller) fail(formatID string, cause error) error {
	err := &DownloadError{FormatID: formatID, Err: cause}
	c.notifier.Notify(err)
	return err
}

// notifyUpdate calls the update callback if set
func (c *Controller) notifyUpdate(s model.DownloadSession) {
	c.mu.Lock()
	cb := c.onUpdate
	c.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

func mimeTypeOf(p *remote.Payload) string {
	ct := strings.TrimSpace(p.ContentType)
	if ct == "" || strings.HasPrefix(ct, "application/octet-stream") {
		return platform.DefaultMimeType
	}
	return ct
}

// generateSessionID generates a unique session ID
func generateSessionID() string {
	return "dl-" + uuid.New().String()
}
