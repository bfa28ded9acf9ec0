package download

import (
	"context"
	"errors"
	"sync"

	"github.com/ytget/yt-grabber/internal/remote"
)

// fakeService scripts the remote collaborator
type fakeService struct {
	mu        sync.Mutex
	responses map[string]*remote.FormatsResponse
	lookupErr error

	events   []remote.Event
	requests []remote.DownloadRequest
	started  chan struct{} // signalled when Download is called, if set
	release  chan struct{} // final event waits on this, if set
}

func (f *fakeService) Formats(ctx context.Context, videoURL string) (*remote.FormatsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	resp, ok := f.responses[videoURL]
	if !ok {
		return nil, &remote.StatusError{StatusCode: 400, Status: "400 Bad Request"}
	}
	return resp, nil
}

func (f *fakeService) Download(ctx context.Context, req remote.DownloadRequest) <-chan remote.Event {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	events := append([]remote.Event(nil), f.events...)
	started, release := f.started, f.release
	f.mu.Unlock()

	ch := make(chan remote.Event)
	go func() {
		defer close(ch)
		if started != nil {
			started <- struct{}{}
		}
		for i, ev := range events {
			if i == len(events)-1 && release != nil {
				<-release
			}
			ch <- ev
		}
	}()
	return ch
}

func (f *fakeService) Requests() []remote.DownloadRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]remote.DownloadRequest(nil), f.requests...)
}

// delivered records one Deliver call
type delivered struct {
	data     []byte
	filename string
	mimeType string
}

type fakeDelivery struct {
	mu    sync.Mutex
	calls []delivered
	err   error
}

func (d *fakeDelivery) Deliver(data []byte, filename, mimeType string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return "", d.err
	}
	d.calls = append(d.calls, delivered{data: data, filename: filename, mimeType: mimeType})
	return "/downloads/" + filename, nil
}

func (d *fakeDelivery) Calls() []delivered {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]delivered(nil), d.calls...)
}

type recordingNotifier struct {
	mu     sync.Mutex
	errors []error
}

func (n *recordingNotifier) Notify(err error) {
	n.mu.Lock()
	n.errors = append(n.errors, err)
	n.mu.Unlock()
}

func (n *recordingNotifier) Errors() []error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]error(nil), n.errors...)
}

// recordingIndicator tracks the indicator state
type recordingIndicator struct {
	mu       sync.Mutex
	busy     int
	stops    int
	percents []int
}

func (r *recordingIndicator) Busy() {
	r.mu.Lock()
	r.busy++
	r.mu.Unlock()
}

func (r *recordingIndicator) SetPercent(p int) {
	r.mu.Lock()
	r.percents = append(r.percents, p)
	r.mu.Unlock()
}

func (r *recordingIndicator) Stop() {
	r.mu.Lock()
	r.stops++
	r.mu.Unlock()
}

func (r *recordingIndicator) counts() (busy, stops int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy, r.stops
}

var (
	errNetwork  = errors.New("connection refused")
	errDiskFull = errors.New("disk full")
)
