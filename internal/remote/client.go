package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/ytget/yt-grabber/internal/model"
)

// Service defaults
const (
	DefaultBaseURL    = "http://localhost:3000"
	DefaultUserAgent  = "yt-grabber"
	DefaultBufferSize = 32 * 1024 // 32KB

	FormatsPath  = "/formats"
	DownloadPath = "/download"

	// maxErrorBody bounds how much of an error response is kept
	maxErrorBody = 512

	// maxPrealloc caps the buffer reserved from a declared Content-Length
	maxPrealloc = 64 << 20 // 64MB
)

// FormatsResponse is the body of GET /formats
type FormatsResponse struct {
	Formats []model.FormatDescriptor `json:"formats"`
	Title   string                   `json:"title"`
	ID      string                   `json:"id"`
}

// DownloadRequest is the body of POST /download
type DownloadRequest struct {
	URL      string `json:"url"`
	FormatID string `json:"format_id"`
	HasAudio bool   `json:"hasAudio"`
	HasVideo bool   `json:"hasVideo"`
	ID       string `json:"id"`
}

// Payload is a completed download held in memory
type Payload struct {
	Data               []byte
	ContentType        string
	ContentDisposition string
}

// Event is one notification of a transfer. Progress events carry byte counts
// (Total is -1 when the size is unknown); the final event carries either a
// Payload or an Err.
type Event struct {
	Loaded  int64
	Total   int64
	Payload *Payload
	Err     error
}

// Final reports whether this is the completion-or-failure event
func (e Event) Final() bool {
	return e.Payload != nil || e.Err != nil
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// Client talks to the format/download service
type Client struct {
	base       *url.URL
	http       *http.Client
	userAgent  string
	bufferSize int
}

// Option configures a Client
type Option func(c *Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithBufferSize sets the read buffer used while streaming a download
func WithBufferSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid service URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid service URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid service URL %q: missing host", baseURL)
	}

	c := &Client{
		base: u,
		// No timeout: request lifetime is bounded by the transport only
		http:       &http.Client{Timeout: 0},
		userAgent:  DefaultUserAgent,
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the service address
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) endpoint(path string) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

// Formats resolves videoURL into its downloadable formats
func (c *Client) Formats(ctx context.Context, videoURL string) (*FormatsResponse, error) {
	u := c.endpoint(FormatsPath) + "?" + url.Values{"url": {videoURL}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out FormatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode formats: %w", err)
	}
	return &out, nil
}

// Download requests a format and streams the body into memory. The returned
// channel yields zero or more progress events in non-decreasing byte order,
// then exactly one final event, and is then closed. The caller must drain it.
func (c *Client) Download(ctx context.Context, dr DownloadRequest) <-chan Event {
	events := make(chan Event)
	go func() {
		defer close(events)
		payload, err := c.download(ctx, dr, func(loaded, total int64) {
			events <- Event{Loaded: loaded, Total: total}
		})
		if err != nil {
			events <- Event{Err: err}
			return
		}
		events <- Event{Payload: payload}
	}()
	return events
}

func (c *Client) download(ctx context.Context, dr DownloadRequest, onBytes func(loaded, total int64)) (*Payload, error) {
	body, err := json.Marshal(dr)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(DownloadPath), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	total := resp.ContentLength
	if total <= 0 {
		total = -1
	}

	// Content-Length is only a hint; the buffer grows with the bytes actually read
	var buf bytes.Buffer
	if total > 0 {
		buf.Grow(int(min(total, maxPrealloc)))
	}

	chunk := make([]byte, c.bufferSize)
	var loaded int64
	for {
		n, err := resp.Body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			loaded += int64(n)
			onBytes(loaded, total)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
	}

	return &Payload{
		Data:               buf.Bytes(),
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	err := &StatusError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.Redacted(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(b)),
	}
	log.Printf("Remote: %v", err)
	return err
}
