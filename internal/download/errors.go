package download

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyURL is returned when a lookup is requested without a URL
	ErrEmptyURL = errors.New("video URL is empty")

	// ErrDownloadInFlight is returned when a download is requested while another one runs
	ErrDownloadInFlight = errors.New("a download is already in progress")

	// ErrNoVideo is returned when a download is requested before any successful lookup
	ErrNoVideo = errors.New("no video resolved")

	// ErrUnknownFormat is returned for a format id that is not in the catalog
	ErrUnknownFormat = errors.New("format not in catalog")

	// ErrNoResult is returned when a transfer ends without payload or error
	ErrNoResult = errors.New("transfer ended without a result")

	// ErrSaveFailed matches a SaveError
	ErrSaveFailed = errors.New("could not save file")
)

// LookupError reports a failed format resolution
type LookupError struct {
	URL string
	Err error
}

func (e *LookupError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("error fetching formats: %v", e.Err)
	}
	return fmt.Sprintf("error fetching formats for %s: %v", e.URL, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// DownloadError reports a failed download
type DownloadError struct {
	FormatID string
	Err      error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download of format %s failed: %v", e.FormatID, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// SaveError reports a download that arrived but could not be written to disk
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("%v: %v", ErrSaveFailed, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSaveFailed) hold for any SaveError
func (e *SaveError) Is(target error) bool {
	return target == ErrSaveFailed
}
