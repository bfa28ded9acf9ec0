package model

import (
	"path/filepath"
	"time"
)

// DownloadSession describes the single download the controller is running,
// or the outcome of the last one.
type DownloadSession struct {
	ID         string
	FormatID   string
	Status     SessionStatus
	Percent    int       // 0 to 100
	LastError  string    // last error message if any
	OutputPath string    // path of the delivered file
	Size       int64     // delivered payload size in bytes
	StartedAt  time.Time // when the request was issued
	FinishedAt time.Time // when the session terminated
}

// IdleSession returns the zero-progress idle session
func IdleSession() DownloadSession {
	return DownloadSession{Status: SessionIdle}
}

// Duration returns how long the session ran, or zero while it is still running
func (ds DownloadSession) Duration() time.Duration {
	if ds.StartedAt.IsZero() || ds.FinishedAt.IsZero() {
		return 0
	}
	return ds.FinishedAt.Sub(ds.StartedAt)
}

// FileName returns the base name of the delivered file
func (ds DownloadSession) FileName() string {
	if ds.OutputPath == "" {
		return ""
	}
	return filepath.Base(ds.OutputPath)
}
