package config

import (
	"os"
	"strings"

	"github.com/ytget/yt-grabber/internal/platform"
)

// Environment variables read by the command line tool
const (
	EnvServiceURL  = "YTGRAB_SERVICE_URL"
	EnvDownloadDir = "YTGRAB_DOWNLOAD_DIR"
)

// Options is the configuration shared by the desktop app and the command line tool
type Options struct {
	ServiceURL  string
	DownloadDir string
}

// DefaultOptions returns options filled from the environment, then defaults
func DefaultOptions() Options {
	opts := Options{
		ServiceURL:  strings.TrimSpace(os.Getenv(EnvServiceURL)),
		DownloadDir: strings.TrimSpace(os.Getenv(EnvDownloadDir)),
	}
	if opts.ServiceURL == "" {
		opts.ServiceURL = DefaultServiceURL
	}
	if opts.DownloadDir == "" {
		dir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			dir = FallbackDownloadDir
		}
		opts.DownloadDir = dir
	}
	return opts
}

// Validate checks the options
func (o Options) Validate() error {
	return ValidateServiceURL(o.ServiceURL)
}
