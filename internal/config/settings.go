package config

import (
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-grabber/internal/platform"
	"github.com/ytget/yt-grabber/internal/remote"
)

// Settings keys for Fyne preferences
const (
	KeyServiceURL         = "service_url"
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultServiceURL         = remote.DefaultBaseURL
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	FallbackDownloadDir       = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServiceURL returns the address of the format/download service
func (s *Settings) GetServiceURL() string {
	u := s.app.Preferences().String(KeyServiceURL)
	if u == "" {
		return DefaultServiceURL
	}
	return u
}

// SetServiceURL validates and stores the service address
func (s *Settings) SetServiceURL(u string) error {
	u = strings.TrimSpace(u)
	if err := ValidateServiceURL(u); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyServiceURL, u)
	return nil
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal completed downloads in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Options returns the settings as plain options
func (s *Settings) Options() Options {
	return Options{
		ServiceURL:  s.GetServiceURL(),
		DownloadDir: s.GetDownloadDirectory(),
	}
}

// ValidateServiceURL accepts absolute http(s) URLs only
func ValidateServiceURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("invalid service URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("service URL must start with http:// or https://")
	}
	if parsed.Host == "" {
		return fmt.Errorf("service URL has no host")
	}
	return nil
}
