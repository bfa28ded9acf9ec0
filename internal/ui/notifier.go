package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/yt-grabber/internal/download"
)

// DialogNotifier shows workflow failures as error dialogs
type DialogNotifier struct {
	window       fyne.Window
	localization *Localization
}

// NewDialogNotifier creates a notifier bound to window
func NewDialogNotifier(window fyne.Window, localization *Localization) *DialogNotifier {
	return &DialogNotifier{window: window, localization: localization}
}

// Notify implements download.Notifier
func (n *DialogNotifier) Notify(err error) {
	if err == nil {
		return
	}
	log.Printf("UI notice: %v", err)

	shown := n.describe(err)
	fyne.Do(func() {
		dialog.ShowError(shown, n.window)
	})
}

// describe prefixes err with a localized headline for known failures
func (n *DialogNotifier) describe(err error) error {
	var lookupErr *download.LookupError
	var downloadErr *download.DownloadError
	var saveErr *download.SaveError

	switch {
	case errors.Is(err, download.ErrEmptyURL):
		return errors.New(n.localization.GetText(KeyInvalidURL))
	case errors.As(err, &lookupErr):
		return fmt.Errorf("%s: %w", n.localization.GetText(KeyLookupFailed), lookupErr.Err)
	case errors.As(err, &saveErr):
		return fmt.Errorf("%s: %w", n.localization.GetText(KeySaveFailed), saveErr.Err)
	case errors.As(err, &downloadErr):
		return fmt.Errorf("%s: %w", n.localization.GetText(KeyDownloadFailed), downloadErr.Err)
	default:
		return err
	}
}

var _ download.Notifier = (*DialogNotifier)(nil)
