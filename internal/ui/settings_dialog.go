package ui

import (
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// OnSaved is called after the settings were stored
	OnSaved func(serviceChanged bool)

	// UI components
	serviceURLEntry  *widget.Entry
	downloadDirEntry *widget.Entry
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.serviceURLEntry = widget.NewEntry()
	sd.serviceURLEntry.SetPlaceHolder(config.DefaultServiceURL)
	sd.serviceURLEntry.Validator = config.ValidateServiceURL

	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Language selection, sorted for a stable order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyServiceURL)+":"),
		sd.serviceURLEntry,

		widget.NewLabel(text(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,

		sd.autoRevealCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serviceURLEntry.SetText(sd.settings.GetServiceURL())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	previousService := sd.settings.GetServiceURL()
	if err := sd.settings.SetServiceURL(sd.serviceURLEntry.Text); err != nil {
		log.Printf("Settings: rejected service URL %q: %v", sd.serviceURLEntry.Text, err)
		dialog.ShowError(err, sd.window)
		return
	}

	// Validate and save download directory
	downloadDir := sd.downloadDirEntry.Text
	if downloadDir != "" {
		if err := platform.CreateDirectoryIfNotExists(downloadDir); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	serviceChanged := sd.settings.GetServiceURL() != previousService
	if sd.OnSaved != nil {
		sd.OnSaved(serviceChanged)
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if serviceChanged {
		message += "\n" + sd.localization.GetText(KeyServiceRestart)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}
