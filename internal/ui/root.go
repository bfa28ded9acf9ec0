package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/platform"
)

// DirectorySetter is the part of the file delivery the UI reconfigures
type DirectorySetter interface {
	SetDirectory(dir string)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	workflow     download.Downloader
	delivery     DirectorySetter
	settings     *config.Settings
	localization *Localization
	indicator    *ProgressIndicator

	ctx    context.Context
	cancel context.CancelFunc

	urlEntry    *widget.Entry
	lookupBtn   *widget.Button
	settingsBtn *widget.Button
	titleLabel  *widget.Label
	guideTitle  *widget.Label
	guideText   *widget.Label
	guide       *fyne.Container
	formatList  *widget.List

	// Owned by the UI goroutine
	formats      []model.FormatDescriptor
	busy         bool
	lookingUp    bool
	activeFormat string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, localization *Localization,
	workflow download.Downloader, delivery DirectorySetter, indicator *ProgressIndicator) *RootUI {
	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		workflow:     workflow,
		delivery:     delivery,
		settings:     settings,
		localization: localization,
		indicator:    indicator,
		ctx:          ctx,
		cancel:       cancel,
	}

	log.Printf("RootUI initialized with workflow: %v", ui.workflow != nil)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(cancel)

	// Session updates arrive on the download goroutine
	ui.workflow.SetUpdateCallback(ui.onSessionUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	// Trigger lookup when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onLookupClick()
	}

	ui.lookupBtn = widget.NewButton(ui.localization.GetText(KeyGetFormats), ui.onLookupClick)
	ui.lookupBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, ui.settingsBtn, ui.lookupBtn, ui.urlEntry)

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ui.titleLabel.Hide()

	header := container.NewVBox(topPanel, ui.indicator.Content(), ui.titleLabel)

	ui.guideTitle = widget.NewLabel(ui.localization.GetText(KeyGuideTitle))
	ui.guideTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.guideText = widget.NewLabel(ui.localization.GetText(KeyGuideText))
	ui.guideText.Wrapping = fyne.TextWrapWord
	ui.guide = container.NewVBox(ui.guideTitle, ui.guideText)

	ui.formatList = widget.NewList(
		func() int {
			return len(ui.formats)
		},
		func() fyne.CanvasObject {
			row := NewFormatRow(ui.localization)
			row.OnDownload = ui.onDownloadClick
			return row
		},
		ui.updateFormatItem,
	)
	ui.formatList.Hide()

	content := container.NewBorder(header, nil, nil, nil, container.NewStack(ui.guide, ui.formatList))
	ui.window.SetContent(container.NewPadded(content))
}

func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.lookupBtn.SetText(ui.localization.GetText(KeyGetFormats))
	ui.guideTitle.SetText(ui.localization.GetText(KeyGuideTitle))
	ui.guideText.SetText(ui.localization.GetText(KeyGuideText))
	ui.formatList.Refresh()
}

func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onLookupClick resolves the entered URL. Failures are reported by the
// workflow's notifier; the list is refreshed either way since a failed
// lookup empties the catalog.
func (ui *RootUI) onLookupClick() {
	// No lookups while a download runs or another lookup is pending
	if ui.busy || ui.lookingUp {
		return
	}
	videoURL := ui.urlEntry.Text
	ui.lookingUp = true
	ui.updateLookupButton()
	ui.formatList.Refresh()

	go func() {
		video, err := ui.workflow.Lookup(ui.ctx, videoURL)
		if err != nil {
			log.Printf("RootUI: lookup failed: %v", err)
		}
		fyne.Do(func() {
			ui.lookingUp = false
			ui.updateLookupButton()
			ui.showCatalog(video)
		})
	}()
}

func (ui *RootUI) updateLookupButton() {
	if ui.busy || ui.lookingUp {
		ui.lookupBtn.Disable()
	} else {
		ui.lookupBtn.Enable()
	}
}

// showCatalog renders the catalog; the guide is shown while it is empty
func (ui *RootUI) showCatalog(video model.VideoRef) {
	ui.formats = ui.workflow.Catalog().Formats()

	if video.Title != "" {
		ui.titleLabel.SetText(video.Title)
		ui.titleLabel.Show()
	} else {
		ui.titleLabel.Hide()
	}

	if len(ui.formats) == 0 {
		ui.formatList.Hide()
		ui.guide.Show()
	} else {
		ui.guide.Hide()
		ui.formatList.Show()
	}
	ui.formatList.UnselectAll()
	ui.formatList.Refresh()
}

func (ui *RootUI) updateFormatItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.formats) {
		return
	}
	row, ok := item.(*FormatRow)
	if !ok {
		return
	}
	f := ui.formats[id]
	row.Update(f, ui.busy || ui.lookingUp, ui.busy && f.FormatID == ui.activeFormat)
}

// onDownloadClick starts the download of formatID in the background
func (ui *RootUI) onDownloadClick(formatID string) {
	if ui.busy || ui.lookingUp {
		return
	}
	// Disable every row right away; the session callback confirms it
	ui.busy = true
	ui.activeFormat = formatID
	ui.updateLookupButton()
	ui.formatList.Refresh()

	go func() {
		if err := ui.workflow.Download(ui.ctx, formatID); err != nil {
			log.Printf("RootUI: download of %s failed: %v", formatID, err)
			// Failures before the session started send no update
			fyne.Do(ui.syncBusy)
			return
		}
		last := ui.workflow.Last()
		fyne.Do(func() {
			ui.onDownloadCompleted(last)
		})
	}()
}

// onSessionUpdate runs on the download goroutine
func (ui *RootUI) onSessionUpdate(session model.DownloadSession) {
	fyne.Do(func() {
		ui.busy = session.Status.IsActive()
		if ui.busy {
			ui.activeFormat = session.FormatID
		} else {
			ui.activeFormat = ""
		}
		ui.updateLookupButton()
		ui.formatList.Refresh()
	})
}

func (ui *RootUI) syncBusy() {
	ui.busy = ui.workflow.Busy()
	if !ui.busy {
		ui.activeFormat = ""
	}
	ui.updateLookupButton()
	ui.formatList.Refresh()
}

func (ui *RootUI) onDownloadCompleted(session model.DownloadSession) {
	log.Printf("RootUI: %s saved to %s (%s)", session.FormatID, session.OutputPath, humanize.Bytes(uint64(session.Size)))

	if ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealFile(session.OutputPath)
		return
	}

	message := fmt.Sprintf("%s%s%s", session.FileName(), MiddleDotSeparator, humanize.Bytes(uint64(session.Size)))
	var info dialog.Dialog
	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		ui.onRevealFile(session.OutputPath)
		if info != nil {
			info.Hide()
		}
	})
	content := container.NewVBox(widget.NewLabel(message), revealBtn)
	info = dialog.NewCustom(ui.localization.GetText(KeyDownloadCompleted), "OK", content, ui.window)
	info.Show()
}

func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("RootUI: cannot reveal %s: %v", filePath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	sd.OnSaved = func(bool) {
		ui.delivery.SetDirectory(ui.settings.GetDownloadDirectory())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}
	sd.Show()
}
