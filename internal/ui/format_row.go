package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-grabber/internal/model"
)

// FormatRow is one entry of the format list: kind marker, label, size and a Download button
type FormatRow struct {
	widget.BaseWidget

	localization *Localization
	format       model.FormatDescriptor

	kindLabel   *widget.Label
	nameLabel   *widget.Label
	sizeLabel   *widget.Label
	downloadBtn *widget.Button

	// OnDownload is called with the format id when the button is tapped
	OnDownload func(formatID string)
}

// NewFormatRow creates an empty row
func NewFormatRow(localization *Localization) *FormatRow {
	row := &FormatRow{localization: localization}
	row.ExtendBaseWidget(row)
	row.createUI()
	return row
}

func (fr *FormatRow) createUI() {
	fr.kindLabel = widget.NewLabel("")
	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	fr.sizeLabel = widget.NewLabel("")
	fr.downloadBtn = widget.NewButton(fr.localization.GetText(KeyDownload), func() {
		if fr.OnDownload != nil && fr.format.FormatID != "" {
			fr.OnDownload(fr.format.FormatID)
		}
	})
	fr.downloadBtn.Importance = widget.HighImportance
}

// Update shows format f. When busy every row's button is disabled and the
// row of the active format reads "Downloading...".
func (fr *FormatRow) Update(f model.FormatDescriptor, busy, active bool) {
	fr.format = f

	fr.kindLabel.SetText(KindIcon(f.Kind()))
	fr.nameLabel.SetText(f.Label())
	fr.sizeLabel.SetText(fr.sizeText(f))

	if active {
		fr.downloadBtn.SetText(fr.localization.GetText(KeyDownloading))
	} else {
		fr.downloadBtn.SetText(fr.localization.GetText(KeyDownload))
	}
	if busy {
		fr.downloadBtn.Disable()
	} else {
		fr.downloadBtn.Enable()
	}
}

// FormatID returns the id of the shown format
func (fr *FormatRow) FormatID() string {
	return fr.format.FormatID
}

func (fr *FormatRow) sizeText(f model.FormatDescriptor) string {
	if f.FileSize == "" {
		return fr.localization.GetText(KeySizeUnknown)
	}
	return f.FileSize.String()
}

// CreateRenderer implements fyne.Widget
func (fr *FormatRow) CreateRenderer() fyne.WidgetRenderer {
	right := container.NewHBox(fr.sizeLabel, fr.downloadBtn)
	content := container.NewBorder(nil, nil, fr.kindLabel, right, fr.nameLabel)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable in narrow windows
func (fr *FormatRow) MinSize() fyne.Size {
	size := fr.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(size.Width, RowMinWidth), fyne.Max(size.Height, RowMinHeight))
}

// KindIcon returns the marker for a media kind
func KindIcon(kind model.MediaKind) string {
	switch kind {
	case model.KindVideo:
		return IconVideo
	case model.KindAudio:
		return IconAudio
	default:
		return IconUnknown
	}
}
