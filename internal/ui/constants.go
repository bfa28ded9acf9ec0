package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconVideo    = "🎥"
	IconAudio    = "🔊"
	IconUnknown  = "❔"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing (format rows / dialogs)
const (
	RowMinWidth  float32 = 400
	RowMinHeight float32 = 48

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)
