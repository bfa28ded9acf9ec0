package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyGetFormats        = "get_formats"
	KeyDownload          = "download"
	KeyDownloading       = "downloading"
	KeyReveal            = "reveal"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyServiceURL        = "service_url"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeySettingsSaved     = "settings_saved"
	KeyServiceRestart    = "service_restart"
	KeyDownloadCompleted = "download_completed"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyInvalidURL        = "invalid_url"
	KeyLookupFailed      = "lookup_failed"
	KeyDownloadFailed    = "download_failed"
	KeySaveFailed        = "save_failed"
	KeyGuideTitle        = "guide_title"
	KeyGuideText         = "guide_text"
	KeySizeUnknown       = "size_unknown"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Grabber",
		KeyGetFormats:        "Get Formats",
		KeyDownload:          "Download",
		KeyDownloading:       "Downloading...",
		KeyReveal:            "Reveal",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyServiceURL:        "Service URL",
		KeyAutoReveal:        "Reveal file when download completes",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyServiceRestart:    "The new service URL is used after restart.",
		KeyDownloadCompleted: "Download completed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyInvalidURL:        "Invalid URL",
		KeyLookupFailed:      "Could not get formats",
		KeyDownloadFailed:    "Download failed",
		KeySaveFailed:        "Downloaded, but the file could not be saved",
		KeyGuideTitle:        "How it works",
		KeyGuideText:         "1. Paste a video link and press Get Formats.\n2. Pick a format from the list.\n3. Press Download and wait for the file to be saved.",
		KeySizeUnknown:       "size unknown",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Граббер",
		KeyGetFormats:        "Получить форматы",
		KeyDownload:          "Скачать",
		KeyDownloading:       "Загрузка...",
		KeyReveal:            "Показать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyServiceURL:        "Адрес сервиса",
		KeyAutoReveal:        "Показывать файл после загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyServiceRestart:    "Новый адрес сервиса будет использован после перезапуска.",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyInvalidURL:        "Неверный URL",
		KeyLookupFailed:      "Не удалось получить форматы",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeySaveFailed:        "Файл загружен, но не удалось его сохранить",
		KeyGuideTitle:        "Как это работает",
		KeyGuideText:         "1. Вставьте ссылку на видео и нажмите «Получить форматы».\n2. Выберите формат из списка.\n3. Нажмите «Скачать» и дождитесь сохранения файла.",
		KeySizeUnknown:       "размер неизвестен",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Grabber",
		KeyGetFormats:        "Obter Formatos",
		KeyDownload:          "Baixar",
		KeyDownloading:       "Baixando...",
		KeyReveal:            "Mostrar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyServiceURL:        "URL do Serviço",
		KeyAutoReveal:        "Mostrar arquivo ao concluir o download",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterURL:          "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyServiceRestart:    "A nova URL do serviço será usada após reiniciar.",
		KeyDownloadCompleted: "Download concluído",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyInvalidURL:        "URL inválida",
		KeyLookupFailed:      "Não foi possível obter os formatos",
		KeyDownloadFailed:    "Falha no download",
		KeySaveFailed:        "Baixado, mas não foi possível salvar o arquivo",
		KeyGuideTitle:        "Como funciona",
		KeyGuideText:         "1. Cole o link do vídeo e pressione Obter Formatos.\n2. Escolha um formato da lista.\n3. Pressione Baixar e aguarde o arquivo ser salvo.",
		KeySizeUnknown:       "tamanho desconhecido",
	}
}
