package ui

import "testing"

func TestLocalization_AllLanguagesHaveAllKeys(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		t.Run(lang, func(t *testing.T) {
			texts, ok := l.texts[lang]
			if !ok {
				t.Fatalf("No texts for %s", lang)
			}
			for key := range english {
				if texts[key] == "" {
					t.Errorf("Missing %s for %s", key, lang)
				}
			}
		})
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		expected string
	}{
		{"russian", "ru", "ru"},
		{"portuguese", "pt", "pt"},
		{"system falls back to english", "system", "en"},
		{"unknown keeps current", "de", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.GetCurrentLanguage(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestLocalization_GetTextFallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText(KeyDownload); got != "Скачать" {
		t.Errorf("Expected russian text, got %s", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself, got %s", got)
	}
}
