package console

import "testing"

func TestCatalog_Languages(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		expected string
	}{
		{"english", LangEnglish, "Choose video quality:"},
		{"russian", LangRussian, "Выберите качество видео:"},
		{"unknown falls back to english", "pt", "Choose video quality:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(tt.lang)
			if got := c.Text(KeyChooseQuality); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCatalog_Fallbacks(t *testing.T) {
	c := NewCatalog(LangRussian)

	// not translated, falls back to English
	if got := c.Text(KeyDownloadFinished); got != "Done downloading, now converting ..." {
		t.Errorf("expected english fallback, got %q", got)
	}

	if got := c.Text("missing_key"); got != "missing_key" {
		t.Errorf("expected key itself, got %q", got)
	}
}

func TestCatalog_SystemLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ru_RU.UTF-8")

	c := NewCatalog(LangSystem)
	if c.GetCurrentLanguage() != LangRussian {
		t.Errorf("expected %s, got %s", LangRussian, c.GetCurrentLanguage())
	}

	t.Setenv("LANG", "de_DE.UTF-8")
	c.SetLanguage(LangSystem)
	if c.GetCurrentLanguage() != LangEnglish {
		t.Errorf("expected %s, got %s", LangEnglish, c.GetCurrentLanguage())
	}
}

func TestCatalog_Format(t *testing.T) {
	c := NewCatalog(LangEnglish)

	got := c.Format(KeyDownloadProgress, "a.mp4", "42.0", "10 MB", "1 MB/s")
	expected := "Downloading: a.mp4 | 42.0% of 10 MB at 1 MB/s"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestCatalog_AvailableLanguages(t *testing.T) {
	c := NewCatalog(LangEnglish)
	for lang := range c.GetAvailableLanguages() {
		if c.SetLanguage(lang); c.GetCurrentLanguage() != lang {
			t.Errorf("language %q is listed but has no texts", lang)
		}
	}
}
