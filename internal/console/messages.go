package console

import (
	"fmt"
	"os"
	"strings"
)

// Catalog manages UI text translations
type Catalog struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangRussian = "ru"
)

// Text keys for localization
const (
	KeyBanner            = "banner"
	KeyAskSavePath       = "ask_save_path"
	KeyAskSavePathHint   = "ask_save_path_hint"
	KeyInvalidPath       = "invalid_path"
	KeySavingTo          = "saving_to"
	KeyAskURL            = "ask_url"
	KeyFetchingInfo      = "fetching_info"
	KeyChooseQuality     = "choose_quality"
	KeyAskQuality        = "ask_quality"
	KeyInvalidNumber     = "invalid_number"
	KeyNotANumber        = "not_a_number"
	KeyNoMatchingFormats = "no_matching_formats"
	KeyNoFormats         = "no_formats"
	KeyStartingDownload  = "starting_download"
	KeyDownloadProgress  = "download_progress"
	KeyDownloadFinished  = "download_finished"
	KeyDownloadSucceeded = "download_succeeded"
	KeyErrorOccurred     = "error_occurred"
	KeyLoggerError       = "logger_error"
	KeyUnknownVideo      = "unknown_video"
	KeyRevealFailed      = "reveal_failed"
	KeyConfigFault       = "config_fault"
	KeyInputClosed       = "input_closed"
	KeyInterrupted       = "interrupted"
	KeyInvalidSetting    = "invalid_setting"
	KeySettingsSaved     = "settings_saved"
	KeySettingLine       = "setting_line"
)

// NewCatalog creates a catalog for the given language ("system" resolves from the locale)
func NewCatalog(lang string) *Catalog {
	c := &Catalog{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	c.initializeTexts()
	c.SetLanguage(lang)
	return c
}

// SetLanguage sets the current language
func (c *Catalog) SetLanguage(lang string) {
	if lang == LangSystem || lang == "" {
		lang = systemLanguage()
	}

	if _, exists := c.texts[lang]; exists {
		c.currentLanguage = lang
	}
}

// Text returns localized text for the given key
func (c *Catalog) Text(key string) string {
	if texts, exists := c.texts[c.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := c.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (c *Catalog) Format(key string, args ...any) string {
	return fmt.Sprintf(c.Text(key), args...)
}

// GetCurrentLanguage returns the current language code
func (c *Catalog) GetCurrentLanguage() string {
	return c.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (c *Catalog) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangRussian: "Русский",
	}
}

// systemLanguage picks a catalog language from the POSIX locale variables
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			if strings.HasPrefix(strings.ToLower(v), LangRussian) {
				return LangRussian
			}
			return LangEnglish
		}
	}
	return LangEnglish
}

// initializeTexts initializes all text translations
func (c *Catalog) initializeTexts() {
	c.texts[LangEnglish] = map[string]string{
		KeyBanner:            "--- YouTube Downloader ---",
		KeyAskSavePath:       "Enter the directory to save videos to",
		KeyAskSavePathHint:   "Enter the directory to save videos to (e.g. %s)",
		KeyInvalidPath:       "The path does not exist. Please enter a valid directory.",
		KeySavingTo:          "Videos will be saved to: %s",
		KeyAskURL:            "Enter or drop a YouTube video URL",
		KeyFetchingInfo:      "Fetching video info...",
		KeyChooseQuality:     "Choose video quality:",
		KeyAskQuality:        "Enter the number of the desired quality",
		KeyInvalidNumber:     "Invalid number. Please choose from the list.",
		KeyNotANumber:        "Please enter a number.",
		KeyNoMatchingFormats: "No suitable formats found (480p, 720p, 1080p MP4).",
		KeyNoFormats:         "Could not fetch video formats.",
		KeyStartingDownload:  "Starting download of \"%s\" in \"%s\"",
		KeyDownloadProgress:  "Downloading: %s | %s%% of %s at %s",
		KeyDownloadFinished:  "Done downloading, now converting ...",
		KeyDownloadSucceeded: "Video \"%s\" downloaded successfully in %s seconds",
		KeyErrorOccurred:     "An error occurred: %v",
		KeyLoggerError:       "ERROR: %s",
		KeyUnknownVideo:      "unknown video",
		KeyRevealFailed:      "Could not open the file manager: %v",
		KeyConfigFault:       "Could not load configuration: %v",
		KeyInputClosed:       "Input ended before an answer was given.",
		KeyInterrupted:       "Interrupted.",
		KeyInvalidSetting:    "Invalid %s %q, expected one of: %s",
		KeySettingsSaved:     "Settings saved to %s",
		KeySettingLine:       "  %-16s %s",
	}

	// Progress lines stay English, like yt-dlp's own output.
	c.texts[LangRussian] = map[string]string{
		KeyBanner:            "--- YouTube Downloader ---",
		KeyAskSavePath:       "Введите путь для сохранения видео",
		KeyAskSavePathHint:   "Введите путь для сохранения видео (например, %s)",
		KeyInvalidPath:       "Указанный путь не существует. Пожалуйста, введите корректный путь.",
		KeySavingTo:          "Видео будут сохранены в: %s",
		KeyAskURL:            "Введите или перетащите URL видео с YouTube",
		KeyFetchingInfo:      "Получение информации о видео...",
		KeyChooseQuality:     "Выберите качество видео:",
		KeyAskQuality:        "Введите номер желаемого качества",
		KeyInvalidNumber:     "Неверный номер. Пожалуйста, выберите из списка.",
		KeyNotANumber:        "Пожалуйста, введите число.",
		KeyNoMatchingFormats: "Не найдено подходящих форматов (480p, 720p, 1080p MP4).",
		KeyNoFormats:         "Не удалось получить форматы видео.",
		KeyStartingDownload:  "Начало скачки \"%s\" в \"%s\"",
		KeyDownloadSucceeded: "Видео \"%s\" успешно скачано за %s секунд",
		KeyErrorOccurred:     "Произошла ошибка: %v",
		KeyUnknownVideo:      "неизвестное видео",
		KeyRevealFailed:      "Не удалось открыть файловый менеджер: %v",
		KeyConfigFault:       "Не удалось загрузить конфигурацию: %v",
		KeyInputClosed:       "Ввод завершился раньше, чем был получен ответ.",
		KeyInterrupted:       "Прервано.",
		KeyInvalidSetting:    "Недопустимое значение %s %q, ожидается одно из: %s",
		KeySettingsSaved:     "Настройки сохранены в %s",
	}
}
