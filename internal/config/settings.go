package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Jeffail/gabs/v2"
	"github.com/merfiDEV/YT-Downloader/internal/platform"
)

// FileName is the name of the configuration file next to the executable
const FileName = "config.json"

// Backend names for the extraction library
const (
	BackendNative  = "native"
	BackendYTDLP   = "yt-dlp"
	BackendYouTube = "youtube"
)

// Settings keys in config.json
const (
	KeySavePath           = "save_path"
	KeyLanguage           = "language"
	KeyBackend            = "backend"
	KeyFilenameTemplate   = "filename_template"
	KeyAutoRevealComplete = "auto_reveal"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultBackend            = BackendNative
	DefaultFilenameTemplate   = "%(title)s.%(ext)s"
	DefaultAutoRevealComplete = false
	indent                    = "    "
	filePermissions           = 0644
)

// ErrMalformed is returned when the configuration file exists but is not a JSON object
var ErrMalformed = errors.New("malformed configuration file")

// Settings is the persisted user configuration. It keeps the whole JSON
// object so keys it does not know about survive a save.
type Settings struct {
	path string
	data *gabs.Container
}

// DefaultPath returns config.json in the directory of the running binary
func DefaultPath() (string, error) {
	dir, err := platform.ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the configuration file. A missing file yields empty settings.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{path: path, data: gabs.New()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	data, err := gabs.ParseJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformed, path, err)
	}
	if _, ok := data.Data().(map[string]interface{}); !ok {
		return nil, fmt.Errorf("%w %s: top level is not an object", ErrMalformed, path)
	}

	return &Settings{path: path, data: data}, nil
}

// Path returns the backing file path
func (s *Settings) Path() string {
	return s.path
}

// Save overwrites the backing file with the indented JSON object
func (s *Settings) Save() error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, s.data.BytesIndent("", indent), filePermissions); err != nil {
		return fmt.Errorf("failed to write config %s: %w", s.path, err)
	}
	return nil
}

// GetSavePath returns the configured save directory, empty when unset
func (s *Settings) GetSavePath() string {
	return s.getString(KeySavePath, "")
}

// SetSavePath sets the save directory; call Save to persist it
func (s *Settings) SetSavePath(dir string) {
	s.set(KeySavePath, dir)
}

// GetLanguage returns the configured language, DefaultLanguage when unknown
func (s *Settings) GetLanguage() string {
	lang := s.getString(KeyLanguage, DefaultLanguage)
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.set(KeyLanguage, lang)
}

// GetBackend returns the configured extraction backend
func (s *Settings) GetBackend() string {
	backend := s.getString(KeyBackend, DefaultBackend)
	for _, known := range s.GetBackendOptions() {
		if backend == known {
			return backend
		}
	}
	return DefaultBackend
}

// SetBackend sets the extraction backend
func (s *Settings) SetBackend(backend string) {
	s.set(KeyBackend, backend)
}

// GetFilenameTemplate returns the filename template
func (s *Settings) GetFilenameTemplate() string {
	return s.getString(KeyFilenameTemplate, DefaultFilenameTemplate)
}

// SetFilenameTemplate sets the filename template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.set(KeyFilenameTemplate, template)
}

// GetAutoRevealOnComplete returns whether to reveal completed downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	if v, ok := s.data.Path(KeyAutoRevealComplete).Data().(bool); ok {
		return v
	}
	return DefaultAutoRevealComplete
}

// SetAutoRevealOnComplete sets whether to reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.set(KeyAutoRevealComplete, autoReveal)
}

// GetBackendOptions returns available extraction backends
func (s *Settings) GetBackendOptions() []string {
	return []string{BackendNative, BackendYTDLP, BackendYouTube}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		DefaultLanguage: "System Default",
		"en":            "English",
		"ru":            "Русский",
	}
}

func (s *Settings) getString(key, fallback string) string {
	if v, ok := s.data.Path(key).Data().(string); ok && v != "" {
		return v
	}
	return fallback
}

func (s *Settings) set(key string, value interface{}) {
	// The root is always an object, so Set cannot fail here.
	_, _ = s.data.Set(value, key)
}
