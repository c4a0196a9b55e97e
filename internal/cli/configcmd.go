package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/merfiDEV/YT-Downloader/internal/config"
	"github.com/merfiDEV/YT-Downloader/internal/console"
)

// ErrInvalidSetting is returned when a config value is not one of the allowed options
var ErrInvalidSetting = errors.New("invalid setting")

// ConfigChanges holds the settings to update. Nil fields are left as they are.
type ConfigChanges struct {
	Language   *string
	Backend    *string
	Template   *string
	AutoReveal *bool
}

func (c ConfigChanges) empty() bool {
	return c.Language == nil && c.Backend == nil && c.Template == nil && c.AutoReveal == nil
}

func newConfigCommand(flags *Flags) *cobra.Command {
	var (
		language   string
		backend    string
		template   string
		autoReveal bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the saved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes ConfigChanges
			if cmd.Flags().Changed("language") {
				changes.Language = &language
			}
			if cmd.Flags().Changed("backend") {
				changes.Backend = &backend
			}
			if cmd.Flags().Changed("template") {
				changes.Template = &template
			}
			if cmd.Flags().Changed("auto-reveal") {
				changes.AutoReveal = &autoReveal
			}
			return Configure(console.NewTerminal(), flags.ConfigPath, changes)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Interface language (system, en, ru)")
	cmd.Flags().StringVar(&backend, "backend", "", "Extraction backend (native, yt-dlp, youtube)")
	cmd.Flags().StringVar(&template, "template", "", "Output filename template, empty for the default")
	cmd.Flags().BoolVar(&autoReveal, "auto-reveal", false, "Open the file manager after a download")
	return cmd
}

// Configure applies changes to the config at path, saves it when anything
// changed and prints the resulting settings.
func Configure(c console.Console, path string, changes ConfigChanges) error {
	settings, err := loadSettings(c, path)
	if err != nil {
		return err
	}
	msgs := console.NewCatalog(settings.GetLanguage())

	if changes.Language != nil {
		options := settings.GetLanguageOptions()
		if _, ok := options[*changes.Language]; !ok {
			return invalidSetting(c, msgs, config.KeyLanguage, *changes.Language, sortedKeys(options))
		}
	}
	if changes.Backend != nil {
		options := settings.GetBackendOptions()
		if !contains(options, *changes.Backend) {
			return invalidSetting(c, msgs, config.KeyBackend, *changes.Backend, options)
		}
	}

	if !changes.empty() {
		if changes.Language != nil {
			settings.SetLanguage(*changes.Language)
			msgs = console.NewCatalog(settings.GetLanguage())
		}
		if changes.Backend != nil {
			settings.SetBackend(*changes.Backend)
		}
		if changes.Template != nil {
			settings.SetFilenameTemplate(*changes.Template)
		}
		if changes.AutoReveal != nil {
			settings.SetAutoRevealOnComplete(*changes.AutoReveal)
		}
		if err := settings.Save(); err != nil {
			c.Tell(console.ToneFailure, msgs.Format(console.KeyErrorOccurred, err))
			return err
		}
		c.Tell(console.ToneSuccess, msgs.Format(console.KeySettingsSaved, settings.Path()))
	}

	showSettings(c, msgs, settings)
	return nil
}

func showSettings(c console.Console, msgs *console.Catalog, settings *config.Settings) {
	lang := settings.GetLanguage()
	shown := msgs.GetCurrentLanguage()
	language := fmt.Sprintf("%s (%s, %s)", lang, settings.GetLanguageOptions()[lang], msgs.GetAvailableLanguages()[shown])

	line := func(key, value string) {
		c.Tell(console.TonePlain, msgs.Format(console.KeySettingLine, key, value))
	}
	line(config.KeySavePath, settings.GetSavePath())
	line(config.KeyLanguage, language)
	line(config.KeyBackend, settings.GetBackend())
	line(config.KeyFilenameTemplate, settings.GetFilenameTemplate())
	line(config.KeyAutoRevealComplete, strconv.FormatBool(settings.GetAutoRevealOnComplete()))
}

func invalidSetting(c console.Console, msgs *console.Catalog, key, value string, options []string) error {
	c.Tell(console.ToneFailure, msgs.Format(console.KeyInvalidSetting, key, value, strings.Join(options, ", ")))
	return fmt.Errorf("%w: %s %q", ErrInvalidSetting, key, value)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
