// Package cli wires the configuration, console, backend and download
// service into the yt-downloader command.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/merfiDEV/YT-Downloader/internal/app"
	"github.com/merfiDEV/YT-Downloader/internal/config"
	"github.com/merfiDEV/YT-Downloader/internal/console"
	"github.com/merfiDEV/YT-Downloader/internal/download"
)

const AppName = "yt-downloader"

// Flags holds the command line flags
type Flags struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand builds the root command. The run itself is interactive.
func NewRootCommand(version string) *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Download a YouTube video as MP4 in 480p, 720p or 1080p",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				// a second signal falls back to the default handler
				<-ctx.Done()
				stop()
			}()
			return Run(ctx, console.NewTerminal(), flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to config.json (default: next to the executable)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show debug output of the extraction backend")
	cmd.AddCommand(newConfigCommand(&flags))
	return cmd
}

// Execute runs the root command. It returns an error when the run failed,
// after the failure was shown to the user.
func Execute(version string) error {
	return NewRootCommand(version).ExecuteContext(context.Background())
}

// Run loads the configuration and performs one interactive download
func Run(ctx context.Context, c console.Console, flags Flags) error {
	settings, err := loadSettings(c, flags.ConfigPath)
	if err != nil {
		return err
	}

	msgs := console.NewCatalog(settings.GetLanguage())
	logger := download.NewConsoleLogger(c, msgs, flags.Verbose)

	log.SetFlags(0)
	if flags.Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(logger.Writer())
	}
	log.Printf("Config: %s, backend: %s", settings.Path(), settings.GetBackend())

	backend, err := NewBackend(settings.GetBackend())
	if err != nil {
		c.Tell(console.ToneFailure, msgs.Format(console.KeyConfigFault, err))
		return err
	}

	service := download.NewService(backend, settings.GetFilenameTemplate())
	service.SetLogger(logger)
	service.SetUpdateCallback(download.NewProgressPrinter(c, msgs))

	return app.New(app.Options{
		Console:    c,
		Messages:   msgs,
		Store:      settings,
		Fetcher:    backend,
		Downloader: service,
		AutoReveal: settings.GetAutoRevealOnComplete(),
	}).Run(ctx)
}

// NewBackend returns the extraction backend registered under name
func NewBackend(name string) (download.Backend, error) {
	switch name {
	case config.BackendNative:
		return download.NewNativeBackend(nil), nil
	case config.BackendYTDLP:
		return download.NewYTDLPBackend(), nil
	case config.BackendYouTube:
		return download.NewYouTubeBackend(nil), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

// loadSettings loads the config at path, or next to the executable when
// path is empty, and reports a fault on c
func loadSettings(c console.Console, path string) (*config.Settings, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			c.Tell(console.ToneFailure, console.NewCatalog(console.LangSystem).Format(console.KeyConfigFault, err))
			return nil, err
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		c.Tell(console.ToneFailure, console.NewCatalog(console.LangSystem).Format(console.KeyConfigFault, err))
		return nil, err
	}
	return settings, nil
}
