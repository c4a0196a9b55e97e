package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/merfiDEV/YT-Downloader/internal/console"
	"github.com/merfiDEV/YT-Downloader/internal/download"
	"github.com/merfiDEV/YT-Downloader/internal/model"
	"github.com/merfiDEV/YT-Downloader/internal/platform"
	"github.com/merfiDEV/YT-Downloader/internal/selector"
)

// InfoFetcher fetches video metadata without downloading
type InfoFetcher interface {
	Info(ctx context.Context, url string) (*model.VideoInfo, error)
}

// Options configures an App
type Options struct {
	Console    console.Console
	Messages   *console.Catalog
	Store      ConfigStore
	Fetcher    InfoFetcher
	Downloader download.Downloader
	AutoReveal bool // open the file manager after a successful download
}

// App is a single interactive run
type App struct {
	console    console.Console
	msgs       *console.Catalog
	resolver   *PathResolver
	fetcher    InfoFetcher
	downloader download.Downloader
	selector   *selector.Selector
	autoReveal bool
	reveal     func(string) error

	state model.RunState
	task  *model.DownloadTask
}

// New creates an App in the Start state
func New(opts Options) *App {
	return &App{
		console:    opts.Console,
		msgs:       opts.Messages,
		resolver:   NewPathResolver(opts.Console, opts.Messages, opts.Store),
		fetcher:    opts.Fetcher,
		downloader: opts.Downloader,
		selector:   selector.New(opts.Console, opts.Messages),
		autoReveal: opts.AutoReveal,
		reveal:     platform.OpenFileInManager,
		state:      model.RunStateStart,
	}
}

// State returns the current step of the run
func (a *App) State() model.RunState {
	return a.state
}

// Task returns the download task once a format was chosen
func (a *App) Task() *model.DownloadTask {
	return a.task
}

// Run walks the flow once. It returns nil only when the run ends Reported;
// any error leaves the App in the Failed state after the user was told.
// An App runs once.
func (a *App) Run(ctx context.Context) error {
	if a.state.IsTerminal() {
		return ErrRunFinished
	}

	// the store handed to New is already loaded
	a.setState(model.RunStateConfigLoaded)
	a.console.Tell(console.ToneAccent, a.msgs.Text(console.KeyBanner))

	dir, err := a.resolver.Resolve(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.setState(model.RunStatePathResolved)
	a.console.Tell(console.ToneInfo, a.msgs.Format(console.KeySavingTo, dir))

	answer, err := a.console.Ask(ctx, a.msgs.Text(console.KeyAskURL))
	if err != nil {
		return a.fail(inputError(err))
	}
	url := cleanInput(answer)
	a.setState(model.RunStateURLEntered)

	a.console.Tell(console.ToneInfo, a.msgs.Text(console.KeyFetchingInfo))
	info, err := a.fetcher.Info(ctx, url)
	if err != nil {
		return a.fail(externalError(ctx, fmt.Errorf("fetch video info: %w", err)))
	}
	a.setState(model.RunStateMetadataFetched)

	if info.Formats == nil {
		a.console.Tell(console.ToneFailure, a.msgs.Text(console.KeyNoFormats))
		return a.fail(ErrNoFormats)
	}

	opt, ok, err := a.selector.Choose(ctx, info.Formats)
	if err != nil {
		return a.fail(inputError(err))
	}
	if !ok {
		return a.fail(ErrNoMatchingFormats)
	}
	a.setState(model.RunStateFormatChosen)

	a.task = a.downloader.NewTask(url, info, opt, dir)
	title := a.task.GetDisplayTitle(a.msgs.Text(console.KeyUnknownVideo))
	a.console.Tell(console.ToneInfo, a.msgs.Format(console.KeyStartingDownload, title, opt.Label))

	if _, err := a.downloader.Download(ctx, a.task); err != nil {
		return a.fail(externalError(ctx, err))
	}
	a.setState(model.RunStateDownloaded)

	console.Clear(a.console)
	a.console.Tell(console.ToneSuccess, a.msgs.Format(console.KeyDownloadSucceeded, title, a.task.GetDurationString()))
	a.setState(model.RunStateReported)

	if a.autoReveal && a.task.OutputPath != "" {
		if err := a.reveal(a.task.OutputPath); err != nil {
			a.console.Tell(console.ToneWarning, a.msgs.Format(console.KeyRevealFailed, err))
		}
	}
	return nil
}

func (a *App) setState(s model.RunState) {
	log.Printf("Run: %s -> %s", a.state, s)
	a.state = s
}

// fail moves to Failed and tells the user why. The format errors were
// already reported where they were detected.
func (a *App) fail(err error) error {
	switch {
	case errors.Is(err, ErrNoFormats), errors.Is(err, ErrNoMatchingFormats):
	case errors.Is(err, ErrInputClosed):
		a.console.Tell(console.ToneFailure, a.msgs.Text(console.KeyInputClosed))
	case errors.Is(err, ErrInterrupted):
		a.console.Tell(console.ToneFailure, a.msgs.Text(console.KeyInterrupted))
	default:
		a.console.Tell(console.ToneFailure, a.msgs.Format(console.KeyErrorOccurred, err))
	}
	a.setState(model.RunStateFailed)
	return err
}

// externalError marks a backend failure caused by cancellation; libraries
// do not always wrap the context error.
func externalError(ctx context.Context, err error) error {
	if ctx.Err() != nil && !errors.Is(err, ErrInterrupted) {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return err
}
