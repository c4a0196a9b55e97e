package download

import (
	"context"
	"strings"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"
	"github.com/merfiDEV/YT-Downloader/internal/config"
	"github.com/merfiDEV/YT-Downloader/internal/model"
	"github.com/merfiDEV/YT-Downloader/internal/platform"
)

// ProgressInterval is how often yt-dlp progress is reported
const ProgressInterval = 500 * time.Millisecond

// yt-dlp message prefixes on stderr
const (
	ytdlpErrorPrefix   = "ERROR:"
	ytdlpWarningPrefix = "WARNING:"
)

// YTDLPBackend drives an installed yt-dlp binary
type YTDLPBackend struct{}

// NewYTDLPBackend creates a backend using the yt-dlp found in PATH
func NewYTDLPBackend() *YTDLPBackend {
	return &YTDLPBackend{}
}

// Name returns the config name of the backend
func (b *YTDLPBackend) Name() string {
	return config.BackendYTDLP
}

// Info runs yt-dlp without downloading and parses the info JSON
func (b *YTDLPBackend) Info(ctx context.Context, url string) (*model.VideoInfo, error) {
	res, err := goytdlp.New().
		SkipDownload().
		PrintJSON().
		Run(ctx, url)
	if err != nil {
		return nil, err
	}
	return platform.ParseYTDLPInfo(res.Stdout)
}

// Fetch downloads one format id; yt-dlp fills %(ext)s itself
func (b *YTDLPBackend) Fetch(ctx context.Context, req Request) (string, error) {
	var finalPath string

	dl := goytdlp.New().
		Format(req.FormatID).
		Output(req.Output)

	var meter *transferMeter
	dl.ProgressFunc(ProgressInterval, func(update goytdlp.ProgressUpdate) {
		filename := ""
		if update.Info != nil && update.Info.Filename != nil {
			filename = *update.Info.Filename
		}

		switch update.Status {
		case goytdlp.ProgressStatusFinished:
			finalPath = filename
			if req.Progress != nil {
				req.Progress(model.Finished{Filename: filename})
			}
		case goytdlp.ProgressStatusDownloading:
			if meter == nil {
				meter = newTransferMeter(filename, nil)
				if !update.Started.IsZero() {
					meter.started = update.Started
				}
			}
			if req.Progress != nil {
				req.Progress(meter.event(int64(update.DownloadedBytes), int64(update.TotalBytes)))
			}
		}
	})

	res, err := dl.Run(ctx, req.URL)
	if err != nil {
		forwardYTDLPOutput(res, err, req.Logger)
		return "", err
	}
	if res != nil {
		forwardYTDLPOutput(res, nil, req.Logger)
	}
	return finalPath, nil
}

// forwardYTDLPOutput hands yt-dlp stderr to the logger. When a run failed
// without any ERROR line the error itself is logged.
func forwardYTDLPOutput(res *goytdlp.Result, runErr error, logger Logger) {
	if logger == nil {
		return
	}

	reported := false
	if res != nil {
		for _, line := range strings.Split(res.Stderr, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, ytdlpErrorPrefix):
				logger.Error(strings.TrimSpace(strings.TrimPrefix(line, ytdlpErrorPrefix)))
				reported = true
			case strings.HasPrefix(line, ytdlpWarningPrefix):
				logger.Warning(strings.TrimSpace(strings.TrimPrefix(line, ytdlpWarningPrefix)))
			case line != "":
				logger.Debug(line)
			}
		}
	}

	if runErr != nil && !reported {
		logger.Error(runErr.Error())
	}
}
