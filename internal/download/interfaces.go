package download

import (
	"context"
	"time"

	"github.com/merfiDEV/YT-Downloader/internal/model"
)

// Backend adapts one extraction library.
type Backend interface {
	// Name returns the config name of the backend.
	Name() string
	// Info fetches metadata without downloading.
	Info(ctx context.Context, url string) (*model.VideoInfo, error)
	// Fetch downloads the requested format and returns the written file
	// path when the library reports it.
	Fetch(ctx context.Context, req Request) (string, error)
}

// Request is a single transfer handed to a backend.
type Request struct {
	URL      string
	FormatID string
	Ext      string // container of the chosen format, used when the library cannot fill %(ext)s
	Output   string // output template, %(ext)s may be unresolved
	Progress model.ProgressFunc
	Logger   Logger
}

// Logger receives library diagnostics.
type Logger interface {
	Debug(msg string)
	Warning(msg string)
	Error(msg string)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	// NewTask builds the task for the chosen option of a video.
	NewTask(url string, info *model.VideoInfo, opt model.Option, saveDir string) *model.DownloadTask

	// Download runs the task and returns the wall-clock duration of the transfer.
	Download(ctx context.Context, task *model.DownloadTask) (time.Duration, error)
}
