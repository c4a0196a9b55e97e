package model

import (
	"fmt"
	"strings"
	"time"
)

// DownloadTask represents the single download of a run
type DownloadTask struct {
	ID          string
	URL         string
	Title       string // video title
	FormatID    string // backend format identifier chosen by the user
	FormatLabel string // menu label of the chosen format
	Ext         string // container extension of the chosen format
	SaveDir     string // destination directory
	Output      string // output template, "%(ext)s" may still be unresolved
	OutputPath  string // final file path reported by the backend
	Status      TaskStatus
	LastError   string    // last error message if any
	StartedAt   time.Time // when the transfer started
	FinishedAt  time.Time // when the transfer finished
}

// Duration returns the wall-clock time of the transfer, zero until finished.
func (dt *DownloadTask) Duration() time.Duration {
	if dt.StartedAt.IsZero() || dt.FinishedAt.IsZero() {
		return 0
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}

// GetDurationString returns the duration in seconds with two decimals
func (dt *DownloadTask) GetDurationString() string {
	return fmt.Sprintf("%.2f", dt.Duration().Seconds())
}

// GetDisplayTitle returns the title, or fallback when the backend gave
// none or only echoed the URL
func (dt *DownloadTask) GetDisplayTitle(fallback string) string {
	title := strings.TrimSpace(dt.Title)
	if title == "" || strings.HasPrefix(title, "http") {
		return fallback
	}
	return title
}
