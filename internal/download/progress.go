package download

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/merfiDEV/YT-Downloader/internal/console"
	"github.com/merfiDEV/YT-Downloader/internal/model"
)

// Progress text placeholders
const (
	UnknownSize     = "N/A"
	UnknownSpeed    = "N/A"
	ProgressPercent = "%.1f%%"
)

// NewProgressPrinter returns a progress callback that rewrites one console
// line while downloading and prints a notice when the file is finished.
func NewProgressPrinter(c console.Console, msgs *console.Catalog) model.ProgressFunc {
	return func(ev model.ProgressEvent) {
		switch e := ev.(type) {
		case model.Downloading:
			percent := strings.TrimSuffix(strings.TrimSpace(e.Percent), "%")
			c.Tell(console.ToneProgress, msgs.Format(console.KeyDownloadProgress, e.Filename, percent, e.Total, e.Speed))
		case model.Finished:
			c.Tell(console.ToneSuccess, msgs.Text(console.KeyDownloadFinished))
		}
	}
}

// transferMeter turns byte counters into human readable progress events
type transferMeter struct {
	filename string
	started  time.Time
	now      func() time.Time
}

func newTransferMeter(filename string, now func() time.Time) *transferMeter {
	if now == nil {
		now = time.Now
	}
	return &transferMeter{filename: filename, started: now(), now: now}
}

// event builds a Downloading event; total <= 0 means unknown
func (m *transferMeter) event(downloaded, total int64) model.Downloading {
	ev := model.Downloading{
		Filename: m.filename,
		Percent:  fmt.Sprintf(ProgressPercent, 0.0),
		Total:    UnknownSize,
		Speed:    UnknownSpeed,
	}

	if total > 0 {
		ev.Percent = fmt.Sprintf(ProgressPercent, float64(downloaded)/float64(total)*100)
		ev.Total = humanize.Bytes(uint64(total))
	}

	if elapsed := m.now().Sub(m.started).Seconds(); elapsed > 0 && downloaded > 0 {
		ev.Speed = humanize.Bytes(uint64(float64(downloaded)/elapsed)) + "/s"
	}
	return ev
}
