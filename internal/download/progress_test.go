package download

import (
	"strings"
	"testing"
	"time"

	"github.com/merfiDEV/YT-Downloader/internal/console"
	"github.com/merfiDEV/YT-Downloader/internal/console/consoletest"
	"github.com/merfiDEV/YT-Downloader/internal/model"
)

func TestProgressPrinter(t *testing.T) {
	script := consoletest.New()
	printer := NewProgressPrinter(script, console.NewCatalog("en"))

	printer(model.Downloading{Filename: "Sample.mp4", Percent: " 42.0%", Total: "10 MB", Speed: "1.0 MB/s"})
	printer(model.Finished{Filename: "Sample.mp4"})

	progress := script.Texts(console.ToneProgress)
	if len(progress) != 1 {
		t.Fatalf("Expected one progress line, got %q", progress)
	}
	want := "Downloading: Sample.mp4 | 42.0% of 10 MB at 1.0 MB/s"
	if progress[0] != want {
		t.Errorf("progress = %q, want %q", progress[0], want)
	}
	if strings.Contains(progress[0], "%%") {
		t.Errorf("progress renders a doubled percent sign: %q", progress[0])
	}

	done := script.Texts(console.ToneSuccess)
	if len(done) != 1 || done[0] != "Done downloading, now converting ..." {
		t.Errorf("finished lines = %q", done)
	}
}

func TestTransferMeter(t *testing.T) {
	start := time.Unix(1000, 0)
	tests := []struct {
		name       string
		elapsed    time.Duration
		downloaded int64
		total      int64
		want       model.Downloading
	}{
		{
			name: "nothing yet",
			want: model.Downloading{Filename: "f", Percent: "0.0%", Total: UnknownSize, Speed: UnknownSpeed},
		},
		{
			name:       "half way",
			elapsed:    2 * time.Second,
			downloaded: 1000,
			total:      2000,
			want:       model.Downloading{Filename: "f", Percent: "50.0%", Total: "2.0 kB", Speed: "500 B/s"},
		},
		{
			name:       "unknown total",
			elapsed:    time.Second,
			downloaded: 3000,
			want:       model.Downloading{Filename: "f", Percent: "0.0%", Total: UnknownSize, Speed: "3.0 kB/s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := start
			meter := newTransferMeter("f", func() time.Time { return now })
			now = start.Add(tt.elapsed)

			if got := meter.event(tt.downloaded, tt.total); got != tt.want {
				t.Errorf("event() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
