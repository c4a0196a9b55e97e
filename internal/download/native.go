package download

import (
	"context"
	"net/http"
	"regexp"
	"strconv"

	"github.com/merfiDEV/YT-Downloader/internal/config"
	"github.com/merfiDEV/YT-Downloader/internal/model"
	"github.com/merfiDEV/YT-Downloader/internal/platform"
	"github.com/ytget/ytdlp/v2"
)

// DefaultFPS is assumed when a quality label carries no frame rate ("720p")
const DefaultFPS = 30

var qualityLabelRe = regexp.MustCompile(`^(\d{3,4})p(\d{2,3})?`)

// NativeBackend extracts and downloads with the pure Go extractor
type NativeBackend struct {
	httpClient *http.Client
}

// NewNativeBackend creates a backend; a nil client uses the library default
func NewNativeBackend(httpClient *http.Client) *NativeBackend {
	return &NativeBackend{httpClient: httpClient}
}

// Name returns the config name of the backend
func (b *NativeBackend) Name() string {
	return config.BackendNative
}

func (b *NativeBackend) downloader() *ytdlp.Downloader {
	d := ytdlp.New()
	if b.httpClient != nil {
		d = d.WithHTTPClient(b.httpClient)
	}
	return d
}

// Info resolves the video page and maps its formats
func (b *NativeBackend) Info(ctx context.Context, url string) (*model.VideoInfo, error) {
	_, info, err := b.downloader().ResolveURL(ctx, url)
	if err != nil {
		return nil, err
	}

	return nativeVideoInfo(info), nil
}

// nativeVideoInfo maps the extractor metadata. The format list is never nil:
// the extractor cannot tell a missing list from an empty one.
func nativeVideoInfo(info *ytdlp.VideoInfo) *model.VideoInfo {
	result := &model.VideoInfo{
		ID:      info.ID,
		Title:   info.Title,
		Formats: make([]model.Format, 0, len(info.Formats)),
	}
	for _, f := range info.Formats {
		result.Formats = append(result.Formats, nativeFormat(f.Itag, f.MimeType, f.Quality, f.Size))
	}
	return result
}

// Fetch downloads the format selected by itag
func (b *NativeBackend) Fetch(ctx context.Context, req Request) (string, error) {
	ext := req.Ext
	if ext == "" {
		ext = platform.DefaultExt
	}
	output := platform.ExpandTemplate(req.Output, map[string]string{platform.TemplateExt: ext})

	meter := newTransferMeter(output, nil)
	d := b.downloader().
		WithFormat("itag="+req.FormatID, ext).
		WithOutputPath(output).
		WithProgress(func(p ytdlp.Progress) {
			if req.Progress != nil {
				req.Progress(meter.event(p.DownloadedSize, p.TotalSize))
			}
		})

	if _, err := d.Download(ctx, req.URL); err != nil {
		return "", err
	}

	if req.Progress != nil {
		req.Progress(model.Finished{Filename: output})
	}
	return output, nil
}

// nativeFormat maps the extractor fields to a format descriptor.
// quality is the YouTube qualityLabel, e.g. "1080p60"; audio streams have none.
func nativeFormat(itag int, mime, quality string, size int64) model.Format {
	vcodec, acodec := platform.CodecsFromMime(mime)
	height, fps := parseQualityLabel(quality)

	return model.Format{
		ID:       strconv.Itoa(itag),
		Ext:      platform.ExtFromMime(mime),
		VCodec:   vcodec,
		ACodec:   acodec,
		Height:   height,
		FPS:      fps,
		Filesize: size,
	}
}

func parseQualityLabel(label string) (height int, fps float64) {
	m := qualityLabelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, 0
	}

	height, _ = strconv.Atoi(m[1])
	fps = DefaultFPS
	if m[2] != "" {
		if v, err := strconv.Atoi(m[2]); err == nil {
			fps = float64(v)
		}
	}
	return height, fps
}
