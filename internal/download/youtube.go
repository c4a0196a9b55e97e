package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/merfiDEV/YT-Downloader/internal/config"
	"github.com/merfiDEV/YT-Downloader/internal/model"
	"github.com/merfiDEV/YT-Downloader/internal/platform"
)

// progressThrottle limits how often stream progress is reported
const progressThrottle = 200 * time.Millisecond

// YouTubeBackend streams formats with github.com/kkdai/youtube
type YouTubeBackend struct {
	client *youtube.Client
}

// NewYouTubeBackend creates a backend; a nil client uses the zero value client
func NewYouTubeBackend(client *youtube.Client) *YouTubeBackend {
	if client == nil {
		client = &youtube.Client{}
	}
	return &YouTubeBackend{client: client}
}

// Name returns the config name of the backend
func (b *YouTubeBackend) Name() string {
	return config.BackendYouTube
}

// Info fetches the video metadata
func (b *YouTubeBackend) Info(ctx context.Context, url string) (*model.VideoInfo, error) {
	video, err := b.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, err
	}

	return youtubeVideoInfo(video), nil
}

// youtubeVideoInfo maps the video metadata; the format list is never nil
func youtubeVideoInfo(video *youtube.Video) *model.VideoInfo {
	info := &model.VideoInfo{
		ID:      video.ID,
		Title:   video.Title,
		Formats: make([]model.Format, 0, len(video.Formats)),
	}
	for _, f := range video.Formats {
		info.Formats = append(info.Formats, youtubeFormat(f))
	}
	return info
}

// Fetch streams the format with the requested itag into the output file
func (b *YouTubeBackend) Fetch(ctx context.Context, req Request) (string, error) {
	video, err := b.client.GetVideoContext(ctx, req.URL)
	if err != nil {
		return "", err
	}

	var format *youtube.Format
	for i := range video.Formats {
		if strconv.Itoa(video.Formats[i].ItagNo) == req.FormatID {
			format = &video.Formats[i]
			break
		}
	}
	if format == nil {
		return "", fmt.Errorf("format %s is not available for %s", req.FormatID, video.ID)
	}

	output := platform.ExpandTemplate(req.Output, map[string]string{
		platform.TemplateExt:   platform.ExtFromMime(format.MimeType),
		platform.TemplateTitle: platform.SafeName(video.Title),
		platform.TemplateID:    video.ID,
	})

	stream, size, err := b.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	pw := &progressWriter{
		meter:    newTransferMeter(output, nil),
		total:    size,
		progress: req.Progress,
	}
	if err := saveStream(output, io.TeeReader(stream, pw), createFile); err != nil {
		return "", err
	}

	pw.flush()
	if req.Progress != nil {
		req.Progress(model.Finished{Filename: output})
	}
	return output, nil
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// saveStream copies src into a new file at path. A failed copy or close
// removes the partial file.
func saveStream(path string, src io.Reader, create func(string) (io.WriteCloser, error)) (err error) {
	file, err := create(path)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			err = errors.Join(err, removePartial(path))
		}
	}()

	if _, err = io.Copy(file, src); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func removePartial(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove partial file: %w", err)
	}
	return nil
}

// youtubeFormat maps a stream descriptor to a format descriptor
func youtubeFormat(f youtube.Format) model.Format {
	vcodec, acodec := platform.CodecsFromMime(f.MimeType)
	if f.Height == 0 {
		vcodec = model.CodecNone
	}
	if f.AudioChannels == 0 {
		acodec = model.CodecNone
	}

	return model.Format{
		ID:       strconv.Itoa(f.ItagNo),
		Ext:      platform.ExtFromMime(f.MimeType),
		VCodec:   vcodec,
		ACodec:   acodec,
		Height:   f.Height,
		FPS:      float64(f.FPS),
		Filesize: f.ContentLength,
	}
}

// progressWriter counts streamed bytes and reports them at most every
// progressThrottle.
type progressWriter struct {
	meter    *transferMeter
	total    int64
	written  int64
	last     time.Time
	progress model.ProgressFunc
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	if now := w.meter.now(); now.Sub(w.last) >= progressThrottle {
		w.last = now
		w.report()
	}
	return len(p), nil
}

func (w *progressWriter) flush() {
	w.report()
}

func (w *progressWriter) report() {
	if w.progress != nil {
		w.progress(w.meter.event(w.written, w.total))
	}
}
