package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/merfiDEV/YT-Downloader/internal/model"
)

// ErrNoJSONOutput is returned when yt-dlp printed no info object
var ErrNoJSONOutput = errors.New("yt-dlp produced no JSON output")

// ytdlpInfo mirrors the subset of the yt-dlp info dict the app reads
type ytdlpInfo struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Formats []ytdlpFormat `json:"formats"`
}

type ytdlpFormat struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	VCodec         *string  `json:"vcodec"`
	ACodec         *string  `json:"acodec"`
	Height         *float64 `json:"height"`
	FPS            *float64 `json:"fps"`
	Filesize       *float64 `json:"filesize"`
	FilesizeApprox *float64 `json:"filesize_approx"`
}

// ParseYTDLPInfo parses the info JSON printed by `yt-dlp --print-json`.
// Only the last JSON object in the output is used, so warnings or progress
// lines printed before it are ignored.
func ParseYTDLPInfo(output string) (*model.VideoInfo, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "{") {
			continue
		}

		var raw ytdlpInfo
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, fmt.Errorf("failed to decode yt-dlp output: %w", err)
		}
		return raw.toModel(), nil
	}

	return nil, ErrNoJSONOutput
}

func (r ytdlpInfo) toModel() *model.VideoInfo {
	info := &model.VideoInfo{
		ID:    r.ID,
		Title: r.Title,
	}
	if r.Formats == nil {
		return info
	}

	info.Formats = make([]model.Format, 0, len(r.Formats))
	for _, f := range r.Formats {
		info.Formats = append(info.Formats, f.toModel())
	}
	return info
}

func (f ytdlpFormat) toModel() model.Format {
	out := model.Format{
		ID:  f.FormatID,
		Ext: f.Ext,
	}
	if f.VCodec != nil {
		out.VCodec = *f.VCodec
	}
	if f.ACodec != nil {
		out.ACodec = *f.ACodec
	}
	if f.Height != nil {
		out.Height = int(*f.Height)
	}
	if f.FPS != nil {
		out.FPS = *f.FPS
	}
	switch {
	case f.Filesize != nil:
		out.Filesize = int64(*f.Filesize)
	case f.FilesizeApprox != nil:
		out.Filesize = int64(*f.FilesizeApprox)
	}
	return out
}
