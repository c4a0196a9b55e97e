// Package selector narrows the formats of a video to the curated quality
// list (480p/720p/1080p muxed MP4) and lets the user pick one.
package selector

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/merfiDEV/YT-Downloader/internal/console"
	"github.com/merfiDEV/YT-Downloader/internal/model"
)

// RequiredExt is the only container offered
const RequiredExt = "mp4"

// NotAvailable is shown for unknown sizes and frame rates
const NotAvailable = "N/A"

const bytesPerMB = 1024 * 1024

// QualityHeights are the offered resolutions
var QualityHeights = []int{480, 720, 1080}

// Selector presents the quality menu on a console.
type Selector struct {
	console console.Console
	msgs    *console.Catalog
}

// New creates a selector
func New(c console.Console, msgs *console.Catalog) *Selector {
	return &Selector{console: c, msgs: msgs}
}

// Choose prints the menu for the qualifying formats and asks until the user
// enters a valid number. ok is false when no format qualifies.
func (s *Selector) Choose(ctx context.Context, formats []model.Format) (opt model.Option, ok bool, err error) {
	options := Options(formats)
	if len(options) == 0 {
		s.console.Tell(console.ToneFailure, s.msgs.Text(console.KeyNoMatchingFormats))
		return model.Option{}, false, nil
	}

	s.console.Tell(console.ToneAccent, s.msgs.Text(console.KeyChooseQuality))
	for i, o := range options {
		s.console.Tell(console.ToneInfo, fmt.Sprintf("%d: %s", i+1, o.Label))
	}

	for {
		answer, err := s.console.Ask(ctx, s.msgs.Text(console.KeyAskQuality))
		if err != nil {
			return model.Option{}, false, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			s.console.Tell(console.ToneFailure, s.msgs.Text(console.KeyNotANumber))
			continue
		}
		if choice < 1 || choice > len(options) {
			s.console.Tell(console.ToneFailure, s.msgs.Text(console.KeyInvalidNumber))
			continue
		}
		return options[choice-1], true, nil
	}
}

// Qualifies reports whether f is a muxed MP4 at one of the offered heights
func Qualifies(f model.Format) bool {
	if !f.HasVideo() || !f.HasAudio() || f.Ext != RequiredExt {
		return false
	}
	for _, h := range QualityHeights {
		if f.Height == h {
			return true
		}
	}
	return false
}

// Options filters formats, keeps one per (height, fps) pair with the last
// one seen winning, and returns them ordered by height then fps.
func Options(formats []model.Format) []model.Option {
	byHeight := make(map[int]map[float64]model.Format)
	for _, f := range formats {
		if !Qualifies(f) {
			continue
		}
		if byHeight[f.Height] == nil {
			byHeight[f.Height] = make(map[float64]model.Format)
		}
		byHeight[f.Height][f.FPS] = f
	}

	heights := make([]int, 0, len(byHeight))
	for h := range byHeight {
		heights = append(heights, h)
	}
	sort.Ints(heights)

	var options []model.Option
	for _, h := range heights {
		rates := make([]float64, 0, len(byHeight[h]))
		for fps := range byHeight[h] {
			rates = append(rates, fps)
		}
		sort.Float64s(rates)

		for _, fps := range rates {
			f := byHeight[h][fps]
			options = append(options, model.Option{
				Label:    Label(f),
				FormatID: f.ID,
				Format:   f,
			})
		}
	}
	return options
}

// Label renders "<height>p @ <fps>fps (<size>)"
func Label(f model.Format) string {
	return fmt.Sprintf("%dp @ %sfps (%s)", f.Height, fpsString(f.FPS), SizeString(f.Filesize))
}

// SizeString renders a byte count in MB with two decimals, or N/A
func SizeString(size int64) string {
	if size <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.2fMB", float64(size)/bytesPerMB)
}

func fpsString(fps float64) string {
	if fps <= 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(fps, 'f', -1, 64)
}
