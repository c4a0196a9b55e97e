package selector

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/merfiDEV/YT-Downloader/internal/console"
	"github.com/merfiDEV/YT-Downloader/internal/console/consoletest"
	"github.com/merfiDEV/YT-Downloader/internal/model"
)

func muxed(id string, height int, fps float64, size int64) model.Format {
	return model.Format{ID: id, Ext: "mp4", VCodec: "avc1", ACodec: "mp4a", Height: height, FPS: fps, Filesize: size}
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name     string
		format   model.Format
		expected bool
	}{
		{"muxed 720p mp4", muxed("22", 720, 30, 0), true},
		{"unknown codecs count as present", model.Format{Ext: "mp4", Height: 480}, true},
		{"video only", model.Format{Ext: "mp4", VCodec: "avc1", ACodec: model.CodecNone, Height: 1080}, false},
		{"audio only", model.Format{Ext: "mp4", VCodec: model.CodecNone, ACodec: "mp4a", Height: 720}, false},
		{"webm", model.Format{Ext: "webm", VCodec: "vp9", ACodec: "opus", Height: 720}, false},
		{"360p", muxed("18", 360, 30, 0), false},
		{"1440p", muxed("x", 1440, 30, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifies(tt.format); got != tt.expected {
				t.Errorf("Qualifies() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestOptions_AscendingOrder(t *testing.T) {
	options := Options([]model.Format{
		muxed("a", 720, 30, 0),
		muxed("b", 480, 30, 0),
		muxed("c", 1080, 30, 0),
	})

	expected := []string{"b", "a", "c"}
	if len(options) != len(expected) {
		t.Fatalf("expected %d options, got %d", len(expected), len(options))
	}
	for i, id := range expected {
		if options[i].FormatID != id {
			t.Errorf("option %d: expected %s, got %s", i, id, options[i].FormatID)
		}
	}
	if options[0].Label != "480p @ 30fps (N/A)" {
		t.Errorf("unexpected first label %q", options[0].Label)
	}
}

func TestOptions_DedupAndFpsOrder(t *testing.T) {
	options := Options([]model.Format{
		muxed("first", 720, 60, 0),
		muxed("30fps", 720, 30, 0),
		muxed("second", 720, 60, 0),
		{ID: "noise", Ext: "webm", VCodec: "vp9", ACodec: "opus", Height: 720, FPS: 30},
	})

	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if options[0].FormatID != "30fps" {
		t.Errorf("expected 30fps first, got %s", options[0].FormatID)
	}
	if options[1].FormatID != "second" {
		t.Errorf("expected last seen 60fps format to win, got %s", options[1].FormatID)
	}
}

func TestOptions_SubsetOfInput(t *testing.T) {
	input := []model.Format{
		muxed("1", 480, 25, 0),
		muxed("2", 480, 25, 0),
		muxed("3", 720, 50, 0),
		{ID: "4", Ext: "mp4", VCodec: "avc1", ACodec: model.CodecNone, Height: 1080, FPS: 30},
		{ID: "5", Ext: "m4a", VCodec: model.CodecNone, ACodec: "mp4a"},
	}

	options := Options(input)
	seen := make(map[[2]float64]bool)
	for _, o := range options {
		if !Qualifies(o.Format) {
			t.Errorf("option %s does not qualify", o.FormatID)
		}
		key := [2]float64{float64(o.Format.Height), o.Format.FPS}
		if seen[key] {
			t.Errorf("duplicate (height, fps) pair %v", key)
		}
		seen[key] = true
	}
	if len(options) != 2 {
		t.Errorf("expected 2 options, got %d", len(options))
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		format   model.Format
		expected string
	}{
		{"known size", muxed("22", 720, 30, 2097152), "720p @ 30fps (2.00MB)"},
		{"unknown size", muxed("22", 720, 30, 0), "720p @ 30fps (N/A)"},
		{"fractional fps", muxed("22", 1080, 29.97, 1572864), "1080p @ 29.97fps (1.50MB)"},
		{"unknown fps", muxed("22", 480, 0, 0), "480p @ N/Afps (N/A)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.format); got != tt.expected {
				t.Errorf("Label() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSizeString(t *testing.T) {
	if got := SizeString(2097152); got != "2.00MB" {
		t.Errorf("expected 2.00MB, got %s", got)
	}
	if got := SizeString(0); got != NotAvailable {
		t.Errorf("expected %s, got %s", NotAvailable, got)
	}
}

func threeFormats() []model.Format {
	return []model.Format{
		muxed("18", 480, 30, 0),
		muxed("22", 720, 30, 0),
		muxed("37", 1080, 30, 0),
	}
}

func TestChoose_RepromptsUntilValid(t *testing.T) {
	script := consoletest.New("abc", "99", "2")
	msgs := console.NewCatalog(console.LangEnglish)

	opt, ok, err := New(script, msgs).Choose(context.Background(), threeFormats())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a choice")
	}
	if opt.FormatID != "22" {
		t.Errorf("expected format 22, got %s", opt.FormatID)
	}
	if opt.Label != "720p @ 30fps (N/A)" {
		t.Errorf("unexpected label %q", opt.Label)
	}

	if len(script.Prompts) != 3 {
		t.Errorf("expected 3 prompts, got %d", len(script.Prompts))
	}
	if script.Count(msgs.Text(console.KeyNotANumber)) != 1 {
		t.Error("expected one not-a-number message")
	}
	if script.Count(msgs.Text(console.KeyInvalidNumber)) != 1 {
		t.Error("expected one out-of-range message")
	}

	menu := script.Texts(console.ToneInfo)
	expectedMenu := []string{"1: 480p @ 30fps (N/A)", "2: 720p @ 30fps (N/A)", "3: 1080p @ 30fps (N/A)"}
	if len(menu) != len(expectedMenu) {
		t.Fatalf("expected %d menu lines, got %v", len(expectedMenu), menu)
	}
	for i := range expectedMenu {
		if menu[i] != expectedMenu[i] {
			t.Errorf("menu line %d: expected %q, got %q", i, expectedMenu[i], menu[i])
		}
	}
}

func TestChoose_NoQualifyingFormats(t *testing.T) {
	script := consoletest.New()
	msgs := console.NewCatalog(console.LangEnglish)

	_, ok, err := New(script, msgs).Choose(context.Background(), []model.Format{
		{ID: "251", Ext: "webm", VCodec: model.CodecNone, ACodec: "opus"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no choice")
	}
	if len(script.Prompts) != 0 {
		t.Error("should not prompt without options")
	}
	if script.Count(msgs.Text(console.KeyNoMatchingFormats)) != 1 {
		t.Error("expected the no-formats message")
	}
}

func TestChoose_InputClosed(t *testing.T) {
	script := consoletest.New("0")
	msgs := console.NewCatalog(console.LangEnglish)

	_, ok, err := New(script, msgs).Choose(context.Background(), threeFormats())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if ok {
		t.Error("expected no choice")
	}
}

func TestChoose_Cancelled(t *testing.T) {
	script := consoletest.New("2")
	msgs := console.NewCatalog(console.LangEnglish)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := New(script, msgs).Choose(ctx, threeFormats())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ok {
		t.Error("expected no choice")
	}
}
