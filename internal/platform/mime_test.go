package platform

import "testing"

func TestExtFromMime(t *testing.T) {
	tests := []struct {
		mime     string
		expected string
	}{
		{`video/mp4; codecs="avc1.42001E, mp4a.40.2"`, "mp4"},
		{`audio/mp4; codecs="mp4a.40.2"`, ExtM4A},
		{`video/webm; codecs="vp9"`, ExtWebM},
		{`audio/webm; codecs="opus"`, ExtWebM},
		{"video/3gpp", "3gpp"},
		{"", DefaultExt},
		{"garbage", DefaultExt},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			if got := ExtFromMime(tt.mime); got != tt.expected {
				t.Errorf("ExtFromMime(%q) = %q, expected %q", tt.mime, got, tt.expected)
			}
		})
	}
}

func TestCodecsFromMime(t *testing.T) {
	tests := []struct {
		mime       string
		wantVCodec string
		wantACodec string
	}{
		{`video/mp4; codecs="avc1.42001E, mp4a.40.2"`, "avc1.42001E", "mp4a.40.2"},
		{`video/mp4; codecs="avc1.640028"`, "avc1.640028", "none"},
		{`video/webm; codecs="vp9"`, "vp9", "none"},
		{`audio/mp4; codecs="mp4a.40.2"`, "none", "mp4a.40.2"},
		{`audio/webm; codecs="opus"`, "none", "opus"},
		{"video/mp4", "", ""},
		{"audio/mp4", "none", ""},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			v, a := CodecsFromMime(tt.mime)
			if v != tt.wantVCodec || a != tt.wantACodec {
				t.Errorf("CodecsFromMime(%q) = (%q, %q), expected (%q, %q)",
					tt.mime, v, a, tt.wantVCodec, tt.wantACodec)
			}
		})
	}
}
