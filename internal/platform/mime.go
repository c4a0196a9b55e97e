package platform

import (
	"strings"
)

const (
	// ExtM4A is the file extension for MP4 audio.
	ExtM4A = "m4a"
	// ExtWebM is the file extension for WebM media.
	ExtWebM = "webm"

	// MimeVideoMP4 is the MIME type for MP4 video.
	MimeVideoMP4 = "video/mp4"
	// MimeAudioMP4 is the MIME type for MP4 audio.
	MimeAudioMP4 = "audio/mp4"
	// MimeVideoWebM is the MIME type for WebM video.
	MimeVideoWebM = "video/webm"
	// MimeAudioWebM is the MIME type for WebM audio.
	MimeAudioWebM = "audio/webm"
)

// Codec name prefixes as they appear in the codecs= MIME parameter
var (
	VideoCodecPrefixes = []string{"avc1", "avc3", "vp9", "vp09", "vp8", "av01", "hev1", "hvc1", "mp4v"}
	AudioCodecPrefixes = []string{"mp4a", "opus", "vorbis", "ac-3", "ec-3", "flac"}
)

// ExtFromMime returns file extension (without dot) for given mime type.
// Falls back to subtype or mp4 if unknown.
func ExtFromMime(mime string) string {
	base := mimeBase(mime)
	if base == "" {
		return DefaultExt
	}
	switch base {
	case MimeVideoMP4:
		return DefaultExt
	case MimeAudioMP4:
		return ExtM4A
	case MimeVideoWebM, MimeAudioWebM:
		return ExtWebM
	}
	parts := strings.Split(base, "/")
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return DefaultExt
}

// CodecsFromMime splits the codecs= parameter of a MIME type into a video
// and an audio codec. A stream that is not listed is reported as "none";
// when the parameter is missing both are "" (unknown) unless the major type
// rules one out.
func CodecsFromMime(mime string) (vcodec, acodec string) {
	const none = "none"

	base := mimeBase(mime)
	params := ""
	if i := strings.Index(mime, ";"); i >= 0 {
		params = mime[i+1:]
	}

	var codecs []string
	for _, p := range strings.Split(params, ";") {
		p = strings.TrimSpace(p)
		if !strings.HasPrefix(strings.ToLower(p), "codecs=") {
			continue
		}
		list := strings.Trim(p[len("codecs="):], `"' `)
		for _, c := range strings.Split(list, ",") {
			if c = strings.TrimSpace(c); c != "" {
				codecs = append(codecs, c)
			}
		}
	}

	if len(codecs) == 0 {
		switch {
		case strings.HasPrefix(base, "audio/"):
			return none, ""
		default:
			return "", ""
		}
	}

	vcodec, acodec = none, none
	for _, c := range codecs {
		lc := strings.ToLower(c)
		switch {
		case hasAnyPrefix(lc, VideoCodecPrefixes) && vcodec == none:
			vcodec = c
		case hasAnyPrefix(lc, AudioCodecPrefixes) && acodec == none:
			acodec = c
		}
	}
	if strings.HasPrefix(base, "audio/") {
		vcodec = none
	}
	return vcodec, acodec
}

func mimeBase(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return mime
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
