package model

// CodecNone marks a missing video or audio stream in a format descriptor.
const CodecNone = "none"

// Format describes one downloadable variant of a video as reported by the
// extraction backend. The app only reads and filters these.
type Format struct {
	ID       string  // opaque backend format identifier (yt-dlp format_id, itag)
	Ext      string  // container extension without dot
	VCodec   string  // video codec, CodecNone when absent, "" when unknown
	ACodec   string  // audio codec, CodecNone when absent, "" when unknown
	Height   int     // pixels, 0 if unknown
	FPS      float64 // frames per second, 0 if unknown
	Filesize int64   // bytes, 0 if unknown
}

// HasVideo reports whether the descriptor does not explicitly lack video.
func (f Format) HasVideo() bool {
	return f.VCodec != CodecNone
}

// HasAudio reports whether the descriptor does not explicitly lack audio.
func (f Format) HasAudio() bool {
	return f.ACodec != CodecNone
}

// Option is one line of the quality menu.
type Option struct {
	Label    string
	FormatID string
	Format   Format
}

// VideoInfo is the metadata fetched once per run.
type VideoInfo struct {
	ID      string
	Title   string
	Formats []Format
}
