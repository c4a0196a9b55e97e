// Package download implements the download orchestration on top of an
// extraction backend: the native Go extractor (github.com/ytget/ytdlp/v2),
// the yt-dlp binary (via github.com/lrstanley/go-ytdlp) or
// github.com/kkdai/youtube/v2. It builds the output path, relays progress
// to the console and times the transfer.
package download
