// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, output template and filename handling, MIME parsing,
// yt-dlp JSON parsing, and OS reveal of downloaded files.
package platform
