package platform

import (
	"regexp"
	"strings"
)

const (
	// MaxFilenameLength is the maximum allowed length for the filename base.
	MaxFilenameLength = 120
	// DefaultName is the replacement name when the title is empty.
	DefaultName = "video"
	// DefaultExt is used when a backend cannot tell the container.
	DefaultExt = "mp4"
)

// Output template fields, yt-dlp syntax.
const (
	TemplateTitle = "title"
	TemplateExt   = "ext"
	TemplateID    = "id"
)

// '%' is replaced too so an expanded title never reads as a template field.
var unsafeChars = regexp.MustCompile(`[\\/:*?"<>|%]+`)

var templateField = regexp.MustCompile(`%\(([a-z_]+)\)s`)

// SafeName turns a video title into a cross-platform safe filename base.
func SafeName(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		return DefaultName
	}
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)
	if len(name) > MaxFilenameLength {
		name = strings.ToValidUTF8(name[:MaxFilenameLength], "")
	}
	return name
}

// ExpandTemplate substitutes the known "%(field)s" placeholders and leaves
// the others in place for the backend to resolve.
func ExpandTemplate(tmpl string, fields map[string]string) string {
	return templateField.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := templateField.FindStringSubmatch(m)[1]
		if v, ok := fields[key]; ok {
			return v
		}
		return m
	})
}

// HasTemplateField reports whether the placeholder is still unresolved.
func HasTemplateField(tmpl, field string) bool {
	return strings.Contains(tmpl, "%("+field+")s")
}
