package utils

import "strings"

// mimeTypeToExtension maps the media types guests upload to their usual file extensions.
var mimeTypeToExtension = map[string]string{
	"image/avif":      ".avif",
	"image/bmp":       ".bmp",
	"image/gif":       ".gif",
	"image/heic":      ".heic",
	"image/heif":      ".heif",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/svg+xml":   ".svg",
	"image/tiff":      ".tif",
	"image/webp":      ".webp",
	"video/3gpp":      ".3gp",
	"video/avi":       ".avi",
	"video/mp4":       ".mp4",
	"video/mpeg":      ".mpeg",
	"video/ogg":       ".ogv",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
	"video/x-flv":     ".flv",
	"video/x-m4v":     ".m4v",
	"video/x-msvideo": ".avi",
	"video/x-ms-wmv":  ".wmv",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	if ext, ok := mimeTypeToExtension[BaseMimeType(mimeType)]; ok {
		return ext
	}

	return ".bin"
}

// BaseMimeType strips parameters such as charset and lowercases the type.
func BaseMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

// HasMediaPrefix reports whether mimeType belongs to one of the given top-level
// families, e.g. "image/" or "video/".
func HasMediaPrefix(mimeType string, prefixes ...string) bool {
	base := BaseMimeType(mimeType)
	for _, p := range prefixes {
		if strings.HasPrefix(base, p) {
			return true
		}
	}

	return false
}
