package common

import (
	"mime"
	"path/filepath"
	"strings"
)

// MediaFileType classifies an upload. It is stored in GridFS metadata and
// echoed back on upload responses.
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
)

func (mft MediaFileType) String() string {
	return string(mft)
}

func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

// DetectFileType classifies by MIME type, ignoring parameters and case.
// Anything that is not video/* is treated as an image (thumbnails, avatars
// and cover images are the only other uploads).
func DetectFileType(mimeType string) MediaFileType {
	mediaType := strings.ToLower(strings.TrimSpace(mimeType))
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}
	if strings.HasPrefix(mediaType, "video/") {
		return MediaFileTypeVideo
	}
	return MediaFileTypeImage
}

var extContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
}

// ContentTypeFor guesses a Content-Type from a file name when the client or
// the stored metadata did not supply one.
func ContentTypeFor(filename string) string {
	if ct, ok := extContentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
