package entity

import (
	"path"
	"strings"
)

// FileKind names an upload slot on the profile.
type FileKind string

const (
	FileKindPhoto  FileKind = "photo"
	FileKindResume FileKind = "resume"
)

var allowedContentTypes = map[FileKind]map[string]string{
	FileKindPhoto: {
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	},
	FileKindResume: {
		"application/pdf":    ".pdf",
		"application/msword": ".doc",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	},
}

// IsValid reports whether k is a known upload slot.
func (k FileKind) IsValid() bool {
	_, ok := allowedContentTypes[k]

	return ok
}

// Extension returns the file extension stored for the given content type,
// or false if the content type is not accepted for this slot.
func (k FileKind) Extension(contentType string) (string, bool) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	ext, ok := allowedContentTypes[k][mediaType]

	return ext, ok
}

// ObjectKey builds the storage key for an upload: <kind>/<owner>/<name><ext>.
func (k FileKind) ObjectKey(owner, name, ext string) string {
	return path.Join(string(k), owner, name+ext)
}
