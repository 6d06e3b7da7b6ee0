package models

import "regexp"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

var (
	mediaNamePattern = regexp.MustCompile(`(?i)\.(png|jpe?g|webp|gif|svg|mp4|webm|mov|m4v)$`)
	videoNamePattern = regexp.MustCompile(`(?i)\.(mp4|webm|mov|m4v)$`)
)

// IsMediaName reports whether the object name carries a recognized
// image or video extension.
func IsMediaName(name string) bool {
	return mediaNamePattern.MatchString(name)
}

// KindOf derives the media kind from the file extension.
func KindOf(name string) MediaKind {
	if videoNamePattern.MatchString(name) {
		return MediaKindVideo
	}
	return MediaKindImage
}

// MediaObject is derived from a bucket listing. It is never stored as a
// record; the storage key is the identity.
type MediaObject struct {
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Kind MediaKind `json:"kind"`
}
