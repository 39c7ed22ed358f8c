package domain

// Image is a binary payload (ad picture or user avatar) owned exclusively by
// one parent at a time. Size and media type are recorded as supplied; the
// payload is never transformed.
type Image struct {
	ID        int64
	MediaType string
	Size      int64
	Data      []byte
}
