package entity

import "io"

// UploadRequest is one parsed multipart upload.
type UploadRequest struct {
	Data []byte
	// ContentType is the part's declared media type.
	ContentType string
	Description *string
	GuestName   string
}

// Download is an open stream of a photo's bytes. Callers must close Body.
type Download struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
}
