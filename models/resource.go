package models

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// ResourceLevel grades a learning resource by difficulty.
type ResourceLevel string

const (
	Beginner     ResourceLevel = "beginner"
	Intermediate ResourceLevel = "intermediate"
	Advanced     ResourceLevel = "advanced"
)

// ResourceLevels lists every level accepted by the backend.
var ResourceLevels = []ResourceLevel{Beginner, Intermediate, Advanced}

// Resource describes an uploaded PDF learning resource.
type Resource struct {
	ID    uuid.UUID     `json:"id"`
	Title string        `json:"title"`
	Level ResourceLevel `json:"level"`

	// FileURL is the backend-side storage location of the PDF. Clients
	// must download through the dedicated download endpoint, not this URL.
	FileURL string `json:"file_url"`

	// FileSize is the stored file size in bytes, when known.
	FileSize int64 `json:"file_size,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResourceUpdate is a partial update of a resource's metadata.
// Replacing the file itself is a separate multipart operation.
type ResourceUpdate struct {
	Title *string        `json:"title,omitempty"`
	Level *ResourceLevel `json:"level,omitempty"`
}

// ResourceUpload describes a new PDF to publish. The content is streamed
// from File; Filename is the client-side name forwarded in the multipart
// part so the backend can keep the original extension.
type ResourceUpload struct {
	Title    string
	Level    ResourceLevel
	Filename string
	File     io.Reader
}

// FileDownload is the outcome of a resource download: the file content
// plus the filename the server suggested via Content-Disposition.
type FileDownload struct {
	// Filename is the name the file should be saved under. Falls back to
	// "resource-<id>.pdf" when the server does not suggest one.
	Filename string

	// Content is the raw file body.
	Content []byte
}
