package models

import (
	"github.com/google/uuid"
)

// UploadedDocument describes one uploaded contract for the duration of a
// single analysis request. The spooled file is deleted once extraction is
// done; nothing about the upload outlives the request.
type UploadedDocument struct {
	ID               uuid.UUID
	OriginalFileName string
	ContentType      string
	Size             int64
	FilePath         string
}
