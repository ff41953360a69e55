package adapters

import (
	"bytes"
	"context"
	"time"

	"leadscore_backend/internal/adapters/storage"
	leadsvc "leadscore_backend/internal/leads/service"
)

const defaultUploadContentType = "application/octet-stream"

// LeadUploadArchiver stores raw lead sheets in object storage, foldered by
// upload date. It implements leads/service.Archiver.
type LeadUploadArchiver struct {
	store  storage.ObjectStore
	bucket string
	now    func() time.Time
}

// NewLeadUploadArchiver creates an archiver writing to bucket.
func NewLeadUploadArchiver(store storage.ObjectStore, bucket string) *LeadUploadArchiver {
	return &LeadUploadArchiver{store: store, bucket: bucket, now: time.Now}
}

// Archive uploads data and returns the object key.
func (a *LeadUploadArchiver) Archive(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = defaultUploadContentType
	}
	uploadedAt := a.now().UTC()
	return a.store.Put(ctx, a.bucket, storage.Object{
		Folder:      uploadedAt.Format("2006/01/02"),
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
		Metadata: map[string]string{
			"original-name": fileName,
			"uploaded-at":   uploadedAt.Format(time.RFC3339),
		},
	})
}

var _ leadsvc.Archiver = (*LeadUploadArchiver)(nil)
