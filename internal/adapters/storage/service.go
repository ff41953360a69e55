// Package storage keeps raw lead sheets in S3-compatible object storage.
package storage

import (
	"context"
	"io"
)

// Object is one file headed for the archive.
type Object struct {
	// Folder is the key prefix, e.g. "2026/10/17".
	Folder      string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	// Metadata is stored as user metadata on the object.
	Metadata map[string]string
}

// ObjectStore is the storage surface the upload archive needs.
type ObjectStore interface {
	// Put stores obj in bucket and returns the generated object key.
	Put(ctx context.Context, bucket string, obj Object) (string, error)
	// EnsureBucket creates bucket when it is missing.
	EnsureBucket(ctx context.Context, bucket string) error
	// Check rejects objects with a disallowed content type or size.
	Check(obj Object) error
}

// Config is the subset of settings the MinIO store reads.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	IsMinIOEnabled() bool
}
