package storage

import (
	"fmt"
	"mime"
	"strings"
)

// sheetContentTypes are the MIME types browsers send for CSV and XLSX files.
var sheetContentTypes = map[string]bool{
	"text/csv":                 true,
	"text/plain":               true,
	"application/csv":          true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/octet-stream": true,
}

// Check implements ObjectStore.
func (s *MinIOStore) Check(obj Object) error {
	if err := checkContentType(obj.ContentType); err != nil {
		return err
	}
	return checkSize(obj.Size, s.maxFileSize)
}

// An empty content type is accepted; the archive fills in a default.
func checkContentType(contentType string) error {
	if strings.TrimSpace(contentType) == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("invalid content type %q: %w", contentType, err)
	}
	if !sheetContentTypes[mediaType] {
		return fmt.Errorf("content type %q is not a spreadsheet", mediaType)
	}
	return nil
}

func checkSize(size, limit int64) error {
	if size <= 0 {
		return fmt.Errorf("object is empty")
	}
	if limit > 0 && size > limit {
		return fmt.Errorf("object is %d bytes, limit is %d", size, limit)
	}
	return nil
}
