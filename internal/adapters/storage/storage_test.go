package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		folder, name, want string
	}{
		{"2026/10/17", "leads.csv", "2026/10/17/leads_abcd1234.csv"},
		{"2026/10/17", "../../etc/leads.xlsx", "2026/10/17/leads_abcd1234.xlsx"},
		{"uploads", `C:\Users\me\leads.csv`, "uploads/leads_abcd1234.csv"},
		{"uploads", "", "uploads/upload_abcd1234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ObjectKey(tt.folder, tt.name, "abcd1234"), tt.name)
	}
}

func TestCheck(t *testing.T) {
	store := &MinIOStore{maxFileSize: 10}

	for _, ct := range []string{"text/csv", "text/csv; charset=utf-8", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ""} {
		assert.NoError(t, store.Check(Object{ContentType: ct, Size: 5}), ct)
	}
	assert.Error(t, store.Check(Object{ContentType: "image/png", Size: 5}))
	assert.Error(t, store.Check(Object{ContentType: "text/csv; charset", Size: 5}))
	assert.Error(t, store.Check(Object{ContentType: "text/csv", Size: 0}))
	assert.Error(t, store.Check(Object{ContentType: "text/csv", Size: 11}))
	assert.NoError(t, store.Check(Object{ContentType: "text/csv", Size: 10}))
}

func TestNewMinIOStoreRequiresEndpoint(t *testing.T) {
	_, err := NewMinIOStore(disabledConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

type disabledConfig struct{}

func (disabledConfig) GetMinIOEndpoint() string   { return "" }
func (disabledConfig) GetMinIOAccessKey() string  { return "" }
func (disabledConfig) GetMinIOSecretKey() string  { return "" }
func (disabledConfig) GetMinIOUseSSL() bool       { return false }
func (disabledConfig) GetMinIOMaxFileSize() int64 { return 0 }
func (disabledConfig) IsMinIOEnabled() bool       { return false }
