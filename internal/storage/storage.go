package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"certifytrack-go/internal/config"
)

// FileInfo describes one stored object.
type FileInfo struct {
	Name         string
	Size         int64
	ContentType  string
	ModifiedTime time.Time
}

// Provider abstracts where uploaded assets live. Keys are slash-separated
// paths like "courses/a1b2c3-1700000000.png".
type Provider interface {
	// Upload saves a file under the given key and returns the key
	Upload(ctx context.Context, file io.Reader, key string) (string, error)

	// Delete removes a file from storage
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a stored file
	GetURL(ctx context.Context, key string) (string, error)

	// Stream serves the file directly to an http.ResponseWriter
	Stream(ctx context.Context, key string, w http.ResponseWriter) error

	// Exists checks whether a file is present in storage
	Exists(ctx context.Context, key string) (bool, error)

	// ListFiles enumerates stored files under a key prefix
	ListFiles(ctx context.Context, prefix string) ([]FileInfo, error)

	// Close cleans up any resources
	Close() error
}

// NewProvider creates a storage provider based on configuration.
func NewProvider(cfg config.StorageConfig, baseURL string) (Provider, error) {
	switch cfg.Provider {
	case "local":
		return NewLocalStorage(cfg.LocalPath, baseURL)
	case "gcs":
		return NewGCSStorage(cfg.ProjectID, cfg.BucketName, baseURL)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}
