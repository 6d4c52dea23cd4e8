package uploader

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"certifytrack-go/internal/storage"
)

// Folders uploads may be filed under, one per asset-bearing entity.
var allowedFolders = map[string]bool{
	"courses":      true,
	"internships":  true,
	"tasks":        true,
	"mentors":      true,
	"certificates": true,
	"submissions":  true,
}

var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// UploadResult describes a stored asset.
type UploadResult struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Service defines the uploader service interface
type Service interface {
	// UploadImage stores an image under the given folder and returns its
	// key and public URL
	UploadImage(ctx context.Context, folder, filename, contentType string, size int64, file io.Reader) (*UploadResult, error)
	// ListFolder enumerates stored assets under a folder
	ListFolder(ctx context.Context, folder string) ([]storage.FileInfo, error)
	// Stream serves a stored asset
	Stream(ctx context.Context, key string, w http.ResponseWriter) error
	// Delete removes a stored asset
	Delete(ctx context.Context, key string) error
}

type service struct {
	provider storage.Provider
}

// NewService creates a new uploader service
func NewService(provider storage.Provider) Service {
	return &service{provider: provider}
}

func (s *service) UploadImage(ctx context.Context, folder, filename, contentType string, size int64, file io.Reader) (*UploadResult, error) {
	if !allowedFolders[folder] {
		return nil, ErrInvalidFolder
	}

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}
	if orig := strings.ToLower(path.Ext(filename)); orig != "" && extMatches(orig, contentType) {
		ext = orig
	}

	key := fmt.Sprintf("%s/%s-%d%s", folder, randomToken(), time.Now().Unix(), ext)

	if _, err := s.provider.Upload(ctx, file, key); err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}

	url, err := s.provider.GetURL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("resolving upload url: %w", err)
	}

	log.Info().
		Str("key", key).
		Str("content_type", contentType).
		Str("size", humanize.Bytes(uint64(size))).
		Msg("image uploaded")

	return &UploadResult{Key: key, URL: url, Size: size}, nil
}

func (s *service) ListFolder(ctx context.Context, folder string) ([]storage.FileInfo, error) {
	if !allowedFolders[folder] {
		return nil, ErrInvalidFolder
	}

	files, err := s.provider.ListFiles(ctx, folder+"/")
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []storage.FileInfo{}
	}
	return files, nil
}

func (s *service) Stream(ctx context.Context, key string, w http.ResponseWriter) error {
	exists, err := s.provider.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return ErrFileNotFound
	}
	return s.provider.Stream(ctx, key, w)
}

func (s *service) Delete(ctx context.Context, key string) error {
	exists, err := s.provider.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return ErrFileNotFound
	}
	return s.provider.Delete(ctx, key)
}

func extMatches(ext, contentType string) bool {
	switch contentType {
	case "image/jpeg":
		return ext == ".jpg" || ext == ".jpeg"
	case "image/png":
		return ext == ".png"
	case "image/gif":
		return ext == ".gif"
	case "image/webp":
		return ext == ".webp"
	case "image/svg+xml":
		return ext == ".svg"
	}
	return false
}

func randomToken() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
