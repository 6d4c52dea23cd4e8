package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GCSProvider struct {
	client     *storage.Client
	bucket     *storage.BucketHandle
	bucketName string
	baseURL    string
}

func NewGCSStorage(projectID, bucketName, baseURL string) (*GCSProvider, error) {
	ctx := context.Background()
	var client *storage.Client
	var err error

	if emulatorHost := os.Getenv("STORAGE_EMULATOR_HOST"); emulatorHost != "" {
		log.Debug().
			Str("emulator_host", emulatorHost).
			Msg("using GCS emulator")
		client, err = storage.NewClient(
			ctx,
			option.WithEndpoint(fmt.Sprintf("http://%s", emulatorHost)),
			option.WithoutAuthentication(),
		)
	} else if creds := os.Getenv("GOOGLE_CLOUD_CREDENTIALS"); creds != "" {
		decodedCreds, decodeErr := base64.StdEncoding.DecodeString(creds)
		if decodeErr != nil {
			return nil, fmt.Errorf("invalid base64 credentials: %w", decodeErr)
		}
		client, err = storage.NewClient(ctx, option.WithCredentialsJSON(decodedCreds))
	} else {
		client, err = storage.NewClient(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	bucket := client.Bucket(bucketName)

	_, err = bucket.Attrs(ctx)
	if errors.Is(err, storage.ErrBucketNotExist) {
		log.Info().
			Str("bucket", bucketName).
			Msg("bucket does not exist, creating...")
		if err := bucket.Create(ctx, projectID, &storage.BucketAttrs{
			Location: "US-CENTRAL1",
		}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	return &GCSProvider{
		client:     client,
		bucket:     bucket,
		bucketName: bucketName,
		baseURL:    baseURL,
	}, nil
}

func (g *GCSProvider) Upload(ctx context.Context, file io.Reader, key string) (string, error) {
	obj := g.bucket.Object(key)
	writer := obj.NewWriter(ctx)

	if _, err := io.Copy(writer, file); err != nil {
		if closeErr := writer.Close(); closeErr != nil {
			return "", closeErr
		}
		return "", fmt.Errorf("failed to copy file to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return key, nil
}

func (g *GCSProvider) Stream(ctx context.Context, key string, w http.ResponseWriter) error {
	obj := g.bucket.Object(key)
	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get object attributes: %w", err)
	}

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return fmt.Errorf("failed to create reader: %w", err)
	}
	defer reader.Close()

	w.Header().Set("Content-Type", attrs.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(attrs.Size, 10))
	if attrs.CacheControl != "" {
		w.Header().Set("Cache-Control", attrs.CacheControl)
	}

	bytesWritten, err := io.Copy(w, reader)
	if err != nil {
		log.Error().
			Err(err).
			Str("key", key).
			Int64("bytes_written", bytesWritten).
			Msg("failed to stream file")
		return fmt.Errorf("failed to stream file: %w", err)
	}

	return nil
}

func (g *GCSProvider) Exists(ctx context.Context, key string) (bool, error) {
	_, err := g.bucket.Object(key).Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("error checking object existence: %w", err)
}

func (g *GCSProvider) Delete(ctx context.Context, key string) error {
	if err := g.bucket.Object(key).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (g *GCSProvider) GetURL(ctx context.Context, key string) (string, error) {
	_, err := g.bucket.Object(key).Attrs(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get object attributes: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", g.baseURL, key), nil
}

func (g *GCSProvider) ListFiles(ctx context.Context, prefix string) ([]FileInfo, error) {
	var files []FileInfo
	it := g.bucket.Objects(ctx, &storage.Query{
		Prefix: prefix,
	})

	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %w", err)
		}
		files = append(files, FileInfo{
			Name:         attrs.Name,
			Size:         attrs.Size,
			ContentType:  attrs.ContentType,
			ModifiedTime: attrs.Updated,
		})
	}

	return files, nil
}

func (g *GCSProvider) Close() error {
	return g.client.Close()
}
