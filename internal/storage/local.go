package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type LocalProvider struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseDir, baseURL string) (*LocalProvider, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalProvider{
		baseDir: baseDir,
		baseURL: baseURL,
	}, nil
}

// resolve maps a storage key onto the base directory, rejecting keys that
// would escape it.
func (l *LocalProvider) resolve(key string) (string, error) {
	fullPath := filepath.Join(l.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(fullPath, filepath.Clean(l.baseDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}
	return fullPath, nil
}

func (l *LocalProvider) Upload(ctx context.Context, file io.Reader, key string) (string, error) {
	fullPath, err := l.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return key, nil
}

func (l *LocalProvider) Stream(ctx context.Context, key string, w http.ResponseWriter) error {
	fullPath, err := l.resolve(key)
	if err != nil {
		return err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	buffer := make([]byte, 512)
	_, err = file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file header: %w", err)
	}
	contentType := http.DetectContentType(buffer)

	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to reset file pointer: %w", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(fileInfo.Size(), 10))
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, file); err != nil {
		return fmt.Errorf("failed to stream file: %w", err)
	}

	return nil
}

func (l *LocalProvider) Exists(ctx context.Context, key string) (bool, error) {
	fullPath, err := l.resolve(key)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("error checking file existence: %w", err)
}

func (l *LocalProvider) Delete(ctx context.Context, key string) error {
	fullPath, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (l *LocalProvider) GetURL(ctx context.Context, key string) (string, error) {
	return fmt.Sprintf("%s/uploads/%s", l.baseURL, key), nil
}

func (l *LocalProvider) ListFiles(ctx context.Context, prefix string) ([]FileInfo, error) {
	var files []FileInfo
	basePath := filepath.Join(l.baseDir, filepath.FromSlash(prefix))

	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		return files, nil
	}

	err := filepath.Walk(basePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(l.baseDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		buffer := make([]byte, 512)
		_, err = file.Read(buffer)
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read file header: %w", err)
		}

		files = append(files, FileInfo{
			Name:         filepath.ToSlash(relPath),
			Size:         info.Size(),
			ContentType:  http.DetectContentType(buffer),
			ModifiedTime: info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("error walking directory: %w", err)
	}

	return files, nil
}

func (l *LocalProvider) Close() error {
	return nil
}
