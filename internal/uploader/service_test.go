package uploader

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certifytrack-go/internal/storage"
)

func newTestService(t *testing.T) Service {
	provider, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })
	return NewService(provider)
}

func TestService_UploadImage(t *testing.T) {
	ctx := context.Background()
	content := []byte("fake image bytes")

	t.Run("stores under the folder and returns a public url", func(t *testing.T) {
		svc := newTestService(t)

		result, err := svc.UploadImage(ctx, "courses", "banner.png", "image/png",
			int64(len(content)), bytes.NewReader(content))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(result.Key, "courses/"))
		assert.True(t, strings.HasSuffix(result.Key, ".png"))
		assert.Equal(t, "http://localhost:8080/uploads/"+result.Key, result.URL)
	})

	t.Run("rejects unknown folders", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.UploadImage(ctx, "secrets", "x.png", "image/png",
			int64(len(content)), bytes.NewReader(content))
		assert.ErrorIs(t, err, ErrInvalidFolder)
	})

	t.Run("rejects non-image content types", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.UploadImage(ctx, "courses", "x.exe", "application/octet-stream",
			int64(len(content)), bytes.NewReader(content))
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("two uploads of the same file get distinct keys", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.UploadImage(ctx, "mentors", "a.jpg", "image/jpeg",
			int64(len(content)), bytes.NewReader(content))
		require.NoError(t, err)
		second, err := svc.UploadImage(ctx, "mentors", "a.jpg", "image/jpeg",
			int64(len(content)), bytes.NewReader(content))
		require.NoError(t, err)

		assert.NotEqual(t, first.Key, second.Key)
	})
}

func TestService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	content := []byte("fake image bytes")

	result, err := svc.UploadImage(ctx, "certificates", "seal.png", "image/png",
		int64(len(content)), bytes.NewReader(content))
	require.NoError(t, err)

	files, err := svc.ListFolder(ctx, "certificates")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, result.Key, files[0].Name)

	require.NoError(t, svc.Delete(ctx, result.Key))
	assert.ErrorIs(t, svc.Delete(ctx, result.Key), ErrFileNotFound)

	files, err = svc.ListFolder(ctx, "certificates")
	require.NoError(t, err)
	assert.Empty(t, files)
}
