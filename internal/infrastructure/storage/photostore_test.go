package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytickets/tinytickets/internal/shared/config"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

func newTestStore(t *testing.T) *PhotoStore {
	t.Helper()
	return NewPhotoStore(config.StorageConfig{
		PhotosDir:      filepath.Join(t.TempDir(), "photos"),
		MaxUploadBytes: 10 << 20,
		MaxDimension:   1280,
		JPEGQuality:    90,
	}, logger.NewNopLogger())
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeStored(t *testing.T, path string) image.Config {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	require.NoError(t, err)
	return cfg
}

func TestPhotoStore_Store(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{name: "landscape is scaled to the bounding box", width: 2000, height: 1000, wantW: 1280, wantH: 640},
		{name: "portrait is scaled to the bounding box", width: 1000, height: 2560, wantW: 500, wantH: 1280},
		{name: "small image is not upscaled", width: 300, height: 200, wantW: 300, wantH: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)

			path, err := store.Store(context.Background(), 7, bytes.NewReader(encodePNG(t, tt.width, tt.height)))
			require.NoError(t, err)
			assert.Equal(t, store.Path(7), path)
			assert.Equal(t, "7.jpg", filepath.Base(path))

			cfg := decodeStored(t, path)
			assert.Equal(t, tt.wantW, cfg.Width)
			assert.Equal(t, tt.wantH, cfg.Height)
		})
	}
}

func TestPhotoStore_StoreOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Store(ctx, 3, bytes.NewReader(encodePNG(t, 100, 100)))
	require.NoError(t, err)
	path, err := store.Store(ctx, 3, bytes.NewReader(encodePNG(t, 50, 40)))
	require.NoError(t, err)

	cfg := decodeStored(t, path)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 40, cfg.Height)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestPhotoStore_StoreRejectsGarbage(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Store(context.Background(), 1, bytes.NewReader([]byte("definitely not an image")))
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))

	_, statErr := os.Stat(store.Path(1))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPhotoStore_StoreRejectsOversizedUpload(t *testing.T) {
	store := NewPhotoStore(config.StorageConfig{
		PhotosDir:      t.TempDir(),
		MaxUploadBytes: 64,
	}, logger.NewNopLogger())

	_, err := store.Store(context.Background(), 1, bytes.NewReader(encodePNG(t, 200, 200)))
	require.Error(t, err)
	assert.True(t, errors.IsInternalError(err))
}

func TestPhotoStore_OpenAndDelete(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open(42)
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsNotFoundError(store.Delete(42)))

	_, err = store.Store(context.Background(), 42, bytes.NewReader(encodePNG(t, 10, 10)))
	require.NoError(t, err)

	rc, err := store.Open(42)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", sniff(data))

	require.NoError(t, store.Delete(42))
	_, err = store.Open(42)
	assert.True(t, errors.IsNotFoundError(err))
}

func sniff(data []byte) string {
	if len(data) > 2 && data[0] == 0xFF && data[1] == 0xD8 {
		return "image/jpeg"
	}
	return "unknown"
}
