// Package storage keeps ticket photos on the local filesystem.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tinytickets/tinytickets/internal/shared/config"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

const (
	defaultMaxUploadBytes = 10 << 20
	defaultMaxDimension   = 1280
	defaultJPEGQuality    = 90

	photoExt = ".jpg"
)

// allowedPhotoMIMETypes lists the sniffed content types a decoder is
// registered for.
var allowedPhotoMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/bmp":  {},
	"image/webp": {},
	"image/tiff": {},
}

// PhotoStore stores at most one JPEG photo per ticket id under dir.
type PhotoStore struct {
	dir            string
	maxUploadBytes int64
	maxDimension   int
	quality        int
	logger         logger.Interface
}

func NewPhotoStore(cfg config.StorageConfig, log logger.Interface) *PhotoStore {
	s := &PhotoStore{
		dir:            cfg.PhotosDir,
		maxUploadBytes: cfg.MaxUploadBytes,
		maxDimension:   cfg.MaxDimension,
		quality:        cfg.JPEGQuality,
		logger:         log,
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = defaultMaxUploadBytes
	}
	if s.maxDimension <= 0 {
		s.maxDimension = defaultMaxDimension
	}
	if s.quality <= 0 || s.quality > 100 {
		s.quality = defaultJPEGQuality
	}
	return s
}

// Path returns the file a ticket's photo lives in.
func (s *PhotoStore) Path(id int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(id, 10)+photoExt)
}

// Store decodes the uploaded image, scales it down to fit the configured
// bounding box and writes it as JPEG, replacing any previous photo of the
// same ticket. The returned string is the stored path.
func (s *PhotoStore) Store(ctx context.Context, id int64, r io.Reader) (string, error) {
	content, err := io.ReadAll(io.LimitReader(r, s.maxUploadBytes+1))
	if err != nil {
		s.logger.Errorw("failed to read photo upload", "ticket_id", id, "error", err)
		return "", errors.NewInternalError("failed to read photo").Wrap(err)
	}
	if int64(len(content)) > s.maxUploadBytes {
		s.logger.Warnw("photo upload too large", "ticket_id", id, "limit", s.maxUploadBytes)
		return "", errors.NewInternalError("photo exceeds the upload limit")
	}

	detected := mimetype.Detect(content).String()
	if _, ok := allowedPhotoMIMETypes[detected]; !ok {
		s.logger.Warnw("unsupported photo type", "ticket_id", id, "mime_type", detected)
		return "", errors.NewInternalError("unsupported photo format")
	}

	if err := ctx.Err(); err != nil {
		return "", errors.NewInternalError("photo upload cancelled").Wrap(err)
	}

	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		s.logger.Warnw("failed to decode photo", "ticket_id", id, "mime_type", detected, "error", err)
		return "", errors.NewInternalError("failed to decode photo").Wrap(err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, s.fit(img), &jpeg.Options{Quality: s.quality}); err != nil {
		s.logger.Errorw("failed to encode photo", "ticket_id", id, "error", err)
		return "", errors.NewInternalError("failed to encode photo").Wrap(err)
	}

	dst := s.Path(id)
	if err := s.writeAtomic(dst, buf.Bytes()); err != nil {
		s.logger.Errorw("failed to write photo", "ticket_id", id, "path", dst, "error", err)
		return "", errors.NewInternalError("failed to store photo").Wrap(err)
	}

	s.logger.Infow("photo stored", "ticket_id", id, "path", dst, "bytes", buf.Len())
	return dst, nil
}

// Open returns the stored photo of a ticket. The caller closes it.
func (s *PhotoStore) Open(id int64) (io.ReadCloser, error) {
	f, err := os.Open(s.Path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("photo not found")
		}
		s.logger.Errorw("failed to open photo", "ticket_id", id, "error", err)
		return nil, errors.NewInternalError("failed to open photo").Wrap(err)
	}
	return f, nil
}

func (s *PhotoStore) Delete(id int64) error {
	if err := os.Remove(s.Path(id)); err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("photo not found")
		}
		s.logger.Errorw("failed to delete photo", "ticket_id", id, "error", err)
		return errors.NewInternalError("failed to delete photo").Wrap(err)
	}
	s.logger.Infow("photo deleted", "ticket_id", id)
	return nil
}

// fit scales img down so neither side exceeds maxDimension. Smaller images
// are returned unchanged.
func (s *PhotoStore) fit(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= s.maxDimension && h <= s.maxDimension {
		return img
	}

	nw, nh := s.maxDimension, s.maxDimension
	if w >= h {
		nh = max(1, h*s.maxDimension/w)
	} else {
		nw = max(1, w*s.maxDimension/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func (s *PhotoStore) writeAtomic(dst string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("create photo directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0640); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
