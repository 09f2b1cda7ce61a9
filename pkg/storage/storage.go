package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lila/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Store is a local-disk file store for gallery uploads. Files live
// flat under dir and are served at /uploads/{filename}.
type Store struct {
	dir     string
	maxSize int64
}

func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

func (s *Store) Dir() string { return s.dir }

// Validate checks size, extension and MIME type without touching disk.
func (s *Store) Validate(fh *multipart.FileHeader) error {
	if fh.Size > s.maxSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !domain.AllowedUploadExts[ext] {
		return ErrUnsupportedType
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "video/") {
		return ErrUnsupportedType
	}
	return nil
}

// Save validates the upload and writes it under a collision-resistant
// generated name. Nothing is written when validation fails; a failed
// copy removes the partial file.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if err := s.Validate(fh); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := GenerateFilename(ext)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return name, nil
}

// Remove deletes the backing file. A missing file is not an error:
// the metadata record is the source of truth on delete.
func (s *Store) Remove(filename string) {
	if filename == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}

// GenerateFilename builds "upload-<unixnano>-<suffix><ext>"; the uuid
// suffix keeps concurrent uploads in the same nanosecond from colliding.
func GenerateFilename(ext string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("upload-%d-%s%s", time.Now().UnixNano(), suffix, ext)
}

// MediaType derives the gallery type from the upload's content type:
// video/* is a video, everything else an image.
func MediaType(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return domain.MediaTypeVideo
	}
	return domain.MediaTypeImage
}
