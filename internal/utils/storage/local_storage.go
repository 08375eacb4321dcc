package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type (
	// ImageStore persists uploaded recipe images in a user-writable directory.
	// Only the generated filename is handed back to callers; the recipe row
	// stores that filename, never a full path.
	ImageStore interface {
		Save(src io.Reader, originalName string) (string, error)
		Path(imgAddr string) string
		Dir() string
	}

	localStorage struct {
		dir string
	}
)

func NewLocalStorage(dir string) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}
	return &localStorage{dir: dir}, nil
}

// Save copies the uploaded file into the image directory under a
// timestamp-derived name keeping the original extension. The copy goes
// through a uniquely named temp file and is renamed into place.
func (s *localStorage) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedImageType
	}

	now := time.Now()
	name := fmt.Sprintf("%s%03d%s", now.Format("20060102150405"), now.Nanosecond()/1e6, ext)

	tmpPath := filepath.Join(s.dir, uuid.NewString()+".tmp")
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return name, nil
}

// Path resolves a stored img_addr to a full file path. Older rows carry a
// legacy "imgs/" prefix that has to be stripped.
func (s *localStorage) Path(imgAddr string) string {
	name := strings.TrimPrefix(imgAddr, "imgs/")
	return filepath.Join(s.dir, name)
}

func (s *localStorage) Dir() string {
	return s.dir
}
