package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"marseille-immobilier/internal/apperr"

	"github.com/google/uuid"
)

// Upload kinds, each stored in its own subdirectory of the upload root.
const (
	KindLogo     = "logos"
	KindCover    = "covers"
	KindGallery  = "agencies"
	KindCarousel = "carousel"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".svg":  {},
}

// FileStore persists uploaded images under root/<kind>/<uuid><ext>.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	for _, kind := range []string{KindLogo, KindCover, KindGallery, KindCarousel} {
		if err := os.MkdirAll(filepath.Join(root, kind), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create upload dir %s: %v", apperr.ErrStorage, kind, err)
		}
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Root() string {
	return s.root
}

// Allowed reports whether the file name carries an accepted image extension.
func Allowed(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Save writes the uploaded file under a fresh random name and returns that
// name. A partially written file is removed before the error is returned.
func (s *FileStore) Save(fh *multipart.FileHeader, kind string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", apperr.ErrValidation, ext)
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	path := filepath.Join(s.root, kind, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open upload: %v", apperr.ErrStorage, err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %v", apperr.ErrStorage, path, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("%w: write %s: %v", apperr.ErrStorage, path, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: close %s: %v", apperr.ErrStorage, path, err)
	}

	return name, nil
}

// Remove deletes a stored file. Best effort: a missing file is not an
// error, anything else is only logged (callers invoke this after commit).
func (s *FileStore) Remove(kind, name string) {
	if name == "" {
		return
	}
	path := filepath.Join(s.root, kind, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to remove upload %s: %v", path, err)
	}
}
