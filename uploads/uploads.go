// Package uploads maps the relative image paths stored on records to files
// under the upload root and owns the naming of newly stored files.
package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shopcraft/storefront/models"
)

// prefix is the leading segment of every stored image path. The same
// segment is served over HTTP as the static /uploads route.
const prefix = "uploads"

// Root returns the on-disk upload directory, UPLOAD_DIR or ./uploads.
func Root() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// NewImagePath builds a fresh relative path for an uploaded file in the
// given subdirectory (e.g. "products"). The client-supplied name is
// discarded except for its extension, so concurrent uploads can never
// collide and no path component from the client reaches the filesystem.
func NewImagePath(subdir, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return filepath.ToSlash(filepath.Join(prefix, subdir, uuid.New().String()+ext))
}

// DiskPath resolves a stored relative path to its location under the upload
// root, creating parent directories as needed.
func DiskPath(rel string) (string, error) {
	inner := strings.TrimPrefix(rel, prefix+"/")
	full := filepath.Join(Root(), filepath.FromSlash(inner))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	return full, nil
}

// Remove deletes the file backing a stored image path. The shared
// placeholder is never removed, and a file that is already gone is not an
// error.
func Remove(rel string) error {
	if rel == "" || rel == models.PlaceholderImage {
		return nil
	}
	inner := strings.TrimPrefix(rel, prefix+"/")
	full := filepath.Join(Root(), filepath.FromSlash(inner))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload %q: %w", rel, err)
	}
	return nil
}
