// Package storage holds the photo attachment capability. The core keys
// attachments by anchor ID, never by name, so renaming an anchor keeps its
// photo attached.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nayamama/hr-project/internal/apperror"
)

type AttachmentStore interface {
	// Store saves the content under a per-anchor key and returns a stable
	// reference to it. A prior attachment with the same filename is
	// overwritten.
	Store(ctx context.Context, anchorID uint, filename string, content io.Reader) (string, error)
}

// FilesystemStore keeps one directory per anchor ID under a root folder.
type FilesystemStore struct {
	root string
}

func NewFilesystemStore(root string) *FilesystemStore {
	return &FilesystemStore{root: root}
}

func (s *FilesystemStore) Store(_ context.Context, anchorID uint, filename string, content io.Reader) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", apperror.New(apperror.CodeValidation, "invalid attachment filename")
	}

	dir := filepath.Join(s.root, strconv.FormatUint(uint64(anchorID), 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create attachment directory: %w", err)
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create attachment file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("write attachment: %w", err)
	}

	reference, err := filepath.Rel(s.root, path)
	if err != nil {
		return "", fmt.Errorf("resolve attachment reference: %w", err)
	}
	return reference, nil
}
