package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nayamama/hr-project/internal/apperror"
)

func TestFilesystemStore(t *testing.T) {
	root := t.TempDir()
	store := NewFilesystemStore(root)

	reference, err := store.Store(context.Background(), 7, "portrait.jpg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("store attachment: %v", err)
	}
	if reference != filepath.Join("7", "portrait.jpg") {
		t.Fatalf("unexpected reference: %q", reference)
	}

	content, err := os.ReadFile(filepath.Join(root, reference))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "jpeg-bytes" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestFilesystemStoreOverwrites(t *testing.T) {
	root := t.TempDir()
	store := NewFilesystemStore(root)
	ctx := context.Background()

	if _, err := store.Store(ctx, 7, "portrait.jpg", strings.NewReader("old")); err != nil {
		t.Fatalf("first store: %v", err)
	}
	reference, err := store.Store(ctx, 7, "portrait.jpg", strings.NewReader("new"))
	if err != nil {
		t.Fatalf("second store: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(root, reference))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "new" {
		t.Fatalf("expected overwrite, got %q", content)
	}
}

func TestFilesystemStoreStripsPathComponents(t *testing.T) {
	root := t.TempDir()
	store := NewFilesystemStore(root)

	reference, err := store.Store(context.Background(), 7, "../../escape.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("store attachment: %v", err)
	}
	if reference != filepath.Join("7", "escape.jpg") {
		t.Fatalf("path components must be stripped, got %q", reference)
	}
}

func TestFilesystemStoreRejectsEmptyFilename(t *testing.T) {
	store := NewFilesystemStore(t.TempDir())

	if _, err := store.Store(context.Background(), 7, "", strings.NewReader("x")); !apperror.Is(err, apperror.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
