package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:4000/")
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}

	ctx := context.Background()
	url, err := store.Save(ctx, "image_123.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if url != "http://localhost:4000/images/image_123.png" {
		t.Fatalf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "image_123.png"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected file content %q", data)
	}

	if err := store.Remove(ctx, url); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "image_123.png")); !os.IsNotExist(err) {
		t.Fatalf("expected file gone, stat err %v", err)
	}

	// Removing an already-deleted image is not an error.
	if err := store.Remove(ctx, url); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestLocalRemoveRejectsForeignURL(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:4000")
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}

	for _, url := range []string{
		"http://elsewhere.example.com/banner.png",
		"http://localhost:4000/images/",
		"http://localhost:4000/images/../../etc/passwd",
	} {
		if err := store.Remove(context.Background(), url); !errors.Is(err, ErrUnmanagedURL) {
			t.Fatalf("url %q: expected ErrUnmanagedURL, got %v", url, err)
		}
	}
}

func TestLocalSaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:4000")
	if err != nil {
		t.Fatalf("new local storage: %v", err)
	}

	url, err := store.Save(context.Background(), "../escape.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if url != "http://localhost:4000/images/escape.png" {
		t.Fatalf("unexpected url %q", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.png")); err != nil {
		t.Fatalf("expected file inside upload dir: %v", err)
	}
}
