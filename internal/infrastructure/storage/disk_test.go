package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	return store
}

func TestSaveOpenRemove(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("photo.png", strings.NewReader("pixels")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !store.Exists("photo.png") {
		t.Fatal("Exists = false after Save")
	}

	rc, err := store.Open("photo.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("stored contents = %q, want pixels", data)
	}

	if err := store.Remove("photo.png"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if store.Exists("photo.png") {
		t.Error("Exists = true after Remove")
	}
	if _, err := store.Open("photo.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open after remove: got %v, want ErrNotFound", err)
	}
	if err := store.Remove("photo.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove: got %v, want ErrNotFound", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("photo.png", strings.NewReader("old")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save("photo.png", strings.NewReader("new")); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	rc, err := store.Open("photo.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "new" {
		t.Errorf("stored contents = %q, want new", data)
	}
}

func TestStoreConfinesTraversalNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	if err := store.Save("../../escape.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err == nil {
		t.Fatal("file written outside the store root")
	}
	if !store.Exists("escape.txt") {
		t.Error("sanitized file missing inside the store root")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"photo.png":              "photo.png",
		"../../etc/passwd":       "passwd",
		"..\\..\\win\\boot.ini":  "boot.ini",
		"sp ace & sym?bols.jpg":  "spacesymbols.jpg",
		"UPPER_case-9.webp":      "UPPER_case-9.webp",
		"...":                    "unnamed",
		"":                       "unnamed",
		"././.hidden":            "hidden",
		"name.with.dots.tar.gz":  "name.with.dots.tar.gz",
		"unicode-héllo.png":      "unicode-hllo.png",
		"trailing-dot.":          "trailing-dot",
	}
	for input, want := range cases {
		if got := SanitizeName(input); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", input, got, want)
		}
	}
}
