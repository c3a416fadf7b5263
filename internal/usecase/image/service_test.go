package image

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"fieldcms/backend/internal/infrastructure/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	return NewService(store)
}

func TestUploadNamesFiles(t *testing.T) {
	svc := newTestService(t)
	svc.nowFunc = func() time.Time { return time.Unix(1700000000, 0) }

	filename, path, err := svc.Upload("holiday photo.PNG", strings.NewReader("pixels"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasSuffix(filename, "_1700000000.PNG") {
		t.Errorf("filename = %q, want *_1700000000.PNG", filename)
	}
	if strings.ContainsAny(filename, " /\\") {
		t.Errorf("filename %q carries unsafe characters", filename)
	}
	if path != "/images/"+filename {
		t.Errorf("path = %q, want /images/%s", path, filename)
	}

	rc, _, err := svc.Open(filename)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "pixels" {
		t.Errorf("stored contents = %q, want pixels", data)
	}
}

func TestUploadDefaultsExtension(t *testing.T) {
	svc := newTestService(t)

	filename, _, err := svc.Upload("no-extension", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasSuffix(filename, ".jpg") {
		t.Errorf("filename = %q, want .jpg fallback", filename)
	}
}

func TestUploadedNamesAreUnique(t *testing.T) {
	svc := newTestService(t)

	first, _, err := svc.Upload("a.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	second, _, err := svc.Upload("a.png", strings.NewReader("y"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if first == second {
		t.Fatalf("two uploads of %q collided on %q", "a.png", first)
	}
}

func TestOpenAndDeleteUnknownImage(t *testing.T) {
	svc := newTestService(t)

	if _, _, err := svc.Open("nope.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete("nope.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: got %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesStoredImage(t *testing.T) {
	svc := newTestService(t)

	filename, _, err := svc.Upload("a.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if err := svc.Delete(filename); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, err := svc.Open(filename); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open after delete: got %v, want ErrNotFound", err)
	}
}

func TestContentType(t *testing.T) {
	cases := map[string]string{
		"a.jpg":     "image/jpeg",
		"a.JPEG":    "image/jpeg",
		"a.png":     "image/png",
		"a.gif":     "image/gif",
		"a.webp":    "image/webp",
		"a.svg":     "application/octet-stream",
		"extension": "application/octet-stream",
	}
	for filename, want := range cases {
		if got := ContentType(filename); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", filename, got, want)
		}
	}
}
