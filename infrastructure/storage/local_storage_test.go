package storage

import (
	"io"
	"strings"
	"testing"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	port, err := NewLocalStorage(LocalStorageConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files",
	})
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	return port.(*LocalStorage)
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	content := "hello blob"
	url, err := s.UploadFile(strings.NewReader(content), "blobs/user-1/abc.png", "image/png")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "http://localhost:8080/files/blobs/user-1/abc.png" {
		t.Errorf("unexpected URL: %s", url)
	}

	reader, contentType, err := s.GetFileContent("blobs/user-1/abc.png")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	defer reader.Close()

	data, _ := io.ReadAll(reader)
	if string(data) != content {
		t.Errorf("content mismatch: %q", data)
	}
	if contentType != "image/png" {
		t.Errorf("expected image/png, got %s", contentType)
	}
}

func TestLocalStorageGetFileRange(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.UploadFile(strings.NewReader("0123456789"), "blobs/u/range.mp4", "video/mp4"); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	tests := []struct {
		name     string
		start    int64
		end      int64
		expected string
	}{
		{"middle", 2, 5, "2345"},
		{"open end", 7, -1, "789"},
		{"end past size", 8, 100, "89"},
		{"full", 0, 9, "0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, total, err := s.GetFileRange("blobs/u/range.mp4", tt.start, tt.end)
			if err != nil {
				t.Fatalf("range read failed: %v", err)
			}
			defer reader.Close()

			if total != 10 {
				t.Errorf("expected total size 10, got %d", total)
			}

			data, _ := io.ReadAll(reader)
			if string(data) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, data)
			}
		})
	}
}

func TestLocalStorageDelete(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.UploadFile(strings.NewReader("x"), "blobs/u/del.png", "image/png"); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := s.DeleteFile("blobs/u/del.png"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, _, err := s.GetFileContent("blobs/u/del.png"); err == nil {
		t.Error("expected error reading deleted file")
	}

	// delete ซ้ำต้องไม่ error
	if err := s.DeleteFile("blobs/u/del.png"); err != nil {
		t.Errorf("deleting missing file should be a no-op: %v", err)
	}
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a.mp4", "video/mp4"},
		{"a.JPG", "image/jpeg"},
		{"a.webp", "image/webp"},
		{"a.mp3", "audio/mpeg"},
		{"a.bin", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := DetectContentType(tt.path); got != tt.expected {
			t.Errorf("DetectContentType(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}
