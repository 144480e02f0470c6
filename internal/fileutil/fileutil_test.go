package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"shoebox/internal/fileutil"
)

func TestWriteFileAtomicCreatesParentAndLeavesNoTemp(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "photos.json")

	if err := fileutil.WriteFileAtomic(target, []byte("[]"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("unexpected contents: %q", data)
	}
	if _, err := os.Stat(target + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestWriteFileAtomicReplacesExisting(t *testing.T) {
	target := filepath.Join(t.TempDir(), "albums.json")
	if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := fileutil.WriteFileAtomic(target, []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("expected replacement, got %q", data)
	}
}
