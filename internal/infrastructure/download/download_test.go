package download

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDir_WriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "poems")
	d := NewDir(dir)

	path, err := d.WriteFile("poem-autumn.txt", []byte("leaves fall slow..."))
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if path != filepath.Join(dir, "poem-autumn.txt") {
		t.Fatalf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "leaves fall slow..." {
		t.Fatalf("content = %q", data)
	}
}

func TestDir_WriteFileReplaces(t *testing.T) {
	d := NewDir(t.TempDir())

	if _, err := d.WriteFile("poem-x.txt", []byte("first version that is longer")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	path, err := d.WriteFile("poem-x.txt", []byte("second"))
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Fatalf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(d.Path())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the poem file, got %d entries", len(entries))
	}
}

func TestDir_WriteFileRejectsPaths(t *testing.T) {
	d := NewDir(t.TempDir())
	for _, name := range []string{"", "../poem.txt", "sub/poem.txt"} {
		if _, err := d.WriteFile(name, []byte("x")); err == nil {
			t.Fatalf("WriteFile(%q) should fail", name)
		}
	}
}

func TestNewDir_EmptyMeansWorkingDir(t *testing.T) {
	if got := NewDir("  ").Path(); got != "." {
		t.Fatalf("Path() = %q, want %q", got, ".")
	}
}

func TestDir_WriteFileLeavesTargetOnFailure(t *testing.T) {
	d := NewDir(t.TempDir())
	target := filepath.Join(d.Path(), "poem-x.txt")
	if err := os.Mkdir(target, 0o750); err != nil {
		t.Fatal(err)
	}

	if _, err := d.WriteFile("poem-x.txt", []byte("text")); err == nil {
		t.Fatal("WriteFile() over a directory should fail")
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		t.Fatalf("existing target was removed: %v", err)
	}
	entries, _ := os.ReadDir(d.Path())
	if len(entries) != 1 {
		t.Fatalf("expected no temp files left, got %d entries", len(entries))
	}
}
