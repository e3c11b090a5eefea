package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndResolve(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, err := store.Save("data.csv", []byte("timestamp,consumption_kwh\n"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Dir(path) != store.Dir() {
		t.Fatalf("saved outside upload dir: %s", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "data_") || !strings.HasSuffix(path, ".csv") {
		t.Fatalf("unexpected stored name: %s", path)
	}

	// Resolvable by full path and by bare name.
	if _, err := store.Resolve(path); err != nil {
		t.Fatalf("resolve by path: %v", err)
	}
	if _, err := store.Resolve(filepath.Base(path)); err != nil {
		t.Fatalf("resolve by name: %v", err)
	}
}

func TestSaveUniqueNames(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	a, err := store.Save("data.csv", []byte("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := store.Save("data.csv", []byte("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if a == b {
		t.Fatalf("expected unique names, both %s", a)
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := New(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	secret := filepath.Join(dir, "secret.txt")
	if err := os.WriteFile(secret, []byte("x"), 0o644); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	if _, err := store.Resolve("../secret.txt"); err == nil {
		t.Fatal("traversal outside the upload dir must not resolve")
	}
	if _, err := store.Resolve(secret); err == nil {
		t.Fatal("absolute path outside the upload dir must not resolve")
	}
}

func TestResolveMissingFile(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Resolve("nope.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveAsOverwrites(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.SaveAs("sample.csv", []byte("one")); err != nil {
		t.Fatalf("save as: %v", err)
	}
	path, err := store.SaveAs("sample.csv", []byte("two"))
	if err != nil {
		t.Fatalf("save as: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "two" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}
