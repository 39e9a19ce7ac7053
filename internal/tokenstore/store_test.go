package tokenstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".shopdeck", "token")
	s := New(path)

	if err := s.Save("abc123"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	tok, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if tok != "abc123" {
		t.Errorf("Get() = %q, want %q", tok, "abc123")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}
}

func TestGetMissing(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "token"))

	tok, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error for missing file: %v", err)
	}
	if tok != "" {
		t.Errorf("Get() = %q, want empty for missing file", tok)
	}
}

func TestGetTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  abc123\n"), 0600); err != nil {
		t.Fatal(err)
	}

	tok, err := New(path).Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if tok != "abc123" {
		t.Errorf("Get() = %q, want %q", tok, "abc123")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := New(path)
	if err := s.Save("from-file"); err != nil {
		t.Fatal(err)
	}

	t.Setenv(envToken, "from-env")

	tok, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if tok != "from-env" {
		t.Errorf("Get() = %q, want the env token to win", tok)
	}
}

func TestRemoveIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := New(path)
	if err := s.Save("abc"); err != nil {
		t.Fatal(err)
	}

	if err := s.Remove(); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if err := s.Remove(); err != nil {
		t.Fatalf("second Remove() error: %v", err)
	}

	tok, err := s.Get()
	if err != nil || tok != "" {
		t.Errorf("Get() after Remove = (%q, %v), want empty", tok, err)
	}
}
