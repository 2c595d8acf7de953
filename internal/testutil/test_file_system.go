package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"dashfix/internal/ports"
)

// TestFileSystem provides real file system operations sandboxed within a temporary directory.
// All paths are resolved relative to the sandbox directory, so the relative
// target path of a patch lands inside the sandbox.
// For unit tests that mock file system calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir string
	writes  int
}

// NewTestFileSystem creates a sandboxed file system within a temporary directory.
// The directory is automatically cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// Writes returns how many times WriteFile succeeded.
func (f *TestFileSystem) Writes() int {
	return f.writes
}

func (f *TestFileSystem) resolvePath(path string) string {
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) {
		// "/foo/bar" -> "foo/bar"
		cleanPath = cleanPath[1:]
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	if err := os.WriteFile(resolved, content, 0600); err != nil {
		return err
	}
	f.writes++
	return nil
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.resolvePath(path)), 0700)
}
