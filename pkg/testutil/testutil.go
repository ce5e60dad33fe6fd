package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// Blocker creates a regular file in a fresh temp directory. Paths below
// it cannot be created, which makes it handy for exercising I/O failures.
func Blocker(t *testing.T) string {
	t.Helper()
	return CreateFile(t, t.TempDir(), "blocker", "x")
}

// SplitLines splits newline-terminated output into its lines.
func SplitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// ReadLines reads a wordlist file and returns its lines.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return SplitLines(string(data))
}
