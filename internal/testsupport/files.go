package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteSegment creates a transcript segment file with the given content,
// creating parent directories as needed.
func WriteSegment(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// NestedDayDir builds <root>/<YYYY>/<MM>/<DD> and returns it.
func NestedDayDir(t testing.TB, root, year, month, day string) string {
	t.Helper()

	dir := filepath.Join(root, year, month, day)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	return dir
}
