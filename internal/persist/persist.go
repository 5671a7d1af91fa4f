package persist

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// DefaultPath resolves the README location relative to the running binary:
// one directory up from the executable, fixed filename.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), "..", "README.md"), nil
}

// Write replaces the file at path with content in one atomic step
// (tempfile + rename). The previous file is not backed up and failed writes
// are not retried.
func Write(path string, content []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("document written", "path", path, "bytes", len(content))
	return nil
}
