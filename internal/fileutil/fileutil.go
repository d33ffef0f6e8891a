// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// markdownExtensions are the source extensions recognized for discovery
// and stripped from output names.
var markdownExtensions = []string{".md", ".markdown"}

// WriteFileAtomic writes data next to path under a temporary name and
// renames it into place, so readers never see a half-written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmpFile, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "cv" -> false (name)
//   - "./cv.md" -> true (relative path)
//   - "C:\cv\cv.md" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsMarkdown reports whether path has a markdown extension (case-insensitive).
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range markdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// StripMarkdownExtension removes a trailing .md or .markdown from name.
// Other extensions are kept.
func StripMarkdownExtension(name string) string {
	if IsMarkdown(name) {
		return name[:len(name)-len(filepath.Ext(name))]
	}
	return name
}
