package fileutil_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-md2cv/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Write through temp file and rename
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file with content and permissions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cv.pdf")
		if err := fileutil.WriteFileAtomic(path, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result: %v", err)
		}
		if string(data) != "%PDF-1.4" {
			t.Errorf("content = %q, want %q", data, "%PDF-1.4")
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Mode().Perm() != 0o644 {
				t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(0o644))
			}
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cv.docx")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("content = %q, want %q", data, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.WriteFileAtomic(filepath.Join(dir, "cv.html"), []byte("<p>"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		if len(entries) != 1 {
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("directory entries = %v, want only cv.html", names)
		}
	})

	t.Run("missing directory returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "cv.pdf")
		err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "creating temp file") {
			t.Errorf("error = %v, want creating temp file", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte("content"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0o755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file returns true",
			path: testFile,
			want: true,
		},
		{
			name: "directory returns false",
			path: testDir,
			want: false,
		},
		{
			name: "nonexistent path returns false",
			path: filepath.Join(tempDir, "nonexistent"),
			want: false,
		},
		{
			name: "empty path returns false",
			path: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "simple name returns false",
			input: "jane-doe",
			want:  false,
		},
		{
			name:  "relative path with dot-slash returns true",
			input: "./cv.md",
			want:  true,
		},
		{
			name:  "parent path returns true",
			input: "../shared/cv.md",
			want:  true,
		},
		{
			name:  "Windows path with backslash returns true",
			input: "C:\\cv\\cv.md",
			want:  true,
		},
		{
			name:  "empty string returns false",
			input: "",
			want:  false,
		},
		{
			name:  "name with dots but no slash returns false",
			input: "jane.doe.cv",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsFilePath(tt.input)
			if got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdown - Markdown extension detection
// ---------------------------------------------------------------------------

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"cv.md", true},
		{"cv.markdown", true},
		{"CV.MD", true},
		{"dir/cv.md", true},
		{"cv.txt", false},
		{"cv", false},
		{"md", false},
		{".md.bak", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsMarkdown(tt.input); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestStripMarkdownExtension - Output base names
// ---------------------------------------------------------------------------

func TestStripMarkdownExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"cv.md", "cv"},
		{"jane-doe.markdown", "jane-doe"},
		{"Notes.MD", "Notes"},
		{"cv", "cv"},
		{"cv.v2", "cv.v2"},
		{"archive.tar.md", "archive.tar"},
	}

	for _, tt := range tests {
		if got := fileutil.StripMarkdownExtension(tt.input); got != tt.want {
			t.Errorf("StripMarkdownExtension(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
