package main

// Notes:
// - convertBatch/convertFile are tested with a mock converter so the
//   assertions target scheduling, naming and writing, not rendering.
// - The write-failure branch of WriteFileAtomic is covered in fileutil.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	md2cv "github.com/alnah/go-md2cv"
	"github.com/alnah/go-md2cv/internal/hints"
)

// ---------------------------------------------------------------------------
// TestConvertFile - Single file export and write
// ---------------------------------------------------------------------------

func TestConvertFile(t *testing.T) {
	t.Parallel()

	t.Run("writes every format", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "cv.md", sampleResume)
		params := &conversionParams{formats: []md2cv.Format{md2cv.FormatDOCX, md2cv.FormatHTML}}

		got := convertFile(context.Background(), &mockConverter{},
			FileToConvert{InputPath: in, OutputBase: filepath.Join(dir, "out", "jane")}, params)
		if got.Err != nil {
			t.Fatalf("convertFile() error = %v", got.Err)
		}

		var paths []string
		for _, a := range got.Artifacts {
			paths = append(paths, a.Path)
		}
		want := []string{filepath.Join(dir, "out", "jane.docx"), filepath.Join(dir, "out", "jane.html")}
		if diff := cmp.Diff(want, paths); diff != "" {
			t.Errorf("artifact paths mismatch (-want +got):\n%s", diff)
		}

		data, err := os.ReadFile(want[1])
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "mock html" {
			t.Errorf("written data = %q, want %q", data, "mock html")
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		got := convertFile(context.Background(), &mockConverter{},
			FileToConvert{InputPath: filepath.Join(t.TempDir(), "none.md")},
			&conversionParams{formats: md2cv.DefaultFormats})
		if !errors.Is(got.Err, ErrReadMarkdown) {
			t.Errorf("convertFile() error = %v, want ErrReadMarkdown", got.Err)
		}
	})

	t.Run("export failure writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "cv.md", sampleResume)
		exportErr := &md2cv.ExportError{Format: md2cv.FormatPDF, Err: md2cv.ErrPDFGeneration}

		got := convertFile(context.Background(), &mockConverter{err: exportErr},
			FileToConvert{InputPath: in, OutputBase: filepath.Join(dir, "out", "cv")},
			&conversionParams{formats: md2cv.DefaultFormats})
		if !errors.Is(got.Err, md2cv.ErrPDFGeneration) {
			t.Fatalf("convertFile() error = %v, want ErrPDFGeneration", got.Err)
		}
		if len(got.Artifacts) != 0 {
			t.Errorf("Artifacts = %v, want none", got.Artifacts)
		}
		if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
			t.Errorf("output directory created despite failure: %v", err)
		}
	})

	t.Run("output directory blocked by a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "cv.md", sampleResume)
		writeFile(t, dir, "blocked", "")

		got := convertFile(context.Background(), &mockConverter{},
			FileToConvert{InputPath: in, OutputBase: filepath.Join(dir, "blocked", "cv")},
			&conversionParams{formats: md2cv.DefaultFormats})
		if !errors.Is(got.Err, ErrCreateOutputDir) {
			t.Errorf("convertFile() error = %v, want ErrCreateOutputDir", got.Err)
		}
	})

	t.Run("collects hints when enabled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "cv.md", "# Jane\n\n## Experience\n- Wrote code\n")

		got := convertFile(context.Background(), &mockConverter{},
			FileToConvert{InputPath: in, OutputBase: filepath.Join(dir, "cv")},
			&conversionParams{formats: []md2cv.Format{md2cv.FormatHTML}, hints: true})
		if got.Err != nil {
			t.Fatalf("convertFile() error = %v", got.Err)
		}

		codes := make(map[string]bool)
		for _, h := range got.Hints {
			codes[h.Code] = true
		}
		if !codes[hints.CodeNoMetrics] {
			t.Errorf("Hints = %v, want %s", got.Hints, hints.CodeNoMetrics)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Worker scheduling
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T, n int) []FileToConvert {
		t.Helper()
		dir := t.TempDir()
		files := make([]FileToConvert, n)
		for i := range files {
			name := string(rune('a'+i)) + ".md"
			files[i] = FileToConvert{
				InputPath:  writeFile(t, dir, name, sampleResume),
				OutputBase: filepath.Join(dir, "out", string(rune('a'+i))),
			}
		}
		return files
	}
	params := &conversionParams{formats: []md2cv.Format{md2cv.FormatHTML}}

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		if got := convertBatch(context.Background(), &mockPool{size: 2}, nil, params); got != nil {
			t.Errorf("convertBatch(nil) = %v, want nil", got)
		}
	})

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()

		files := setup(t, 5)
		conv := &mockConverter{}
		pool := &mockPool{conv: conv, size: 3}

		results := convertBatch(context.Background(), pool, files, params)
		for i, r := range results {
			if r.Err != nil {
				t.Errorf("results[%d].Err = %v", i, r.Err)
			}
			if r.InputPath != files[i].InputPath {
				t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, files[i].InputPath)
			}
		}
		if got := conv.calls.Load(); got != 5 {
			t.Errorf("Export calls = %d, want 5", got)
		}
		if got := pool.released.Load(); got != 3 {
			t.Errorf("Release calls = %d, want 3", got)
		}
	})

	t.Run("acquire failure fails every file", func(t *testing.T) {
		t.Parallel()

		files := setup(t, 3)
		pool := &mockPool{acquireErr: md2cv.ErrFontLoad, size: 2}

		for i, r := range convertBatch(context.Background(), pool, files, params) {
			if !errors.Is(r.Err, md2cv.ErrFontLoad) {
				t.Errorf("results[%d].Err = %v, want ErrFontLoad", i, r.Err)
			}
		}
	})

	t.Run("cancelled context skips files", func(t *testing.T) {
		t.Parallel()

		files := setup(t, 2)
		conv := &mockConverter{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		for i, r := range convertBatch(ctx, &mockPool{conv: conv, size: 1}, files, params) {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
			}
		}
		if got := conv.calls.Load(); got != 0 {
			t.Errorf("Export calls = %d, want 0", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResultsWithWriter - Output formatting
// ---------------------------------------------------------------------------

func TestPrintResultsWithWriter(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{
			InputPath: "a.md",
			Artifacts: []Artifact{
				{Path: "a.docx", Format: md2cv.FormatDOCX, Size: 2048},
				{Path: "a.pdf", Format: md2cv.FormatPDF, Size: 1500, Pages: 2},
			},
			Duration: 12 * time.Millisecond,
		},
		{InputPath: "b.md", Err: md2cv.ErrEmptyMarkdown},
	}

	tests := []struct {
		name          string
		quiet         bool
		verbose       bool
		wantStdout    []string
		notWantStdout []string
	}{
		{
			name:       "default",
			wantStdout: []string{"Created a.docx", "Created a.pdf", "1 succeeded, 1 failed"},
		},
		{
			name:       "verbose",
			verbose:    true,
			wantStdout: []string{"a.md -> a.docx (2.0 kB, 12ms)", "a.md -> a.pdf (1.5 kB, 2 pages, 12ms)"},
		},
		{
			name:          "quiet",
			quiet:         true,
			notWantStdout: []string{"Created", "succeeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(t)
			failed := printResultsWithWriter(results, tt.quiet, tt.verbose, env)

			if failed != 1 {
				t.Errorf("printResultsWithWriter() = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED b.md: markdown content cannot be empty") {
				t.Errorf("stderr = %q, want FAILED line", stderr.String())
			}
			if !strings.Contains(stderr.String(), "md2cv init") {
				t.Errorf("stderr = %q, want empty-markdown hint", stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want containing %q", stdout.String(), want)
				}
			}
			for _, notWant := range tt.notWantStdout {
				if strings.Contains(stdout.String(), notWant) {
					t.Errorf("stdout = %q, should not contain %q", stdout.String(), notWant)
				}
			}
		})
	}
}

func TestCountResults(t *testing.T) {
	t.Parallel()

	got := countResults([]ConversionResult{{}, {Err: errors.New("x")}, {}})
	if want := (ResultSummary{Succeeded: 2, Failed: 1}); got != want {
		t.Errorf("countResults() = %+v, want %+v", got, want)
	}
}

func TestPrintResumeHints(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(t)
	printResumeHints(env.Stdout, []ConversionResult{
		{InputPath: "ok.md"},
		{InputPath: "failed.md", Err: errors.New("x"), Hints: []hints.Hint{{Title: "ignored"}}},
		{InputPath: "cv.md", Hints: []hints.Hint{{Title: "Missing section: Skills", Message: "m", Severity: hints.SeverityWarning}}},
	})

	want := "\nHints for cv.md:\n  [warning] Missing section: Skills: m\n"
	if got := stdout.String(); got != want {
		t.Errorf("printResumeHints() = %q, want %q", got, want)
	}
}

func TestConvertFile_UsesInjectedClock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "cv.md", sampleResume)

	base := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	var ticks int
	params := &conversionParams{
		formats: []md2cv.Format{md2cv.FormatHTML},
		now: func() time.Time {
			ticks++
			return base.Add(time.Duration(ticks) * 250 * time.Millisecond)
		},
	}

	got := convertFile(context.Background(), &mockConverter{}, FileToConvert{InputPath: in, OutputBase: filepath.Join(dir, "cv")}, params)
	if got.Err != nil {
		t.Fatalf("convertFile() error = %v", got.Err)
	}
	if got.Duration != 250*time.Millisecond {
		t.Errorf("Duration = %v, want 250ms", got.Duration)
	}
}
