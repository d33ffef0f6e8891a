package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2cv/internal/config"
	"github.com/alnah/go-md2cv/internal/yamlutil"
)

// ---------------------------------------------------------------------------
// TestRunConfig - Effective configuration
// ---------------------------------------------------------------------------

func TestRunConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cv.yaml", `
output:
  formats: [pdf]
  name: jane
document:
  title: Jane Doe CV
workers: 2
`)

	t.Run("prints loaded file", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		if err := runConfig([]string{"-c", cfgPath}, env); err != nil {
			t.Fatalf("runConfig() error = %v", err)
		}

		var got config.Config
		if err := yamlutil.Decode(stdout.Bytes(), &got); err != nil {
			t.Fatalf("Decode() error = %v\n%s", err, stdout)
		}
		if got.Document.Title != "Jane Doe CV" || got.Output.Name != "jane" || got.Workers != 2 {
			t.Errorf("round-tripped config = %+v", got)
		}
		if len(got.Output.Formats) != 1 || got.Output.Formats[0] != "pdf" {
			t.Errorf("Output.Formats = %v, want [pdf]", got.Output.Formats)
		}
	})

	t.Run("defaults without file", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		if err := runConfig([]string{"-q"}, env); err != nil {
			t.Fatalf("runConfig() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "workers: 0") {
			t.Errorf("stdout = %q, want default workers", stdout)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(t)
		err := runConfig([]string{"-c", filepath.Join(dir, "none.yaml")}, env)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("runConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		bad := writeFile(t, t.TempDir(), "bad.yaml", "workers: 99\n")
		env, _, _ := testEnv(t)
		err := runConfig([]string{"-c", bad}, env)
		if got := exitCodeFor(err); got != ExitUsage {
			t.Errorf("exitCodeFor(%v) = %d, want %d", err, got, ExitUsage)
		}
	})
}
