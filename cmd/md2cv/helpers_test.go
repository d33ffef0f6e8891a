package main

// Notes:
// - Shared test infrastructure: environment builder, mock converter and
//   pool, file helpers. Not code under test.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	md2cv "github.com/alnah/go-md2cv"
)

// sampleResume passes every résumé check.
const sampleResume = `# Jane Doe
jane@example.com | +1 555 0100

## Summary
Backend engineer.

## Experience
- Reduced latency by 40%

## Education
BSc Computer Science

## Skills
- Go
`

// testEnv returns an environment writing to the returned buffers and
// backed by a real ConverterPool.
func testEnv(t *testing.T) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:     func() time.Time { return time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC) },
		Stdout:  &stdout,
		Stderr:  &stderr,
		Logger:  zap.NewNop(),
		NewPool: newPool,
	}, &stdout, &stderr
}

// writeFile creates path under dir with content and returns the full path.
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return full
}

// mockConverter echoes the requested format without rendering.
type mockConverter struct {
	err   error
	calls atomic.Int32
}

func (m *mockConverter) Export(_ context.Context, in md2cv.Input) (*md2cv.Result, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	name := in.Filename
	if name == "" {
		name = md2cv.DefaultFilename
	}
	return &md2cv.Result{
		Data:     []byte("mock " + in.Format.String()),
		Filename: name + in.Format.Extension(),
		Format:   in.Format,
	}, nil
}

// mockPool hands out one shared converter.
type mockPool struct {
	conv       CLIConverter
	acquireErr error
	size       int
	released   atomic.Int32
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) { p.released.Add(1) }
func (p *mockPool) Size() int            { return p.size }
func (p *mockPool) Close() error         { return nil }
