package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"go.uber.org/zap"

	md2cv "github.com/alnah/go-md2cv"
	"github.com/alnah/go-md2cv/internal/fileutil"
	"github.com/alnah/go-md2cv/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Artifact is one file written for a conversion.
type Artifact struct {
	Path   string
	Format md2cv.Format
	Size   int
	Pages  int
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath string
	Artifacts []Artifact
	Hints     []hints.Hint
	Err       error
	Duration  time.Duration
}

// convertBatch processes files concurrently using the converter pool.
// Cancellation stops scheduling: files not yet started fail with ctx.Err().
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile exports one markdown file to every requested format. Files
// are written only after all exports succeed.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := params.clock()()
	result := ConversionResult{InputPath: f.InputPath}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Artifacts = nil
		result.Duration = params.elapsedSince(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	outDir := filepath.Dir(f.OutputBase)
	exports := make([]*md2cv.Result, 0, len(params.formats))
	for _, format := range params.formats {
		res, err := conv.Export(ctx, md2cv.Input{
			Markdown:    string(content),
			Filename:    filepath.Base(f.OutputBase),
			Format:      format,
			EmbedSource: params.embedSource,
		})
		if err != nil {
			return fail(err)
		}
		exports = append(exports, res)
	}

	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}

	for _, res := range exports {
		path := filepath.Join(outDir, res.Filename)
		if err := fileutil.WriteFileAtomic(path, res.Data, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		result.Artifacts = append(result.Artifacts, Artifact{
			Path:   path,
			Format: res.Format,
			Size:   len(res.Data),
			Pages:  res.Pages,
		})
	}

	if params.hints {
		result.Hints = hints.CheckResume(string(content))
	}

	result.Duration = params.elapsedSince(start)
	if params.log != nil {
		params.log.Debug("converted file",
			zap.String("input", f.InputPath),
			zap.Int("artifacts", len(result.Artifacts)),
			zap.Duration("duration", result.Duration))
	}
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, errorHint(r.Err))
			continue
		}

		if quiet {
			continue
		}

		for _, a := range r.Artifacts {
			if verbose {
				fmt.Fprintf(env.Stdout, "%s -> %s (%s%s, %v)\n",
					r.InputPath, a.Path, humanize.Bytes(uint64(a.Size)), pagesSuffix(a), r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", a.Path)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// pagesSuffix returns ", N page(s)" for paginated artifacts.
func pagesSuffix(a Artifact) string {
	if a.Pages == 0 {
		return ""
	}
	return fmt.Sprintf(", %d %s", a.Pages, english.PluralWord(a.Pages, "page", ""))
}

// printResumeHints lists résumé hints per successfully converted file.
func printResumeHints(w io.Writer, results []ConversionResult) {
	for _, r := range results {
		if r.Err != nil || len(r.Hints) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nHints for %s:\n", r.InputPath)
		for _, h := range r.Hints {
			fmt.Fprintf(w, "  %s\n", h)
		}
	}
}
