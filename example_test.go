package md2cv_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	md2cv "github.com/alnah/go-md2cv"
)

// Example exports a résumé to DOCX.
func Example() {
	conv, err := md2cv.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Export(context.Background(), md2cv.Input{
		Markdown: "# Jane Doe\n\n## Experience\n- Built **fast** services",
		Filename: "jane-doe.md",
		Format:   md2cv.FormatDOCX,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Filename, result.Blocks)
	// Output: jane-doe.docx 4
}

// ExampleExportPDF uses the package-level helper.
func ExampleExportPDF() {
	result, err := md2cv.ExportPDF(context.Background(), "# Jane Doe\n1. First\n2. Second", "cv")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Filename, result.Pages)
	// Output: cv.pdf 1
}

// ExampleExportError shows how to inspect a failed export.
func ExampleExportError() {
	_, err := md2cv.ExportDOCX(context.Background(), "   ", "cv")

	var exportErr *md2cv.ExportError
	if errors.As(err, &exportErr) {
		fmt.Println(exportErr.Format, errors.Is(err, md2cv.ErrEmptyMarkdown))
	}
	// Output: docx true
}

// ExampleConverterPool exports several documents in parallel.
func ExampleConverterPool() {
	pool := md2cv.NewConverterPool(2)
	defer pool.Close()

	formats := []md2cv.Format{md2cv.FormatDOCX, md2cv.FormatPDF, md2cv.FormatHTML}
	names := make([]string, len(formats))

	var wg sync.WaitGroup
	for i, f := range formats {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv, err := pool.Acquire()
			if err != nil {
				return
			}
			defer pool.Release(conv)

			res, err := conv.Export(context.Background(), md2cv.Input{Markdown: "# CV", Format: f})
			if err == nil {
				names[i] = res.Filename
			}
		}()
	}
	wg.Wait()

	for _, n := range names {
		fmt.Println(n)
	}
	// Output:
	// curriculum.docx
	// curriculum.pdf
	// curriculum.html
}
