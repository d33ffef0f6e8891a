// Package md2cv exports résumés written in a small Markdown dialect to DOCX
// and PDF documents that applicant tracking systems can read.
//
// # Quick Start
//
// Create a converter and export:
//
//	conv, err := md2cv.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Export(ctx, md2cv.Input{
//	    Markdown: "# Jane Doe\n\n## Experience\n- Built things",
//	    Filename: "jane-doe",
//	    Format:   md2cv.FormatPDF,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.Data, 0o644)
//
// ExportDOCX and ExportPDF wrap the same steps for one-off calls.
//
// # Dialect
//
// The accepted Markdown is deliberately small:
//
//   - "# ", "## " and "### " headings (the space is required)
//   - "- ", "* " and "1. " list items, one level only
//   - **bold** and [text](url) inside a line
//   - blank lines, kept as vertical spacing
//
// Everything else is a plain paragraph. Parsing never fails.
//
// # Export Pipeline
//
//  1. Line endings are normalized and the text is parsed into blocks
//  2. The blocks are rendered by the format's renderer
//     (DOCX flowing paragraphs, or PDF with manual wrapping and page breaks)
//  3. Failures are returned as *ExportError tagged with the format
//
// HTML output is a preview produced by Goldmark from the same source.
//
// # Configuration
//
//	conv, err := md2cv.NewConverter(
//	    md2cv.WithLogger(logger),
//	    md2cv.WithTitle("Jane Doe - Résumé"),
//	    md2cv.WithFontFiles("Inter-Regular.ttf", "Inter-Bold.ttf"),
//	)
//
// # Parallel Processing
//
// A Converter holds no per-call state and can be shared across goroutines.
// ConverterPool bounds how many exports run at once in batch tools:
//
//	pool := md2cv.NewConverterPool(md2cv.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//
// # Embedded Source
//
// With Input.EmbedSource a PDF carries the Markdown it was built from as a
// file attachment; ExtractSource reads it back.
package md2cv
